// Copyright 2021 Datafuse Labs.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrColumnNotFound is returned when a block does not contain a column
	// with the requested name.
	ErrColumnNotFound = errors.NewKind("column %q could not be found in block")

	// ErrArgumentNotPrepared is returned when a chain action references a
	// column that has not been computed yet. It always indicates a defect in
	// chain construction, never a runtime condition.
	ErrArgumentNotPrepared = errors.NewKind("arguments must be prepared before %s transform")

	// ErrProjectionColumnNotFound is returned when an output schema field
	// resolves to neither an alias nor a computed column. This is an
	// internal consistency error.
	ErrProjectionColumnNotFound = errors.NewKind("projection column %q does not exist in %v, there are bugs")

	// ErrDuplicateAlias is returned when two alias actions target the same
	// output name.
	ErrDuplicateAlias = errors.NewKind("duplicate alias name: %s")

	// ErrBadDataValueType is returned on invalid type construction, such as
	// nesting a nullable type inside another nullable type.
	ErrBadDataValueType = errors.NewKind("bad data value type: %s")

	// ErrInvalidType is returned when a value cannot be converted or used as
	// the given type.
	ErrInvalidType = errors.NewKind("invalid type: %s")

	// ErrFunctionNotFound is returned when a scalar function is not present
	// in the registry.
	ErrFunctionNotFound = errors.NewKind("function %q not found")

	// ErrUnexpectedColumnCount is returned when a block is created with a
	// number of columns that does not match its schema.
	ErrUnexpectedColumnCount = errors.NewKind("expected %d columns, got %d")

	// ErrRowCountMismatch is returned when the columns of a block do not all
	// share the same row count.
	ErrRowCountMismatch = errors.NewKind("column %q has %d rows, expected %d")
)
