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

package function

import (
	"strings"

	"github.com/skyzh/databend/sql"
)

// Function is a vectorized scalar function: length-N columns in, one
// length-N column out. Implementations are stateless and safe for
// concurrent use.
type Function interface {
	// Name returns the registry name of the function.
	Name() string
	// Nullable reports whether the function may produce null rows on
	// non-null input.
	Nullable() bool
	// PassthroughNull reports whether a result row is null whenever any
	// input argument is null at that row. Passthrough functions may be
	// masked or skipped by the executor instead of seeing nulls.
	PassthroughNull() bool
	// ReturnType computes the result type for the given argument types.
	ReturnType(args []sql.DataType) (sql.DataType, error)
	// Eval evaluates the function over a batch of rows.
	Eval(args []sql.ColumnWithField, rows int) (sql.Column, error)
}

// Registry maps lower-cased names to scalar functions.
type Registry map[string]Function

// NewRegistry returns an empty registry.
func NewRegistry() Registry { return Registry{} }

// Register adds functions to the registry, replacing any previous function
// of the same name.
func (r Registry) Register(fns ...Function) {
	for _, f := range fns {
		r[strings.ToLower(f.Name())] = f
	}
}

// Function looks a function up by name, case insensitively.
func (r Registry) Function(name string) (Function, error) {
	f, ok := r[strings.ToLower(name)]
	if !ok {
		return nil, sql.ErrFunctionNotFound.New(name)
	}
	return f, nil
}

// Defaults is the registry with all the default functions.
var Defaults = NewRegistry()

func init() {
	Defaults.Register(
		NewPlus(),
		NewMinus(),
		NewMultiply(),
		NewNegate(),
		NewAbs(),
		NewUpper(),
		NewLower(),
		NewIsNull(),
	)
}
