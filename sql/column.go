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

// Column is an immutable container of one attribute's values across all rows
// of a block. Columns are shared freely across goroutines once built and are
// never mutated in place.
type Column interface {
	// DataType returns the logical type of the column.
	DataType() DataType
	// Nullable reports whether the column has a notion of nullability.
	Nullable() bool
	// Len returns the number of rows.
	Len() int
	// NullAt reports whether the row is null. The caller guarantees bounds.
	NullAt(row int) bool
	// OnlyNull reports whether every row is null. Enables fast paths that
	// skip evaluation entirely.
	OnlyNull() bool
	// Validity returns whether nullability applies to this column and the
	// validity bitmap, if an explicit one exists. An all-null column needs
	// no bitmap and returns (true, nil).
	Validity() (bool, *Validity)
	// MemorySize returns the approximate heap footprint in bytes, for
	// planning and accounting.
	MemorySize() int
	// Slice returns a cheap view over a contiguous range of rows.
	Slice(offset, length int) Column
	// Replicate repeats row i (offsets[i] - offsets[i-1]) times. offsets is
	// non-decreasing, len(offsets) equals Len() and offsets[i] is the
	// cumulative output length after replicating row i.
	Replicate(offsets []int) Column
	// ConvertFull materializes any degenerate or constant form into its
	// normal form.
	ConvertFull() Column
	// Get returns the value at the row. The caller guarantees bounds.
	Get(row int) DataValue
}

// ColumnWithField pairs a column with its schema field.
type ColumnWithField struct {
	Column Column
	Field  Field
}

// NewColumnWithField pairs a column with its field.
func NewColumnWithField(column Column, field Field) ColumnWithField {
	return ColumnWithField{Column: column, Field: field}
}

// ApplyValidity masks a column with a validity bitmap: a result row is null
// if it was already null or the bitmap marks it invalid. A nil bitmap leaves
// the column untouched.
func ApplyValidity(column Column, validity *Validity) Column {
	if validity == nil || validity.AllValid() {
		return column
	}
	switch c := column.(type) {
	case *NullColumn:
		return c
	case *NullableColumn:
		_, bitmap := c.Validity()
		return NewNullableColumn(c.Inner(), bitmap.And(validity))
	}
	return NewNullableColumn(column, validity.Clone())
}
