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

import (
	"strconv"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/array"
)

// NullColumn is the degenerate column: length N, every row null, no payload
// and no bitmap. Memory footprint is one integer regardless of N.
type NullColumn struct {
	length int
}

// NewNullColumn returns an all-null column of the given length.
func NewNullColumn(length int) *NullColumn {
	return &NullColumn{length: length}
}

// NewNullColumnFromArrow returns an all-null column with the length of the
// given arrow array.
func NewNullColumnFromArrow(arr arrow.Array) *NullColumn {
	return &NullColumn{length: arr.Len()}
}

// AsArrow returns the arrow form of the column.
func (c *NullColumn) AsArrow() arrow.Array {
	return array.NewNull(c.length)
}

func (c *NullColumn) DataType() DataType { return Null }
func (c *NullColumn) Nullable() bool     { return true }
func (c *NullColumn) Len() int           { return c.length }

func (c *NullColumn) NullAt(row int) bool { return true }
func (c *NullColumn) OnlyNull() bool      { return true }

// Validity reports (true, nil): nullability applies but no explicit bitmap
// is needed since every row is null by construction.
func (c *NullColumn) Validity() (bool, *Validity) { return true, nil }

func (c *NullColumn) MemorySize() int { return strconv.IntSize / 8 }

func (c *NullColumn) Slice(offset, length int) Column {
	return &NullColumn{length: length}
}

func (c *NullColumn) Replicate(offsets []int) Column {
	if len(offsets) == 0 {
		return &NullColumn{}
	}
	return &NullColumn{length: offsets[len(offsets)-1]}
}

// ConvertFull returns the column itself: all-null is already the maximally
// compact normal form.
func (c *NullColumn) ConvertFull() Column { return c }

func (c *NullColumn) Get(row int) DataValue { return NullValue }

// NullColumnBuilder accumulates an all-null column row by row. A builder is
// owned by a single producer until Finish. Appending a null and appending a
// default are observationally identical since the column has no payload.
type NullColumnBuilder struct {
	length int
}

// NewNullColumnBuilder returns an empty builder.
func NewNullColumnBuilder() *NullColumnBuilder {
	return &NullColumnBuilder{}
}

// AppendNull adds one null row.
func (b *NullColumnBuilder) AppendNull() { b.length++ }

// AppendDefault adds one row holding the type's default, which for the null
// type is null.
func (b *NullColumnBuilder) AppendDefault() { b.length++ }

// Len returns the number of accumulated rows.
func (b *NullColumnBuilder) Len() int { return b.length }

// Finish returns the accumulated column and resets the builder to zero rows,
// making it reusable.
func (b *NullColumnBuilder) Finish() *NullColumn {
	column := NewNullColumn(b.length)
	b.length = 0
	return column
}
