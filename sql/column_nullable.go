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

// NullableColumn pairs an inner column with a validity bitmap. The inner
// column holds the physical payload for every row, with the type's default
// substituted at null positions.
type NullableColumn struct {
	inner    Column
	validity *Validity
}

// NewNullableColumn pairs a column with a validity bitmap. The bitmap must
// cover exactly the inner column's rows.
func NewNullableColumn(inner Column, validity *Validity) *NullableColumn {
	return &NullableColumn{inner: inner, validity: validity}
}

// Inner returns the physical payload column.
func (c *NullableColumn) Inner() Column { return c.inner }

func (c *NullableColumn) DataType() DataType {
	return NewNullableType(c.inner.DataType())
}

func (c *NullableColumn) Nullable() bool { return true }
func (c *NullableColumn) Len() int       { return c.inner.Len() }

func (c *NullableColumn) NullAt(row int) bool { return !c.validity.ValidAt(row) }
func (c *NullableColumn) OnlyNull() bool      { return c.validity.AllNull() }

func (c *NullableColumn) Validity() (bool, *Validity) { return true, c.validity }

func (c *NullableColumn) MemorySize() int {
	return c.inner.MemorySize() + c.validity.MemorySize()
}

func (c *NullableColumn) Slice(offset, length int) Column {
	return &NullableColumn{
		inner:    c.inner.Slice(offset, length),
		validity: c.validity.Slice(offset, length),
	}
}

func (c *NullableColumn) Replicate(offsets []int) Column {
	return &NullableColumn{
		inner:    c.inner.Replicate(offsets),
		validity: c.validity.Replicate(offsets),
	}
}

func (c *NullableColumn) ConvertFull() Column {
	return &NullableColumn{inner: c.inner.ConvertFull(), validity: c.validity}
}

func (c *NullableColumn) Get(row int) DataValue {
	if !c.validity.ValidAt(row) {
		return NullValue
	}
	return c.inner.Get(row)
}
