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

// ConstantColumn repeats one scalar value over the whole batch without
// materializing it. The executor uses it for literal actions and for the
// all-null short circuit of passthrough-null functions.
type ConstantColumn struct {
	value  DataValue
	typ    DataType
	length int
}

// NewConstantColumn returns a column repeating value length times. typ is
// the declared type of the value, which may be wider than the value itself
// when the value is null.
func NewConstantColumn(value DataValue, typ DataType, length int) *ConstantColumn {
	return &ConstantColumn{value: value, typ: typ, length: length}
}

// Value returns the repeated scalar.
func (c *ConstantColumn) Value() DataValue { return c.value }

func (c *ConstantColumn) DataType() DataType { return c.typ }

func (c *ConstantColumn) Nullable() bool {
	return c.value.IsNull() || c.typ.Nullable()
}

func (c *ConstantColumn) Len() int { return c.length }

func (c *ConstantColumn) NullAt(row int) bool { return c.value.IsNull() }
func (c *ConstantColumn) OnlyNull() bool      { return c.value.IsNull() }

func (c *ConstantColumn) Validity() (bool, *Validity) {
	if c.value.IsNull() {
		return true, nil
	}
	return false, nil
}

func (c *ConstantColumn) MemorySize() int { return strconvIntSize }

func (c *ConstantColumn) Slice(offset, length int) Column {
	return &ConstantColumn{value: c.value, typ: c.typ, length: length}
}

func (c *ConstantColumn) Replicate(offsets []int) Column {
	length := 0
	if len(offsets) > 0 {
		length = offsets[len(offsets)-1]
	}
	return &ConstantColumn{value: c.value, typ: c.typ, length: length}
}

// ConvertFull materializes the constant through the declared type's
// factories. An all-null constant over a non-nullable type materializes
// through the nullable wrapper of the type. A constant is convertible to
// its own declared type by construction, so the factory cannot fail here;
// a failure means a broken type factory and panics.
func (c *ConstantColumn) ConvertFull() Column {
	typ := c.typ
	if c.value.IsNull() && !typ.Nullable() {
		typ = NewNullableType(typ)
	}
	column, err := typ.CreateConstantColumn(c.value, c.length)
	if err != nil {
		panic(err)
	}
	return column
}

func (c *ConstantColumn) Get(row int) DataValue { return c.value }
