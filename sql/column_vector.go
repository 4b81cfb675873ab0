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
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"
)

const strconvIntSize = strconv.IntSize / 8

// vectorColumn is the plain physical column: a dense slice of values with no
// notion of nullability. All primitive column kinds share this one
// implementation; the logical type rides alongside the payload.
type vectorColumn[T any] struct {
	typ    DataType
	values []T
}

// NewBooleanColumn returns a column over the given values.
func NewBooleanColumn(values []bool) Column {
	return &vectorColumn[bool]{typ: Boolean, values: values}
}

// NewInt32Column returns a column over the given values.
func NewInt32Column(values []int32) Column {
	return &vectorColumn[int32]{typ: Int32, values: values}
}

// NewInt64Column returns a column over the given values.
func NewInt64Column(values []int64) Column {
	return &vectorColumn[int64]{typ: Int64, values: values}
}

// NewFloat64Column returns a column over the given values.
func NewFloat64Column(values []float64) Column {
	return &vectorColumn[float64]{typ: Float64, values: values}
}

// NewStringColumn returns a column over the given values.
func NewStringColumn(values []string) Column {
	return &vectorColumn[string]{typ: Text, values: values}
}

// NewDecimalColumn returns a column over the given values.
func NewDecimalColumn(values []decimal.Decimal) Column {
	return &vectorColumn[decimal.Decimal]{typ: Decimal, values: values}
}

func (c *vectorColumn[T]) DataType() DataType { return c.typ }
func (c *vectorColumn[T]) Nullable() bool     { return false }
func (c *vectorColumn[T]) Len() int           { return len(c.values) }

func (c *vectorColumn[T]) NullAt(row int) bool { return false }
func (c *vectorColumn[T]) OnlyNull() bool      { return false }

func (c *vectorColumn[T]) Validity() (bool, *Validity) { return false, nil }

func (c *vectorColumn[T]) MemorySize() int {
	var zero T
	size := len(c.values) * int(reflect.TypeOf(zero).Size())
	// string values carry their payload outside the header
	if values, ok := any(c.values).([]string); ok {
		for _, s := range values {
			size += len(s)
		}
	}
	return size
}

func (c *vectorColumn[T]) Slice(offset, length int) Column {
	return &vectorColumn[T]{typ: c.typ, values: c.values[offset : offset+length]}
}

func (c *vectorColumn[T]) Replicate(offsets []int) Column {
	length := 0
	if len(offsets) > 0 {
		length = offsets[len(offsets)-1]
	}
	values := make([]T, 0, length)
	prev := 0
	for i, end := range offsets {
		for ; prev < end; prev++ {
			values = append(values, c.values[i])
		}
	}
	return &vectorColumn[T]{typ: c.typ, values: values}
}

func (c *vectorColumn[T]) ConvertFull() Column { return c }

func (c *vectorColumn[T]) Get(row int) DataValue {
	switch v := any(c.values[row]).(type) {
	case bool:
		return NewBooleanValue(v)
	case int32:
		return NewInt32Value(v)
	case int64:
		return NewInt64Value(v)
	case float64:
		return NewFloat64Value(v)
	case string:
		return NewStringValue(v)
	case decimal.Decimal:
		return NewDecimalValue(v)
	}
	return NullValue
}
