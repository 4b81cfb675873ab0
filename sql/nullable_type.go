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

import "github.com/apache/arrow/go/v7/arrow"

// NullableType marks an inner type's values as possibly absent. Nullability
// is a logical annotation plus a validity bitmap; the physical and wire type
// mirror the inner type.
type NullableType struct {
	inner DataType
}

// NewNullableType wraps an inner type.
func NewNullableType(inner DataType) *NullableType {
	return &NullableType{inner: inner}
}

// InnerType returns the wrapped type.
func (t *NullableType) InnerType() DataType { return t.inner }

func (t *NullableType) Name() string { return "Nullable(" + t.inner.Name() + ")" }

func (t *NullableType) TypeID() TypeID { return TypeIDNullable }

func (t *NullableType) Nullable() bool { return true }

func (t *NullableType) Default() DataValue { return NullValue }

func (t *NullableType) ArrowType() arrow.DataType { return t.inner.ArrowType() }

func (t *NullableType) String() string { return t.Name() }

func (t *NullableType) Convert(v interface{}) (DataValue, error) {
	if v == nil {
		return NullValue, nil
	}
	return t.inner.Convert(v)
}

// CreateConstantColumn repeats one logical entry size times. Nullable over
// the degenerate null type collapses to a NullColumn; nullable inside
// nullable is rejected as redundant.
func (t *NullableType) CreateConstantColumn(value DataValue, size int) (Column, error) {
	if t.inner.TypeID() == TypeIDNull {
		return NewNullColumn(size), nil
	}
	if t.inner.TypeID() == TypeIDNullable {
		return nil, ErrBadDataValueType.New("nullable type can't be inside nullable type")
	}

	validity := NewValidity(0, false)
	data := value
	if value.IsNull() {
		for i := 0; i < size; i++ {
			validity.Append(false)
		}
		data = t.inner.Default()
	} else {
		for i := 0; i < size; i++ {
			validity.Append(true)
		}
	}
	column, err := t.inner.CreateConstantColumn(data, size)
	if err != nil {
		return nil, err
	}
	return NewNullableColumn(column, validity), nil
}

// CreateColumn stages one bitmap bit and one physical value per entry, the
// inner default standing in at null positions, then delegates physical
// construction to the inner type.
func (t *NullableType) CreateColumn(values []DataValue) (Column, error) {
	res := make([]DataValue, 0, len(values))
	validity := NewValidity(0, false)

	for _, v := range values {
		if v.IsNull() {
			validity.Append(false)
			res = append(res, t.inner.Default())
		} else {
			validity.Append(true)
			res = append(res, v)
		}
	}
	column, err := t.inner.CreateColumn(res)
	if err != nil {
		return nil, err
	}
	return NewNullableColumn(column, validity), nil
}
