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
	"github.com/apache/arrow/go/v7/arrow"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// DataType describes one logical column type. Implementations are stateless
// singletons and safe for concurrent use.
type DataType interface {
	// Name returns the name of the type.
	Name() string
	// TypeID returns the type tag.
	TypeID() TypeID
	// Nullable reports whether values of this type may be NULL.
	Nullable() bool
	// Default returns the default value of the type.
	Default() DataValue
	// ArrowType returns the physical arrow type. Nullability is a logical
	// annotation plus a bitmap, not a separate encoding.
	ArrowType() arrow.DataType
	// Convert coerces a plain Go value into a DataValue of this type.
	Convert(v interface{}) (DataValue, error)
	// CreateColumn builds a column from scalar values.
	CreateColumn(values []DataValue) (Column, error)
	// CreateConstantColumn builds a column repeating value size times.
	CreateConstantColumn(value DataValue, size int) (Column, error)
}

var (
	Null    nullType
	Boolean booleanType
	Int32   int32Type
	Int64   int64Type
	Float64 float64Type
	Text    stringType
	Decimal decimalType
)

// RemoveNullable unwraps a nullable type down to its inner type.
func RemoveNullable(t DataType) DataType {
	if n, ok := t.(*NullableType); ok {
		return n.InnerType()
	}
	return t
}

type nullType struct{}

func (nullType) Name() string              { return "Null" }
func (nullType) TypeID() TypeID            { return TypeIDNull }
func (nullType) Nullable() bool            { return true }
func (nullType) Default() DataValue        { return NullValue }
func (nullType) ArrowType() arrow.DataType { return arrow.Null }
func (nullType) String() string            { return "Null" }

func (nullType) Convert(v interface{}) (DataValue, error) {
	if v == nil {
		return NullValue, nil
	}
	return NullValue, ErrInvalidType.New(v)
}

func (nullType) CreateColumn(values []DataValue) (Column, error) {
	return NewNullColumn(len(values)), nil
}

func (nullType) CreateConstantColumn(value DataValue, size int) (Column, error) {
	return NewNullColumn(size), nil
}

type booleanType struct{}

func (booleanType) Name() string              { return "Boolean" }
func (booleanType) TypeID() TypeID            { return TypeIDBoolean }
func (booleanType) Nullable() bool            { return false }
func (booleanType) Default() DataValue        { return NewBooleanValue(false) }
func (booleanType) ArrowType() arrow.DataType { return arrow.FixedWidthTypes.Boolean }
func (booleanType) String() string            { return "Boolean" }

func (booleanType) Convert(v interface{}) (DataValue, error) {
	if v == nil {
		return NullValue, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return NullValue, ErrInvalidType.New(v)
	}
	return NewBooleanValue(b), nil
}

func (t booleanType) CreateColumn(values []DataValue) (Column, error) {
	res := make([]bool, len(values))
	for i, v := range values {
		cv, err := t.Convert(v.Any())
		if err != nil {
			return nil, err
		}
		res[i] = cv.Bool()
	}
	return NewBooleanColumn(res), nil
}

func (t booleanType) CreateConstantColumn(value DataValue, size int) (Column, error) {
	cv, err := t.Convert(value.Any())
	if err != nil {
		return nil, err
	}
	res := make([]bool, size)
	for i := range res {
		res[i] = cv.Bool()
	}
	return NewBooleanColumn(res), nil
}

type int32Type struct{}

func (int32Type) Name() string              { return "Int32" }
func (int32Type) TypeID() TypeID            { return TypeIDInt32 }
func (int32Type) Nullable() bool            { return false }
func (int32Type) Default() DataValue        { return NewInt32Value(0) }
func (int32Type) ArrowType() arrow.DataType { return arrow.PrimitiveTypes.Int32 }
func (int32Type) String() string            { return "Int32" }

func (int32Type) Convert(v interface{}) (DataValue, error) {
	if v == nil {
		return NullValue, nil
	}
	n, err := cast.ToInt32E(v)
	if err != nil {
		return NullValue, ErrInvalidType.New(v)
	}
	return NewInt32Value(n), nil
}

func (t int32Type) CreateColumn(values []DataValue) (Column, error) {
	res := make([]int32, len(values))
	for i, v := range values {
		cv, err := t.Convert(v.Any())
		if err != nil {
			return nil, err
		}
		res[i] = cv.Int32()
	}
	return NewInt32Column(res), nil
}

func (t int32Type) CreateConstantColumn(value DataValue, size int) (Column, error) {
	cv, err := t.Convert(value.Any())
	if err != nil {
		return nil, err
	}
	res := make([]int32, size)
	for i := range res {
		res[i] = cv.Int32()
	}
	return NewInt32Column(res), nil
}

type int64Type struct{}

func (int64Type) Name() string              { return "Int64" }
func (int64Type) TypeID() TypeID            { return TypeIDInt64 }
func (int64Type) Nullable() bool            { return false }
func (int64Type) Default() DataValue        { return NewInt64Value(0) }
func (int64Type) ArrowType() arrow.DataType { return arrow.PrimitiveTypes.Int64 }
func (int64Type) String() string            { return "Int64" }

func (int64Type) Convert(v interface{}) (DataValue, error) {
	if v == nil {
		return NullValue, nil
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return NullValue, ErrInvalidType.New(v)
	}
	return NewInt64Value(n), nil
}

func (t int64Type) CreateColumn(values []DataValue) (Column, error) {
	res := make([]int64, len(values))
	for i, v := range values {
		cv, err := t.Convert(v.Any())
		if err != nil {
			return nil, err
		}
		res[i] = cv.Int64()
	}
	return NewInt64Column(res), nil
}

func (t int64Type) CreateConstantColumn(value DataValue, size int) (Column, error) {
	cv, err := t.Convert(value.Any())
	if err != nil {
		return nil, err
	}
	res := make([]int64, size)
	for i := range res {
		res[i] = cv.Int64()
	}
	return NewInt64Column(res), nil
}

type float64Type struct{}

func (float64Type) Name() string              { return "Float64" }
func (float64Type) TypeID() TypeID            { return TypeIDFloat64 }
func (float64Type) Nullable() bool            { return false }
func (float64Type) Default() DataValue        { return NewFloat64Value(0) }
func (float64Type) ArrowType() arrow.DataType { return arrow.PrimitiveTypes.Float64 }
func (float64Type) String() string            { return "Float64" }

func (float64Type) Convert(v interface{}) (DataValue, error) {
	if v == nil {
		return NullValue, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return NullValue, ErrInvalidType.New(v)
	}
	return NewFloat64Value(f), nil
}

func (t float64Type) CreateColumn(values []DataValue) (Column, error) {
	res := make([]float64, len(values))
	for i, v := range values {
		cv, err := t.Convert(v.Any())
		if err != nil {
			return nil, err
		}
		res[i] = cv.Float64()
	}
	return NewFloat64Column(res), nil
}

func (t float64Type) CreateConstantColumn(value DataValue, size int) (Column, error) {
	cv, err := t.Convert(value.Any())
	if err != nil {
		return nil, err
	}
	res := make([]float64, size)
	for i := range res {
		res[i] = cv.Float64()
	}
	return NewFloat64Column(res), nil
}

type stringType struct{}

func (stringType) Name() string              { return "String" }
func (stringType) TypeID() TypeID            { return TypeIDString }
func (stringType) Nullable() bool            { return false }
func (stringType) Default() DataValue        { return NewStringValue("") }
func (stringType) ArrowType() arrow.DataType { return arrow.BinaryTypes.String }
func (stringType) String() string            { return "String" }

func (stringType) Convert(v interface{}) (DataValue, error) {
	if v == nil {
		return NullValue, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return NullValue, ErrInvalidType.New(v)
	}
	return NewStringValue(s), nil
}

func (t stringType) CreateColumn(values []DataValue) (Column, error) {
	res := make([]string, len(values))
	for i, v := range values {
		cv, err := t.Convert(v.Any())
		if err != nil {
			return nil, err
		}
		res[i] = cv.Str()
	}
	return NewStringColumn(res), nil
}

func (t stringType) CreateConstantColumn(value DataValue, size int) (Column, error) {
	cv, err := t.Convert(value.Any())
	if err != nil {
		return nil, err
	}
	res := make([]string, size)
	for i := range res {
		res[i] = cv.Str()
	}
	return NewStringColumn(res), nil
}

type decimalType struct{}

func (decimalType) Name() string       { return "Decimal" }
func (decimalType) TypeID() TypeID     { return TypeIDDecimal }
func (decimalType) Nullable() bool     { return false }
func (decimalType) Default() DataValue { return NewDecimalValue(decimal.Zero) }
func (decimalType) String() string     { return "Decimal" }

func (decimalType) ArrowType() arrow.DataType {
	return &arrow.Decimal128Type{Precision: 38, Scale: 18}
}

func (decimalType) Convert(v interface{}) (DataValue, error) {
	switch d := v.(type) {
	case nil:
		return NullValue, nil
	case decimal.Decimal:
		return NewDecimalValue(d), nil
	case string:
		dec, err := decimal.NewFromString(d)
		if err != nil {
			return NullValue, ErrInvalidType.New(v)
		}
		return NewDecimalValue(dec), nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return NullValue, ErrInvalidType.New(v)
	}
	return NewDecimalValue(decimal.NewFromFloat(f)), nil
}

func (t decimalType) CreateColumn(values []DataValue) (Column, error) {
	res := make([]decimal.Decimal, len(values))
	for i, v := range values {
		cv, err := t.Convert(v.Any())
		if err != nil {
			return nil, err
		}
		res[i] = cv.Decimal()
	}
	return NewDecimalColumn(res), nil
}

func (t decimalType) CreateConstantColumn(value DataValue, size int) (Column, error) {
	cv, err := t.Convert(value.Any())
	if err != nil {
		return nil, err
	}
	res := make([]decimal.Decimal, size)
	for i := range res {
		res[i] = cv.Decimal()
	}
	return NewDecimalColumn(res), nil
}
