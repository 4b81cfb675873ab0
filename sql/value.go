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
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TypeID identifies a logical data type.
type TypeID int8

const (
	TypeIDNull TypeID = iota
	TypeIDBoolean
	TypeIDInt32
	TypeIDInt64
	TypeIDFloat64
	TypeIDString
	TypeIDDecimal
	TypeIDNullable
)

func (t TypeID) String() string {
	switch t {
	case TypeIDNull:
		return "Null"
	case TypeIDBoolean:
		return "Boolean"
	case TypeIDInt32:
		return "Int32"
	case TypeIDInt64:
		return "Int64"
	case TypeIDFloat64:
		return "Float64"
	case TypeIDString:
		return "String"
	case TypeIDDecimal:
		return "Decimal"
	case TypeIDNullable:
		return "Nullable"
	}
	return "Unknown"
}

// DataValue is a scalar tagged union. The zero value is NULL. Values are
// immutable and freely copyable.
type DataValue struct {
	kind TypeID
	ival int64
	fval float64
	sval string
	bval bool
	dval decimal.Decimal
}

// NullValue is the NULL scalar.
var NullValue = DataValue{}

func NewBooleanValue(v bool) DataValue  { return DataValue{kind: TypeIDBoolean, bval: v} }
func NewInt32Value(v int32) DataValue   { return DataValue{kind: TypeIDInt32, ival: int64(v)} }
func NewInt64Value(v int64) DataValue   { return DataValue{kind: TypeIDInt64, ival: v} }
func NewFloat64Value(v float64) DataValue { return DataValue{kind: TypeIDFloat64, fval: v} }
func NewStringValue(v string) DataValue { return DataValue{kind: TypeIDString, sval: v} }

func NewDecimalValue(v decimal.Decimal) DataValue {
	return DataValue{kind: TypeIDDecimal, dval: v}
}

// Kind returns the type tag of the value.
func (v DataValue) Kind() TypeID { return v.kind }

// IsNull reports whether the value is NULL.
func (v DataValue) IsNull() bool { return v.kind == TypeIDNull }

func (v DataValue) Bool() bool               { return v.bval }
func (v DataValue) Int32() int32             { return int32(v.ival) }
func (v DataValue) Int64() int64             { return v.ival }
func (v DataValue) Float64() float64         { return v.fval }
func (v DataValue) Str() string              { return v.sval }
func (v DataValue) Decimal() decimal.Decimal { return v.dval }

// Compare orders v against other, returning -1, 0 or 1. NULL orders before
// every non-null value and two NULLs compare equal. Numeric kinds compare by
// value across kinds; otherwise values of different kinds order by type tag.
func (v DataValue) Compare(other DataValue) int {
	switch {
	case v.IsNull() && other.IsNull():
		return 0
	case v.IsNull():
		return -1
	case other.IsNull():
		return 1
	}
	if v.isNumeric() && other.isNumeric() {
		return v.asDecimal().Cmp(other.asDecimal())
	}
	if v.kind != other.kind {
		if v.kind < other.kind {
			return -1
		}
		return 1
	}
	switch v.kind {
	case TypeIDBoolean:
		switch {
		case v.bval == other.bval:
			return 0
		case !v.bval:
			return -1
		}
		return 1
	case TypeIDString:
		return strings.Compare(v.sval, other.sval)
	}
	return 0
}

func (v DataValue) isNumeric() bool {
	switch v.kind {
	case TypeIDInt32, TypeIDInt64, TypeIDFloat64, TypeIDDecimal:
		return true
	}
	return false
}

func (v DataValue) asDecimal() decimal.Decimal {
	switch v.kind {
	case TypeIDInt32, TypeIDInt64:
		return decimal.NewFromInt(v.ival)
	case TypeIDFloat64:
		return decimal.NewFromFloat(v.fval)
	}
	return v.dval
}

// Any returns the value as a plain Go value, nil for NULL.
func (v DataValue) Any() interface{} {
	switch v.kind {
	case TypeIDNull:
		return nil
	case TypeIDBoolean:
		return v.bval
	case TypeIDInt32:
		return int32(v.ival)
	case TypeIDInt64:
		return v.ival
	case TypeIDFloat64:
		return v.fval
	case TypeIDString:
		return v.sval
	case TypeIDDecimal:
		return v.dval
	}
	return nil
}

func (v DataValue) String() string {
	switch v.kind {
	case TypeIDNull:
		return "NULL"
	case TypeIDBoolean:
		return strconv.FormatBool(v.bval)
	case TypeIDInt32, TypeIDInt64:
		return strconv.FormatInt(v.ival, 10)
	case TypeIDFloat64:
		return strconv.FormatFloat(v.fval, 'g', -1, 64)
	case TypeIDString:
		return v.sval
	case TypeIDDecimal:
		return v.dval.String()
	}
	return fmt.Sprintf("unknown(%d)", v.kind)
}
