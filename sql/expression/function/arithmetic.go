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
	"math"

	"github.com/skyzh/databend/sql"
)

// arithmetic is a binary numeric function evaluated over int64 or float64
// depending on the promoted return type. Null argument rows compute over the
// inner defaults; the executor masks them out afterwards.
type arithmetic struct {
	name string
	ifn  func(a, b int64) int64
	ffn  func(a, b float64) float64
}

// NewPlus returns the addition function.
func NewPlus() Function {
	return &arithmetic{
		name: "plus",
		ifn:  func(a, b int64) int64 { return a + b },
		ffn:  func(a, b float64) float64 { return a + b },
	}
}

// NewMinus returns the subtraction function.
func NewMinus() Function {
	return &arithmetic{
		name: "minus",
		ifn:  func(a, b int64) int64 { return a - b },
		ffn:  func(a, b float64) float64 { return a - b },
	}
}

// NewMultiply returns the multiplication function.
func NewMultiply() Function {
	return &arithmetic{
		name: "multiply",
		ifn:  func(a, b int64) int64 { return a * b },
		ffn:  func(a, b float64) float64 { return a * b },
	}
}

func (f *arithmetic) Name() string          { return f.name }
func (f *arithmetic) Nullable() bool        { return false }
func (f *arithmetic) PassthroughNull() bool { return true }

func (f *arithmetic) ReturnType(args []sql.DataType) (sql.DataType, error) {
	if len(args) != 2 {
		return nil, sql.ErrInvalidType.New(f.name + " expects 2 arguments")
	}
	return numericReturnType(args)
}

func (f *arithmetic) Eval(args []sql.ColumnWithField, rows int) (sql.Column, error) {
	rt, err := f.ReturnType(argTypes(args))
	if err != nil {
		return nil, err
	}
	a, b := args[0].Column, args[1].Column
	switch rt.TypeID() {
	case sql.TypeIDFloat64:
		res := make([]float64, rows)
		for i := 0; i < rows; i++ {
			res[i] = f.ffn(float64At(a, i), float64At(b, i))
		}
		return sql.NewFloat64Column(res), nil
	case sql.TypeIDInt64:
		res := make([]int64, rows)
		for i := 0; i < rows; i++ {
			res[i] = f.ifn(int64At(a, i), int64At(b, i))
		}
		return sql.NewInt64Column(res), nil
	default:
		res := make([]int32, rows)
		for i := 0; i < rows; i++ {
			res[i] = int32(f.ifn(int64At(a, i), int64At(b, i)))
		}
		return sql.NewInt32Column(res), nil
	}
}

// unaryArithmetic is the one-argument counterpart of arithmetic.
type unaryArithmetic struct {
	name string
	ifn  func(a int64) int64
	ffn  func(a float64) float64
}

// NewNegate returns the numeric negation function.
func NewNegate() Function {
	return &unaryArithmetic{
		name: "negate",
		ifn:  func(a int64) int64 { return -a },
		ffn:  func(a float64) float64 { return -a },
	}
}

// NewAbs returns the absolute value function.
func NewAbs() Function {
	return &unaryArithmetic{
		name: "abs",
		ifn: func(a int64) int64 {
			if a < 0 {
				return -a
			}
			return a
		},
		ffn: math.Abs,
	}
}

func (f *unaryArithmetic) Name() string          { return f.name }
func (f *unaryArithmetic) Nullable() bool        { return false }
func (f *unaryArithmetic) PassthroughNull() bool { return true }

func (f *unaryArithmetic) ReturnType(args []sql.DataType) (sql.DataType, error) {
	if len(args) != 1 {
		return nil, sql.ErrInvalidType.New(f.name + " expects 1 argument")
	}
	return numericReturnType(args)
}

func (f *unaryArithmetic) Eval(args []sql.ColumnWithField, rows int) (sql.Column, error) {
	rt, err := f.ReturnType(argTypes(args))
	if err != nil {
		return nil, err
	}
	a := args[0].Column
	switch rt.TypeID() {
	case sql.TypeIDFloat64:
		res := make([]float64, rows)
		for i := 0; i < rows; i++ {
			res[i] = f.ffn(float64At(a, i))
		}
		return sql.NewFloat64Column(res), nil
	case sql.TypeIDInt64:
		res := make([]int64, rows)
		for i := 0; i < rows; i++ {
			res[i] = f.ifn(int64At(a, i))
		}
		return sql.NewInt64Column(res), nil
	default:
		res := make([]int32, rows)
		for i := 0; i < rows; i++ {
			res[i] = int32(f.ifn(int64At(a, i)))
		}
		return sql.NewInt32Column(res), nil
	}
}

func argTypes(args []sql.ColumnWithField) []sql.DataType {
	types := make([]sql.DataType, len(args))
	for i, a := range args {
		types[i] = a.Field.Type
	}
	return types
}

// numericReturnType promotes the argument types: any float argument gives
// Float64, any 64-bit integer gives Int64, otherwise Int32. Null arguments
// are permitted; the executor short-circuits all-null inputs.
func numericReturnType(args []sql.DataType) (sql.DataType, error) {
	hasFloat, hasInt64 := false, false
	for _, t := range args {
		switch sql.RemoveNullable(t).TypeID() {
		case sql.TypeIDFloat64, sql.TypeIDDecimal:
			hasFloat = true
		case sql.TypeIDInt64:
			hasInt64 = true
		case sql.TypeIDInt32, sql.TypeIDNull:
		default:
			return nil, sql.ErrInvalidType.New(t.Name())
		}
	}
	if hasFloat {
		return sql.Float64, nil
	}
	if hasInt64 {
		return sql.Int64, nil
	}
	return sql.Int32, nil
}

func float64At(c sql.Column, row int) float64 {
	v := c.Get(row)
	switch v.Kind() {
	case sql.TypeIDInt32:
		return float64(v.Int32())
	case sql.TypeIDInt64:
		return float64(v.Int64())
	case sql.TypeIDFloat64:
		return v.Float64()
	case sql.TypeIDDecimal:
		f, _ := v.Decimal().Float64()
		return f
	}
	return 0
}

func int64At(c sql.Column, row int) int64 {
	v := c.Get(row)
	switch v.Kind() {
	case sql.TypeIDInt32:
		return int64(v.Int32())
	case sql.TypeIDInt64:
		return v.Int64()
	case sql.TypeIDFloat64:
		return int64(v.Float64())
	case sql.TypeIDDecimal:
		return v.Decimal().IntPart()
	}
	return 0
}
