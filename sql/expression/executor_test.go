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

package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skyzh/databend/sql"
	"github.com/skyzh/databend/sql/expression/function"
)

func mustBlock(t *testing.T, schema sql.Schema, columns ...sql.Column) *sql.Block {
	t.Helper()
	block, err := sql.NewBlock(schema, columns)
	require.NoError(t, err)
	return block
}

func TestExecutePlusConstant(t *testing.T) {
	input := sql.Schema{sql.NewField("a", sql.Int32, false)}
	expr := NewFunctionCall("plus", NewColumnRef("a"), NewLiteral(sql.NewInt32Value(1), sql.Int32))
	output := sql.Schema{sql.NewField(expr.ColumnName(), sql.Int32, false)}

	executor, err := NewExecutor("test", input, output, []Expression{expr}, false)
	require.NoError(t, err)
	require.NoError(t, executor.Validate())

	block := mustBlock(t, input, sql.NewInt32Column([]int32{1, 2, 3}))
	result, err := executor.Execute(block)
	require.NoError(t, err)

	require.Equal(t, output, result.Schema())
	c := result.Column(0)
	require.Equal(t, 3, c.Len())
	for i, expected := range []int32{2, 3, 4} {
		require.Equal(t, sql.NewInt32Value(expected), c.Get(i))
	}
}

func TestExecuteNullMasking(t *testing.T) {
	// the function's raw output claims full validity; the executor must
	// intersect it with the argument's bitmap
	input := sql.Schema{sql.NewField("a", sql.NewNullableType(sql.Int32), true)}
	expr := NewFunctionCall("plus", NewColumnRef("a"), NewLiteral(sql.NewInt32Value(1), sql.Int32))
	output := sql.Schema{sql.NewField(expr.ColumnName(), sql.Int32, true)}

	executor, err := NewExecutor("test", input, output, []Expression{expr}, false)
	require.NoError(t, err)

	column := sql.NewNullableColumn(
		sql.NewInt32Column([]int32{1, 2, 3}),
		sql.NewValidityFromBools([]bool{true, false, true}),
	)
	block := mustBlock(t, input, column)

	result, err := executor.Execute(block)
	require.NoError(t, err)

	c := result.Column(0)
	require.False(t, c.NullAt(0))
	require.True(t, c.NullAt(1))
	require.False(t, c.NullAt(2))
	require.Equal(t, sql.NewInt32Value(2), c.Get(0))
	require.Equal(t, sql.NewInt32Value(4), c.Get(2))
}

// trapFunction records whether Eval was invoked.
type trapFunction struct {
	called *bool
}

func (f trapFunction) Name() string          { return "trap" }
func (f trapFunction) Nullable() bool        { return false }
func (f trapFunction) PassthroughNull() bool { return true }

func (f trapFunction) ReturnType(args []sql.DataType) (sql.DataType, error) {
	return sql.Int32, nil
}

func (f trapFunction) Eval(args []sql.ColumnWithField, rows int) (sql.Column, error) {
	*f.called = true
	return sql.NewInt32Column(make([]int32, rows)), nil
}

func TestExecuteAllNullShortCircuit(t *testing.T) {
	called := false
	registry := function.NewRegistry()
	registry.Register(trapFunction{called: &called})

	input := sql.Schema{sql.NewField("a", sql.Null, true)}
	expr := NewFunctionCall("trap", NewColumnRef("a"))
	output := sql.Schema{sql.NewField(expr.ColumnName(), sql.Int32, true)}

	executor, err := NewExecutorWithRegistry("test", input, output, []Expression{expr}, false, registry)
	require.NoError(t, err)

	block := mustBlock(t, input, sql.NewNullColumn(3))
	result, err := executor.Execute(block)
	require.NoError(t, err)

	require.False(t, called)
	c := result.Column(0)
	require.Equal(t, 3, c.Len())
	require.True(t, c.OnlyNull())
}

func TestExecuteAliasFanOut(t *testing.T) {
	input := sql.Schema{sql.NewField("a", sql.Int32, false)}
	x := NewFunctionCall("plus", NewColumnRef("a"), NewLiteral(sql.NewInt32Value(1), sql.Int32))
	exprs := []Expression{NewAlias("y", x), NewAlias("z", x)}
	output := sql.Schema{
		sql.NewField("y", sql.Int32, false),
		sql.NewField("z", sql.Int32, false),
	}

	executor, err := NewExecutor("test", input, output, exprs, true)
	require.NoError(t, err)

	block := mustBlock(t, input, sql.NewInt32Column([]int32{1, 2, 3}))
	result, err := executor.Execute(block)
	require.NoError(t, err)

	require.Equal(t, 2, result.NumColumns())
	for col := 0; col < 2; col++ {
		c := result.Column(col)
		for i, expected := range []int32{2, 3, 4} {
			require.Equal(t, sql.NewInt32Value(expected), c.Get(i))
		}
	}
}

func TestExecuteDuplicateAlias(t *testing.T) {
	input := sql.Schema{
		sql.NewField("a", sql.Int32, false),
		sql.NewField("b", sql.Int32, false),
	}
	exprs := []Expression{
		NewAlias("y", NewColumnRef("a")),
		NewAlias("y", NewColumnRef("b")),
	}
	output := sql.Schema{sql.NewField("y", sql.Int32, false)}

	executor, err := NewExecutor("test", input, output, exprs, true)
	require.NoError(t, err)

	block := mustBlock(t, input,
		sql.NewInt32Column([]int32{1}),
		sql.NewInt32Column([]int32{2}),
	)
	_, err = executor.Execute(block)
	require.Error(t, err)
	require.True(t, sql.ErrDuplicateAlias.Is(err))
}

func TestExecuteProjectionStripsIntermediates(t *testing.T) {
	input := sql.Schema{sql.NewField("a", sql.Int32, false)}
	expr := NewFunctionCall("plus", NewColumnRef("a"), NewLiteral(sql.NewInt32Value(1), sql.Int32))
	// output schema omits "a": it must not leak into the result
	output := sql.Schema{sql.NewField(expr.ColumnName(), sql.Int32, false)}

	executor, err := NewExecutor("test", input, output, []Expression{expr}, false)
	require.NoError(t, err)

	result, err := executor.Execute(mustBlock(t, input, sql.NewInt32Column([]int32{1})))
	require.NoError(t, err)
	require.Equal(t, 1, result.NumColumns())
	require.False(t, result.Schema().Contains("a"))
}

func TestExecuteMissingProjectionColumn(t *testing.T) {
	input := sql.Schema{sql.NewField("a", sql.Int32, false)}
	output := sql.Schema{sql.NewField("nope", sql.Int32, false)}

	executor, err := NewExecutor("test", input, output, []Expression{NewColumnRef("a")}, false)
	require.NoError(t, err)

	_, err = executor.Execute(mustBlock(t, input, sql.NewInt32Column([]int32{1})))
	require.Error(t, err)
	require.True(t, sql.ErrProjectionColumnNotFound.Is(err))
}

func TestExecuteConstant(t *testing.T) {
	input := sql.Schema{sql.NewField("a", sql.Int32, false)}
	lit := NewLiteral(sql.NewStringValue("hello"), sql.Text)
	output := sql.Schema{sql.NewField(lit.ColumnName(), sql.Text, false)}

	executor, err := NewExecutor("test", input, output, []Expression{lit}, false)
	require.NoError(t, err)

	result, err := executor.Execute(mustBlock(t, input, sql.NewInt32Column([]int32{1, 2})))
	require.NoError(t, err)
	c := result.Column(0)
	require.Equal(t, 2, c.Len())
	require.Equal(t, sql.NewStringValue("hello"), c.Get(0))
}

func TestExecuteIsNullSeesRawValidity(t *testing.T) {
	// is_null is not passthrough: the executor must not mask it and null
	// rows stay visible to the function
	input := sql.Schema{sql.NewField("a", sql.NewNullableType(sql.Int32), true)}
	expr := NewFunctionCall("is_null", NewColumnRef("a"))
	output := sql.Schema{sql.NewField(expr.ColumnName(), sql.Boolean, false)}

	executor, err := NewExecutor("test", input, output, []Expression{expr}, false)
	require.NoError(t, err)

	column := sql.NewNullableColumn(
		sql.NewInt32Column([]int32{1, 2, 3}),
		sql.NewValidityFromBools([]bool{false, true, false}),
	)
	result, err := executor.Execute(mustBlock(t, input, column))
	require.NoError(t, err)

	c := result.Column(0)
	require.Equal(t, sql.NewBooleanValue(true), c.Get(0))
	require.Equal(t, sql.NewBooleanValue(false), c.Get(1))
	require.Equal(t, sql.NewBooleanValue(true), c.Get(2))
}

func TestExecuteSharedPrefixIdempotent(t *testing.T) {
	// the same subexpression appearing twice executes once; re-running a
	// shared prefix is a no-op
	input := sql.Schema{sql.NewField("a", sql.Int32, false)}
	x := NewFunctionCall("plus", NewColumnRef("a"), NewLiteral(sql.NewInt32Value(1), sql.Int32))
	exprs := []Expression{x, x}
	output := sql.Schema{sql.NewField(x.ColumnName(), sql.Int32, false)}

	executor, err := NewExecutor("test", input, output, exprs, false)
	require.NoError(t, err)

	result, err := executor.Execute(mustBlock(t, input, sql.NewInt32Column([]int32{5})))
	require.NoError(t, err)
	require.Equal(t, sql.NewInt32Value(6), result.Column(0).Get(0))
}

func TestExecuteConcurrent(t *testing.T) {
	input := sql.Schema{sql.NewField("a", sql.Int32, false)}
	expr := NewFunctionCall("plus", NewColumnRef("a"), NewLiteral(sql.NewInt32Value(1), sql.Int32))
	output := sql.Schema{sql.NewField(expr.ColumnName(), sql.Int32, false)}

	executor, err := NewExecutor("test", input, output, []Expression{expr}, false)
	require.NoError(t, err)

	done := make(chan error)
	for g := 0; g < 8; g++ {
		go func(g int) {
			block, err := sql.NewBlock(input, []sql.Column{sql.NewInt32Column([]int32{int32(g)})})
			if err != nil {
				done <- err
				return
			}
			result, err := executor.Execute(block)
			if err == nil && result.Column(0).Get(0) != sql.NewInt32Value(int32(g)+1) {
				err = sql.ErrInvalidType.New("wrong result")
			}
			done <- err
		}(g)
	}
	for g := 0; g < 8; g++ {
		require.NoError(t, <-done)
	}
}
