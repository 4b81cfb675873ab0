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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullableTypeBasics(t *testing.T) {
	typ := NewNullableType(Int32)
	require.Equal(t, "Nullable(Int32)", typ.Name())
	require.True(t, typ.Nullable())
	require.Equal(t, NullValue, typ.Default())
	require.Equal(t, Int32.ArrowType(), typ.ArrowType())
	require.Equal(t, Int32, RemoveNullable(typ))
	require.Equal(t, Int32, RemoveNullable(Int32))
}

func TestNullableTypeConstantColumnOverNull(t *testing.T) {
	// Nullable(Null) collapses to a NullColumn, not a bitmap-bearing column.
	typ := NewNullableType(Null)
	c, err := typ.CreateConstantColumn(NullValue, 5)
	require.NoError(t, err)

	nc, ok := c.(*NullColumn)
	require.True(t, ok)
	require.Equal(t, 5, nc.Len())
}

func TestNullableTypeRejectsNesting(t *testing.T) {
	typ := NewNullableType(NewNullableType(Int32))
	_, err := typ.CreateConstantColumn(NewInt32Value(1), 3)
	require.Error(t, err)
	require.True(t, ErrBadDataValueType.Is(err))
}

func TestNullableTypeConstantColumn(t *testing.T) {
	typ := NewNullableType(Int32)

	c, err := typ.CreateConstantColumn(NewInt32Value(7), 3)
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	for i := 0; i < 3; i++ {
		require.False(t, c.NullAt(i))
		require.Equal(t, NewInt32Value(7), c.Get(i))
	}

	c, err = typ.CreateConstantColumn(NullValue, 3)
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	require.True(t, c.OnlyNull())

	// the physical payload carries the inner default
	nc, ok := c.(*NullableColumn)
	require.True(t, ok)
	require.Equal(t, NewInt32Value(0), nc.Inner().Get(1))
}

func TestNullableTypeCreateColumn(t *testing.T) {
	typ := NewNullableType(Int32)
	c, err := typ.CreateColumn([]DataValue{NullValue, NewInt32Value(42), NullValue})
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	require.True(t, c.NullAt(0))
	require.False(t, c.NullAt(1))
	require.True(t, c.NullAt(2))
	require.Equal(t, NewInt32Value(42), c.Get(1))
	require.Equal(t, NullValue, c.Get(0))

	nc, ok := c.(*NullableColumn)
	require.True(t, ok)
	require.Equal(t, NewInt32Value(0), nc.Inner().Get(0))
	require.Equal(t, NewInt32Value(0), nc.Inner().Get(2))
}

func TestNullableTypeErrorPropagation(t *testing.T) {
	// inner construction errors pass through unchanged
	typ := NewNullableType(Int32)
	_, err := typ.CreateColumn([]DataValue{NewStringValue("not a number")})
	require.Error(t, err)
	require.True(t, ErrInvalidType.Is(err))
}
