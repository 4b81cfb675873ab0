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

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/array"
	"github.com/stretchr/testify/require"
)

func TestNullColumn(t *testing.T) {
	for _, n := range []int{0, 1, 4, 1024} {
		c := NewNullColumn(n)
		require.Equal(t, n, c.Len())
		require.True(t, c.OnlyNull())
		require.True(t, c.Nullable())
		require.Equal(t, Null, c.DataType())
		for i := 0; i < n; i++ {
			require.True(t, c.NullAt(i))
			require.Equal(t, NullValue, c.Get(i))
		}

		hasNulls, bitmap := c.Validity()
		require.True(t, hasNulls)
		require.Nil(t, bitmap)
	}
}

func TestNullColumnMemorySize(t *testing.T) {
	// O(1) regardless of length.
	require.Equal(t, NewNullColumn(0).MemorySize(), NewNullColumn(1<<20).MemorySize())
}

func TestNullColumnSlice(t *testing.T) {
	c := NewNullColumn(10)
	s := c.Slice(2, 5)
	require.Equal(t, 5, s.Len())
	require.True(t, s.OnlyNull())
}

func TestNullColumnReplicate(t *testing.T) {
	c := NewNullColumn(4)
	r := c.Replicate([]int{2, 5, 5, 9})
	require.Equal(t, 9, r.Len())
	require.True(t, r.OnlyNull())

	empty := NewNullColumn(0).Replicate(nil)
	require.Equal(t, 0, empty.Len())
}

func TestNullColumnConvertFull(t *testing.T) {
	c := NewNullColumn(3)
	require.Equal(t, Column(c), c.ConvertFull())
}

func TestNullColumnBuilder(t *testing.T) {
	b := NewNullColumnBuilder()
	for i := 0; i < 3; i++ {
		b.AppendNull()
	}
	for i := 0; i < 2; i++ {
		b.AppendDefault()
	}
	require.Equal(t, 5, b.Len())

	c := b.Finish()
	require.Equal(t, 5, c.Len())
	require.True(t, c.OnlyNull())

	// the builder resets and is reusable
	require.Equal(t, 0, b.Len())
	b.AppendNull()
	require.Equal(t, 1, b.Finish().Len())
}

func TestNullColumnArrow(t *testing.T) {
	c := NewNullColumnFromArrow(array.NewNull(7))
	require.Equal(t, 7, c.Len())

	arr := c.AsArrow()
	require.Equal(t, 7, arr.Len())
	require.Equal(t, arrow.NULL, arr.DataType().ID())
}
