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

// Block is a batch of equal-length named columns plus its schema. Blocks are
// immutable once built.
type Block struct {
	schema  Schema
	columns []Column
}

// NewBlock pairs a schema with its columns, enforcing that every column
// shares the same row count.
func NewBlock(schema Schema, columns []Column) (*Block, error) {
	if len(schema) != len(columns) {
		return nil, ErrUnexpectedColumnCount.New(len(schema), len(columns))
	}
	if len(columns) > 0 {
		rows := columns[0].Len()
		for i, c := range columns {
			if c.Len() != rows {
				return nil, ErrRowCountMismatch.New(schema[i].Name, c.Len(), rows)
			}
		}
	}
	return &Block{schema: schema, columns: columns}, nil
}

// Schema returns the block schema.
func (b *Block) Schema() Schema { return b.schema }

// NumRows returns the shared row count of the block's columns.
func (b *Block) NumRows() int {
	if len(b.columns) == 0 {
		return 0
	}
	return b.columns[0].Len()
}

// NumColumns returns the number of columns.
func (b *Block) NumColumns() int { return len(b.columns) }

// Column returns the column at the given position.
func (b *Block) Column(i int) Column { return b.columns[i] }

// ColumnByName returns the named column.
func (b *Block) ColumnByName(name string) (Column, error) {
	i := b.schema.IndexOf(name)
	if i < 0 {
		return nil, ErrColumnNotFound.New(name)
	}
	return b.columns[i], nil
}

// MemorySize returns the approximate heap footprint of all columns.
func (b *Block) MemorySize() int {
	size := 0
	for _, c := range b.columns {
		size += c.MemorySize()
	}
	return size
}
