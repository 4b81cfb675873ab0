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

import "github.com/skyzh/databend/sql"

// isNull inspects argument validity directly: it is neither nullable nor
// passthrough, so the executor never masks it and null rows stay visible.
type isNull struct{}

// NewIsNull returns the is_null predicate.
func NewIsNull() Function { return isNull{} }

func (isNull) Name() string          { return "is_null" }
func (isNull) Nullable() bool        { return false }
func (isNull) PassthroughNull() bool { return false }

func (isNull) ReturnType(args []sql.DataType) (sql.DataType, error) {
	if len(args) != 1 {
		return nil, sql.ErrInvalidType.New("is_null expects 1 argument")
	}
	return sql.Boolean, nil
}

func (isNull) Eval(args []sql.ColumnWithField, rows int) (sql.Column, error) {
	c := args[0].Column
	res := make([]bool, rows)
	for i := 0; i < rows; i++ {
		res[i] = c.NullAt(i)
	}
	return sql.NewBooleanColumn(res), nil
}
