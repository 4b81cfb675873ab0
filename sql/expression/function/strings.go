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
	"strings"

	"github.com/skyzh/databend/sql"
)

type stringMap struct {
	name string
	fn   func(string) string
}

// NewUpper returns the upper-casing function.
func NewUpper() Function { return &stringMap{name: "upper", fn: strings.ToUpper} }

// NewLower returns the lower-casing function.
func NewLower() Function { return &stringMap{name: "lower", fn: strings.ToLower} }

func (f *stringMap) Name() string          { return f.name }
func (f *stringMap) Nullable() bool        { return false }
func (f *stringMap) PassthroughNull() bool { return true }

func (f *stringMap) ReturnType(args []sql.DataType) (sql.DataType, error) {
	if len(args) != 1 {
		return nil, sql.ErrInvalidType.New(f.name + " expects 1 argument")
	}
	switch sql.RemoveNullable(args[0]).TypeID() {
	case sql.TypeIDString, sql.TypeIDNull:
		return sql.Text, nil
	}
	return nil, sql.ErrInvalidType.New(args[0].Name())
}

func (f *stringMap) Eval(args []sql.ColumnWithField, rows int) (sql.Column, error) {
	c := args[0].Column
	res := make([]string, rows)
	for i := 0; i < rows; i++ {
		if v := c.Get(i); !v.IsNull() {
			res[i] = f.fn(v.Str())
		}
	}
	return sql.NewStringColumn(res), nil
}
