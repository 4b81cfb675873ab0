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
	"fmt"
	"strings"

	"github.com/skyzh/databend/sql"
	"github.com/skyzh/databend/sql/expression/function"
)

// Action is one atomic step of a linearized expression chain. Every action
// stores its result in the working map under ColumnName.
type Action interface {
	fmt.Stringer
	ColumnName() string
}

// ActionInput fetches a column from the input block.
type ActionInput struct {
	Name       string
	ReturnType sql.DataType
}

func (a *ActionInput) ColumnName() string { return a.Name }

func (a *ActionInput) String() string {
	return fmt.Sprintf("input %s of type %s", a.Name, a.ReturnType.Name())
}

// ActionFunction evaluates a scalar function over already-prepared argument
// columns.
type ActionFunction struct {
	Name     string
	FuncName string
	ArgNames []string
	// Nullable is true when the result may contain nulls, either because
	// the function itself is nullable or because an argument is.
	Nullable   bool
	ReturnType sql.DataType
	Func       function.Function
}

func (a *ActionFunction) ColumnName() string { return a.Name }

func (a *ActionFunction) String() string {
	return fmt.Sprintf("%s(%s) -> %s", a.FuncName, strings.Join(a.ArgNames, ", "), a.ReturnType.Name())
}

// ActionConstant materializes a constant value over the whole batch.
type ActionConstant struct {
	Name     string
	Value    sql.DataValue
	DataType sql.DataType
}

func (a *ActionConstant) ColumnName() string { return a.Name }

func (a *ActionConstant) String() string {
	return fmt.Sprintf("constant %s of type %s", a.Name, a.DataType.Name())
}

// ActionAlias records a rename of an already-computed column. It evaluates
// nothing itself.
type ActionAlias struct {
	Name    string
	ArgName string
}

func (a *ActionAlias) ColumnName() string { return a.Name }

func (a *ActionAlias) String() string {
	return fmt.Sprintf("alias %s as %s", a.ArgName, a.Name)
}
