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
)

// Expression is a node of a scalar expression tree. Trees are linearized
// into chains before execution; the executor never walks them.
type Expression interface {
	fmt.Stringer
	// ColumnName is the working-map name the linearized result of this
	// expression is stored under.
	ColumnName() string
}

// ColumnRef references an input column by name.
type ColumnRef struct {
	name string
}

// NewColumnRef references the named input column.
func NewColumnRef(name string) *ColumnRef { return &ColumnRef{name: name} }

func (e *ColumnRef) ColumnName() string { return e.name }
func (e *ColumnRef) String() string     { return e.name }

// Literal is a constant scalar.
type Literal struct {
	value sql.DataValue
	typ   sql.DataType
}

// NewLiteral returns a constant expression of the given declared type.
func NewLiteral(value sql.DataValue, typ sql.DataType) *Literal {
	return &Literal{value: value, typ: typ}
}

func (e *Literal) ColumnName() string { return e.value.String() }
func (e *Literal) String() string     { return e.value.String() }

// FunctionCall applies a registered scalar function to its arguments.
type FunctionCall struct {
	name string
	args []Expression
}

// NewFunctionCall applies the named function to the arguments.
func NewFunctionCall(name string, args ...Expression) *FunctionCall {
	return &FunctionCall{name: name, args: args}
}

func (e *FunctionCall) ColumnName() string { return e.String() }

func (e *FunctionCall) String() string {
	parts := make([]string, len(e.args))
	for i, arg := range e.args {
		parts[i] = arg.ColumnName()
	}
	return e.name + "(" + strings.Join(parts, ", ") + ")"
}

// Alias exposes a child expression under another name. One source may fan
// out to several aliases.
type Alias struct {
	name  string
	child Expression
}

// NewAlias names the child expression.
func NewAlias(name string, child Expression) *Alias {
	return &Alias{name: name, child: child}
}

// Child returns the aliased expression.
func (e *Alias) Child() Expression { return e.child }

func (e *Alias) ColumnName() string { return e.name }

func (e *Alias) String() string {
	return fmt.Sprintf("%s as %s", e.child, e.name)
}
