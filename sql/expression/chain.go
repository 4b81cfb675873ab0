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
	"github.com/skyzh/databend/sql"
	"github.com/skyzh/databend/sql/expression/function"
)

// Chain is a linearized expression tree: an ordered list of actions where
// every action's inputs appear before the action itself. Chains are computed
// once and shared immutably across every Execute call.
type Chain struct {
	Actions []Action

	schema   sql.Schema
	registry function.Registry
}

// NewChain flattens the expression trees against the input schema, resolving
// functions through the registry. Arguments are emitted depth-first so they
// always precede the action consuming them.
func NewChain(schema sql.Schema, exprs []Expression, registry function.Registry) (*Chain, error) {
	chain := &Chain{schema: schema, registry: registry}
	for _, expr := range exprs {
		if err := chain.add(expr); err != nil {
			return nil, err
		}
	}
	return chain, nil
}

func (c *Chain) add(expr Expression) error {
	switch e := expr.(type) {
	case *ColumnRef:
		field, err := c.schema.FieldByName(e.name)
		if err != nil {
			return err
		}
		c.Actions = append(c.Actions, &ActionInput{Name: e.name, ReturnType: field.Type})

	case *Literal:
		c.Actions = append(c.Actions, &ActionConstant{
			Name:     e.ColumnName(),
			Value:    e.value,
			DataType: e.typ,
		})

	case *FunctionCall:
		for _, arg := range e.args {
			if err := c.add(arg); err != nil {
				return err
			}
		}
		fn, err := c.registry.Function(e.name)
		if err != nil {
			return err
		}
		argTypes := make([]sql.DataType, len(e.args))
		argNames := make([]string, len(e.args))
		nullable := fn.Nullable()
		for i, arg := range e.args {
			argNames[i] = arg.ColumnName()
			t, err := c.typeOf(arg)
			if err != nil {
				return err
			}
			argTypes[i] = t
			n, err := c.nullableOf(arg)
			if err != nil {
				return err
			}
			nullable = nullable || n
		}
		returnType, err := fn.ReturnType(argTypes)
		if err != nil {
			return err
		}
		c.Actions = append(c.Actions, &ActionFunction{
			Name:       e.ColumnName(),
			FuncName:   e.name,
			ArgNames:   argNames,
			Nullable:   nullable,
			ReturnType: returnType,
			Func:       fn,
		})

	case *Alias:
		if err := c.add(e.child); err != nil {
			return err
		}
		c.Actions = append(c.Actions, &ActionAlias{Name: e.name, ArgName: e.child.ColumnName()})

	default:
		return sql.ErrInvalidType.New(expr.String())
	}
	return nil
}

func (c *Chain) typeOf(expr Expression) (sql.DataType, error) {
	switch e := expr.(type) {
	case *ColumnRef:
		field, err := c.schema.FieldByName(e.name)
		if err != nil {
			return nil, err
		}
		return field.Type, nil
	case *Literal:
		return e.typ, nil
	case *FunctionCall:
		fn, err := c.registry.Function(e.name)
		if err != nil {
			return nil, err
		}
		argTypes := make([]sql.DataType, len(e.args))
		for i, arg := range e.args {
			t, err := c.typeOf(arg)
			if err != nil {
				return nil, err
			}
			argTypes[i] = t
		}
		return fn.ReturnType(argTypes)
	case *Alias:
		return c.typeOf(e.child)
	}
	return nil, sql.ErrInvalidType.New(expr.String())
}

func (c *Chain) nullableOf(expr Expression) (bool, error) {
	switch e := expr.(type) {
	case *ColumnRef:
		field, err := c.schema.FieldByName(e.name)
		if err != nil {
			return false, err
		}
		return field.Nullable, nil
	case *Literal:
		return e.value.IsNull(), nil
	case *FunctionCall:
		fn, err := c.registry.Function(e.name)
		if err != nil {
			return false, err
		}
		nullable := fn.Nullable()
		for _, arg := range e.args {
			n, err := c.nullableOf(arg)
			if err != nil {
				return false, err
			}
			nullable = nullable || n
		}
		return nullable, nil
	case *Alias:
		return c.nullableOf(e.child)
	}
	return false, sql.ErrInvalidType.New(expr.String())
}
