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
	opentracing "github.com/opentracing/opentracing-go"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/skyzh/databend/sql"
	"github.com/skyzh/databend/sql/expression/function"
)

// Executor runs a linearized expression chain against input blocks and
// projects the result to an output schema. An Executor is built once per
// plan operator and shared across batches; it holds no mutable state, so
// concurrent Execute calls on independent blocks need no locking.
type Executor struct {
	description  string
	id           uuid.UUID
	inputSchema  sql.Schema
	outputSchema sql.Schema
	chain        *Chain
	// aliasProject controls whether alias fan-out participates in the
	// final projection.
	aliasProject bool
	tracer       opentracing.Tracer
}

// NewExecutor builds an executor over the default function registry.
func NewExecutor(description string, input, output sql.Schema, exprs []Expression, aliasProject bool) (*Executor, error) {
	return NewExecutorWithRegistry(description, input, output, exprs, aliasProject, function.Defaults)
}

// NewExecutorWithRegistry builds an executor resolving functions through the
// given registry.
func NewExecutorWithRegistry(description string, input, output sql.Schema, exprs []Expression, aliasProject bool, registry function.Registry) (*Executor, error) {
	chain, err := NewChain(input, exprs, registry)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &Executor{
		description:  description,
		id:           id,
		inputSchema:  input,
		outputSchema: output,
		chain:        chain,
		aliasProject: aliasProject,
		tracer:       opentracing.NoopTracer{},
	}, nil
}

// WithTracer returns a copy of the executor reporting spans to the tracer.
func (e *Executor) WithTracer(tracer opentracing.Tracer) *Executor {
	e2 := *e
	e2.tracer = tracer
	return &e2
}

// Validate is a hook for upfront chain/schema validation.
func (e *Executor) Validate() error {
	return nil
}

// Execute runs the chain against one block and returns a block matching the
// output schema. All failures are deterministic consequences of malformed
// chain or schema relationships; nothing here is retried.
func (e *Executor) Execute(block *sql.Block) (*sql.Block, error) {
	span := e.tracer.StartSpan("expression.Execute", opentracing.Tags{
		"description": e.description,
		"rows":        block.NumRows(),
	})
	defer span.Finish()

	logrus.WithFields(logrus.Fields{
		"executor": e.description,
		"id":       e.id,
		"actions":  len(e.chain.Actions),
	}).Debug("executing expression chain")

	columnMap := make(map[string]sql.ColumnWithField)

	// supported: a + 1 as b, a + 1 as c
	// supported: a + 1 as a, a as b
	// not supported: a + 1 as c, b + 1 as c
	aliasActions := make(map[string][]string)

	for i, f := range block.Schema() {
		columnMap[f.Name] = sql.NewColumnWithField(block.Column(i), f)
	}

	rows := block.NumRows()
	for _, action := range e.chain.Actions {
		if alias, ok := action.(*ActionAlias); ok {
			aliasActions[alias.ArgName] = append(aliasActions[alias.ArgName], alias.Name)
		}

		if _, ok := columnMap[action.ColumnName()]; ok {
			continue
		}

		switch a := action.(type) {
		case *ActionInput:
			column, err := block.ColumnByName(a.Name)
			if err != nil {
				return nil, err
			}
			field, err := block.Schema().FieldByName(a.Name)
			if err != nil {
				return nil, err
			}
			columnMap[a.Name] = sql.NewColumnWithField(column, field)

		case *ActionFunction:
			column, err := e.executeFunction(columnMap, a, rows)
			if err != nil {
				return nil, err
			}
			columnMap[a.Name] = column

		case *ActionConstant:
			column := sql.NewConstantColumn(a.Value, a.DataType, rows)
			field := sql.NewField(a.Name, a.DataType, a.Value.IsNull())
			columnMap[a.Name] = sql.NewColumnWithField(column, field)
		}
	}

	aliasMap := make(map[string]sql.ColumnWithField)
	if e.aliasProject {
		for source, targets := range aliasActions {
			column, ok := columnMap[source]
			if !ok {
				return nil, sql.ErrArgumentNotPrepared.New("alias")
			}
			for _, name := range targets {
				if _, ok := aliasMap[name]; ok {
					return nil, sql.ErrDuplicateAlias.New(name)
				}
				aliasMap[name] = column
			}
		}
	}

	// Projection strips intermediate-only columns: the output block carries
	// exactly the output schema's fields, in order.
	projected := make([]sql.Column, 0, len(e.outputSchema))
	for _, f := range e.outputSchema {
		column, ok := aliasMap[f.Name]
		if !ok {
			column, ok = columnMap[f.Name]
		}
		if !ok {
			return nil, sql.ErrProjectionColumnNotFound.New(f.Name, mapKeys(columnMap))
		}
		projected = append(projected, column.Column)
	}
	return sql.NewBlock(e.outputSchema, projected)
}

func (e *Executor) executeFunction(columnMap map[string]sql.ColumnWithField, f *ActionFunction, rows int) (sql.ColumnWithField, error) {
	args := make([]sql.ColumnWithField, len(f.ArgNames))
	for i, name := range f.ArgNames {
		column, ok := columnMap[name]
		if !ok {
			return sql.ColumnWithField{}, sql.ErrArgumentNotPrepared.New("function")
		}
		args[i] = column
	}

	// With nullable input, masking applies only when the function both may
	// produce nulls and passes null input through to its output.
	var column sql.Column
	var err error
	if f.Nullable && f.Func.PassthroughNull() {
		allNull := false
		for _, arg := range args {
			if arg.Column.OnlyNull() {
				allNull = true
				break
			}
		}
		if allNull {
			// No need to evaluate: every output row is null.
			column = sql.NewConstantColumn(sql.NullValue, f.ReturnType, rows)
		} else {
			column, err = f.Func.Eval(args, rows)
			if err != nil {
				return sql.ColumnWithField{}, err
			}
			// A result row is null if the function said so or any
			// contributing argument was null there.
			column = sql.ApplyValidity(column, combinedValidity(args))
		}
	} else {
		column, err = f.Func.Eval(args, rows)
		if err != nil {
			return sql.ColumnWithField{}, err
		}
	}

	field := sql.NewField(f.Name, f.ReturnType, f.Nullable)
	return sql.NewColumnWithField(column, field), nil
}

// combinedValidity is the logical AND of every argument's validity bitmap,
// or nil when no argument carries one.
func combinedValidity(args []sql.ColumnWithField) *sql.Validity {
	var combined *sql.Validity
	for _, arg := range args {
		_, bitmap := arg.Column.Validity()
		if bitmap == nil {
			continue
		}
		if combined == nil {
			combined = bitmap.Clone()
		} else {
			combined = combined.And(bitmap)
		}
	}
	return combined
}

func mapKeys(m map[string]sql.ColumnWithField) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
