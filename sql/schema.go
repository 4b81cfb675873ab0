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

// Field is a named, typed attribute of a schema.
type Field struct {
	Name     string
	Type     DataType
	Nullable bool
}

// NewField returns a schema field.
func NewField(name string, typ DataType, nullable bool) Field {
	return Field{Name: name, Type: typ, Nullable: nullable}
}

// Schema is an ordered list of fields.
type Schema []Field

// IndexOf returns the position of the named field, or -1.
func (s Schema) IndexOf(name string) int {
	for i, f := range s {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// FieldByName returns the named field.
func (s Schema) FieldByName(name string) (Field, error) {
	i := s.IndexOf(name)
	if i < 0 {
		return Field{}, ErrColumnNotFound.New(name)
	}
	return s[i], nil
}

// Contains reports whether the schema has a field with the given name.
func (s Schema) Contains(name string) bool { return s.IndexOf(name) >= 0 }
