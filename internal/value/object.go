// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package value

// Object is an instance of a user-defined class: a class name plus a
// mutable, shareable field bag.
type Object struct {
	ClassName string
	Fields    map[string]Value
}

func (*Object) Kind() Kind { return KindObject }

// NewObject constructs an Object with the given class name and fields.
func NewObject(className string, fields map[string]Value) *Object {
	return &Object{ClassName: className, Fields: fields}
}

// Field returns the named field and whether it exists.
func (o *Object) Field(name string) (Value, bool) {
	v, ok := o.Fields[name]
	return v, ok
}

// SetField sets the named field, in place.
func (o *Object) SetField(name string, v Value) {
	o.Fields[name] = v
}
