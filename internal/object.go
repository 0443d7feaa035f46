package internal

import (
	"fmt"
	"io"
)

// Context carries the interpreter surroundings of an evaluation. The
// core only requires an output sink.
type Context interface {
	Output() io.Writer
}

type simpleContext struct {
	out io.Writer
}

// NewContext wraps an output sink into a Context.
func NewContext(out io.Writer) Context {
	return &simpleContext{out: out}
}

func (c *simpleContext) Output() io.Writer { return c.out }

// Closure maps names to the values bound to them during a call.
type Closure map[string]ObjectHolder

// Executable is a method body. Implemented by the external AST layer,
// invoked by ClassInstance.Call.
type Executable interface {
	Execute(closure Closure, ctx Context) (ObjectHolder, error)
}

// Object is one runtime value.
type Object interface {
	Print(w io.Writer, ctx Context) error
}

// ObjectHolder is a nullable reference to an Object. The empty holder
// stands for the language's None.
type ObjectHolder struct {
	data Object
}

// Own wraps a freshly produced value into an owning holder.
func Own(data Object) ObjectHolder {
	return ObjectHolder{data: data}
}

// Share wraps an existing value without taking ownership. Used to pass
// self into a method call so the callee sees the same instance.
func Share(obj Object) ObjectHolder {
	return ObjectHolder{data: obj}
}

// None returns the empty holder.
func None() ObjectHolder {
	return ObjectHolder{}
}

// Get returns the held object, nil for the empty holder.
func (h ObjectHolder) Get() Object {
	return h.data
}

// Valid reports whether the holder references a value.
func (h ObjectHolder) Valid() bool {
	return h.data != nil
}

func (h ObjectHolder) String() string {
	if h.data == nil {
		return "None"
	}
	return fmt.Sprintf("%v", h.data)
}

// IsTrue evaluates truthiness: None is false, Bool is its value,
// Number is true iff nonzero, String is true iff non-empty. Classes
// and instances are never truthy.
func IsTrue(h ObjectHolder) bool {
	switch v := h.Get().(type) {
	case Bool:
		return bool(v)
	case Number:
		return v != 0
	case String:
		return v != ""
	}
	return false
}

// Bool is the boolean runtime value.
type Bool bool

func (b Bool) Print(w io.Writer, ctx Context) error {
	s := "False"
	if b {
		s = "True"
	}
	_, err := io.WriteString(w, s)
	return err
}

// Number is the integer runtime value.
type Number int

func (n Number) Print(w io.Writer, ctx Context) error {
	_, err := fmt.Fprintf(w, "%d", int(n))
	return err
}

// String is the text runtime value.
type String string

func (s String) Print(w io.Writer, ctx Context) error {
	_, err := io.WriteString(w, string(s))
	return err
}
