package internal

import (
	"fmt"
	"io"
)

// Method is one named callable of a class. Parameters are positional,
// without defaults or variadics.
type Method struct {
	Name         string
	FormalParams []string
	Body         Executable
}

// Class is a named, single-inheritance collection of methods with a
// dispatch table built once at construction. It must outlive every
// instance and every subclass referencing it.
type Class struct {
	name    string
	methods []Method
	parent  *Class
	vtable  map[string]*Method
}

// NewClass builds the class and its dispatch table: parent entries are
// imported first, own methods overwrite entries of the same name.
func NewClass(name string, methods []Method, parent *Class) *Class {
	c := &Class{
		name:    name,
		methods: methods,
		parent:  parent,
		vtable:  make(map[string]*Method, len(methods)),
	}
	if parent != nil {
		for mname, m := range parent.vtable {
			c.vtable[mname] = m
		}
	}
	for i := range c.methods {
		c.vtable[c.methods[i].Name] = &c.methods[i]
	}
	return c
}

// GetMethod resolves a method by name, nil when absent.
func (c *Class) GetMethod(name string) *Method {
	return c.vtable[name]
}

func (c *Class) Name() string {
	return c.name
}

func (c *Class) Print(w io.Writer, ctx Context) error {
	_, err := fmt.Fprintf(w, "Class %s", c.name)
	return err
}
