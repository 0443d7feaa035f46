package internal

import (
	"fmt"
	"io"
)

// lastInstanceID backs the fallback rendering of instances. The
// runtime is single-threaded, plain increment is enough.
var lastInstanceID int

// ClassInstance is one object of a user-defined class: a reference to
// the class plus a mutable field mapping, created empty.
type ClassInstance struct {
	class  *Class
	fields Closure
	id     int
}

// NewInstance creates an empty instance of cls.
func NewInstance(cls *Class) *ClassInstance {
	lastInstanceID++
	return &ClassInstance{
		class:  cls,
		fields: make(Closure),
		id:     lastInstanceID,
	}
}

// Fields exposes the instance's field mapping for the evaluator.
func (ci *ClassInstance) Fields() Closure {
	return ci.fields
}

// Class returns the defining class.
func (ci *ClassInstance) Class() *Class {
	return ci.class
}

// HasMethod reports whether a method with exactly this name and this
// number of formal parameters resolves. There is no overloading.
func (ci *ClassInstance) HasMethod(name string, argCount int) bool {
	m := ci.class.GetMethod(name)
	return m != nil && len(m.FormalParams) == argCount
}

// Call invokes a method: a fresh closure binds self (aliasing this
// instance) and the formal parameters to the arguments, then the body
// runs. An unknown name or wrong arity is a runtime fault.
func (ci *ClassInstance) Call(name string, args []ObjectHolder, ctx Context) (ObjectHolder, error) {
	if !ci.HasMethod(name, len(args)) {
		return None(), &RuntimeError{
			Err: fmt.Errorf("%w %q", errUndefinedMethod, name),
		}
	}
	m := ci.class.GetMethod(name)
	closure := make(Closure, len(args)+1)
	closure["self"] = Share(ci)
	for i, param := range m.FormalParams {
		closure[param] = args[i]
	}
	log.WithField("method", ci.class.Name()+"."+name).Debug("dispatch")
	return m.Body.Execute(closure, ctx)
}

// Print renders via a zero-argument __str__ when the class has one,
// otherwise falls back to an opaque per-instance identifier.
func (ci *ClassInstance) Print(w io.Writer, ctx Context) error {
	if ci.HasMethod("__str__", 0) {
		res, err := ci.Call("__str__", nil, ctx)
		if err != nil {
			return err
		}
		return res.Get().Print(w, ctx)
	}
	_, err := fmt.Fprintf(w, "<%s object %d>", ci.class.Name(), ci.id)
	return err
}
