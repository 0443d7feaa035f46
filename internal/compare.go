package internal

import "fmt"

// Equal compares two values. None equals None before any dispatch; a
// class instance with a one-argument __eq__ decides for itself; equal
// primitive kinds compare natively. Anything else is a runtime fault.
func Equal(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	if !lhs.Valid() && !rhs.Valid() {
		return true, nil
	}

	if inst, ok := lhs.Get().(*ClassInstance); ok && inst.HasMethod("__eq__", 1) {
		res, err := inst.Call("__eq__", []ObjectHolder{rhs}, ctx)
		if err != nil {
			return false, err
		}
		// A non-Bool result is a defect in the user class, not a
		// recoverable condition.
		return bool(res.Get().(Bool)), nil
	}

	switch l := lhs.Get().(type) {
	case Bool:
		if r, ok := rhs.Get().(Bool); ok {
			return l == r, nil
		}
	case Number:
		if r, ok := rhs.Get().(Number); ok {
			return l == r, nil
		}
	case String:
		if r, ok := rhs.Get().(String); ok {
			return l == r, nil
		}
	}

	return false, &RuntimeError{Err: fmt.Errorf("%w for equality", errCannotCompare)}
}

// Less orders two values: a class instance with a one-argument __lt__
// decides for itself, matching primitive kinds order natively.
func Less(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	if inst, ok := lhs.Get().(*ClassInstance); ok && inst.HasMethod("__lt__", 1) {
		res, err := inst.Call("__lt__", []ObjectHolder{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return bool(res.Get().(Bool)), nil
	}

	switch l := lhs.Get().(type) {
	case Bool:
		if r, ok := rhs.Get().(Bool); ok {
			return !bool(l) && bool(r), nil
		}
	case Number:
		if r, ok := rhs.Get().(Number); ok {
			return l < r, nil
		}
	case String:
		if r, ok := rhs.Get().(String); ok {
			return l < r, nil
		}
	}

	return false, &RuntimeError{Err: fmt.Errorf("%w for less", errCannotCompare)}
}

// The derived comparisons re-enter Equal/Less, so user __eq__/__lt__
// methods may run twice for one call. Deliberate, pinned by tests.

func NotEqual(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func Greater(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil || less {
		return false, err
	}
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func LessOrEqual(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil || less {
		return less, err
	}
	return Equal(lhs, rhs, ctx)
}

func GreaterOrEqual(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !less, nil
}
