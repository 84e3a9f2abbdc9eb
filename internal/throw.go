package internal

import "github.com/pkg/errors"

// The geometric invariants checked deep inside the hull walk and the
// insertion loop would be painful to thread back out as error returns.
// Instead, we use panics, and the public API recovers to convert to an
// error.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
