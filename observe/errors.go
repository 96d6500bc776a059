package observe

import "errors"

// Errors returned by type building, binding and attribute access.
var (
	ErrWrongArgumentCount     = errors.New("listener must take (instance, field, old, new)")
	ErrBadParameter           = errors.New("listener parameter has the wrong type")
	ErrNotCallable            = errors.New("listener is not a function")
	ErrCannotInvokeOnInstance = errors.New("binding operations must be invoked on the type, not an instance")
	ErrNotBound               = errors.New("listener is not bound")
	ErrNotObservable          = errors.New("target is not an observable type")
	ErrUnknownAttribute       = errors.New("unknown attribute")
	ErrForeignInstance        = errors.New("instance belongs to a different type")
	ErrInvalidDeclaration     = errors.New("invalid type declaration")
)
