package control

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a field is read in a way its type
// does not support (e.g. reading data from a Null block).
var ErrInvalidOperation = Error.New("invalid operation")
