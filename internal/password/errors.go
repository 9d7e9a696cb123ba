package password

import (
	"errors"
	"fmt"
)

// Error kinds. Every validation error wraps exactly one of them.
var (
	ErrType  = errors.New("type error")
	ErrValue = errors.New("value error")
)

var (
	ErrLengthNull       = fmt.Errorf("%w: length is null", ErrType)
	ErrLengthNotInteger = fmt.Errorf("%w: length must be an integer", ErrType)
	ErrLengthTooShort   = fmt.Errorf("%w: length must be at least %d to include one character from each of the %d categories", ErrValue, MinLength, len(Categories))
	ErrLengthOutOfRange = fmt.Errorf("%w: length must be between %d and %d", ErrValue, MinLength, MaxLength)
)
