package flatabi

import "github.com/pkg/errors"

// ErrInvalidUTF8 is returned by the checked text constructors.
var ErrInvalidUTF8 = errors.New("flatabi: text is not valid UTF-8")
