package plane

import (
	"errors"
)

// ErrInvalidArgument is returned when a render is requested with dimensions,
// an iteration budget or plane bounds that cannot produce an image.
var ErrInvalidArgument = errors.New("invalid argument")
