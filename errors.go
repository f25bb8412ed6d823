package gosieview

import "errors"

var (
	ErrZeroLength        = errors.New("zero length vector cannot be normalized")
	ErrNonFinite         = errors.New("value is NaN or infinite")
	ErrZeroScale         = errors.New("scale factor cannot be 0 or subjects will disappear")
	ErrDegenerateAxis    = errors.New("gaze is parallel to world up, camera axis undefined")
	ErrInvalidProjection = errors.New("invalid projection parameters")
	ErrInvalidViewport   = errors.New("viewport width and height must be positive")
)
