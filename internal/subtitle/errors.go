package subtitle

import "errors"

var (
	// a timestamp component is negative or outside its natural range
	ErrInvalidTimeComponent = errors.New("invalid time component")

	// a timestamp source could not be interpreted as a point in time
	ErrInvalidTimestampInput = errors.New("invalid timestamp input")

	// text does not match H+:MM:SS[.,]mmm
	ErrInvalidTimeString = errors.New("invalid time string")

	// a cue block is too short or its timing line is malformed
	ErrInvalidItem = errors.New("invalid cue item")
)
