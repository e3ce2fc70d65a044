package decode

import "errors"

var (
	// ErrUnknownKind is returned when the "type" discriminant is missing or unsupported.
	ErrUnknownKind = errors.New("unknown decoder type")
	// ErrMissingNumBeams is returned when a beam decoder omits num_beams.
	ErrMissingNumBeams = errors.New("beam decoder requires num_beams")
	// ErrUnexpectedNumBeams is returned when a greedy decoder carries num_beams.
	ErrUnexpectedNumBeams = errors.New("greedy decoder does not take num_beams")
)
