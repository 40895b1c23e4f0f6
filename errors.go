package permugo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex is returned when a raw index is not a bijection over 0..len.
	ErrInvalidIndex = errors.New("invalid index: indices must be unique and in 0..len")

	// ErrLengthMismatch is returned when an index is applied to data of a different length.
	ErrLengthMismatch = errors.New("index length must match data length")
)

// ErrIndexOutOfRange indicates a raw index value outside [0, len).
//
// Matches ErrInvalidIndex via errors.Is.
type ErrIndexOutOfRange struct {
	Position int
	Value    int
	Len      int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("invalid index: value %d at position %d is out of range [0, %d)", e.Value, e.Position, e.Len)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrInvalidIndex }

// ErrIndexDuplicate indicates a raw index value that occurs more than once.
//
// Matches ErrInvalidIndex via errors.Is.
type ErrIndexDuplicate struct {
	Position int
	Value    int
}

func (e *ErrIndexDuplicate) Error() string {
	return fmt.Sprintf("invalid index: duplicate value %d at position %d", e.Value, e.Position)
}

func (e *ErrIndexDuplicate) Unwrap() error { return ErrInvalidIndex }

// ErrIndexLength indicates an index applied to data of a different length.
//
// Matches ErrLengthMismatch via errors.Is.
type ErrIndexLength struct {
	IndexLen int
	DataLen  int
}

func (e *ErrIndexLength) Error() string {
	return fmt.Sprintf("length mismatch: index has %d entries, data has %d", e.IndexLen, e.DataLen)
}

func (e *ErrIndexLength) Unwrap() error { return ErrLengthMismatch }
