package rentalrequest

import (
	"strings"
	"unicode/utf8"

	"tenancy-service/internal/pkg/errs"
)

var (
	ErrInvalidOccupants = errs.Validation("occupants must be between 1 and 20")
	ErrNoteTooLong      = errs.Validation("note exceeds maximum length")
)

const (
	maxOccupants  = 20
	maxNoteLength = 500
)

type Occupants int

func NewOccupants(n int) (Occupants, error) {
	if n < 1 || n > maxOccupants {
		return 0, ErrInvalidOccupants
	}
	return Occupants(n), nil
}

func (o Occupants) Int() int { return int(o) }

type Note string

func NewNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxNoteLength {
		return "", ErrNoteTooLong
	}
	return Note(s), nil
}

func (n Note) String() string { return string(n) }
