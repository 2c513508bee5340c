package database

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"habit-tracker/internal/habits"
)

var (
	ErrInvalidCodingLevel = errors.New("invalid coding_level")
	ErrInvalidDate        = errors.New("invalid date")
	ErrNotFound           = errors.New("habit entry not found")
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateEntry enforces the write contract: coding level 0..2 and a real
// yyyy-MM-dd date.
func ValidateEntry(e habits.Entry) error {
	if e.CodingLevel < 0 || e.CodingLevel > 2 {
		return fmt.Errorf("%w: %d, must be 0, 1 or 2", ErrInvalidCodingLevel, e.CodingLevel)
	}
	if !dateRe.MatchString(e.Date) {
		return fmt.Errorf("%w: %q, must be yyyy-MM-dd", ErrInvalidDate, e.Date)
	}
	if _, err := time.Parse(habits.DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidDate, e.Date, err)
	}
	return nil
}
