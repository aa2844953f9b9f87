package quiz

import (
	"errors"
	"fmt"
)

// ErrNotEnoughRecords is matched by errors returned when the store is too
// small for the requested session.
var ErrNotEnoughRecords = errors.New("not enough questions")

// ErrInvalidCount is returned when a session is requested with fewer than
// one question.
var ErrInvalidCount = errors.New("question count must be positive")

// PoolError reports a failed entry precondition: the pool must be strictly
// larger than both the requested count and OptionsPerQuestion.
type PoolError struct {
	Total     int
	Requested int
}

func (e *PoolError) Error() string {
	return fmt.Sprintf("%v (total: %d, requested: %d)", ErrNotEnoughRecords, e.Total, e.Requested)
}

func (e *PoolError) Is(target error) bool { return target == ErrNotEnoughRecords }
