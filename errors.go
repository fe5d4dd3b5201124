package finbook

import (
	"errors"
	"strings"
)

// Sentinel errors for cross-layer signaling. Every one of them is an
// expected, recoverable condition reported to the immediate caller.
var (
	// ErrNotFound means a referenced account, loan or lending id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientBalance means an expense or transfer exceeds the available funds.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrExceedsRemaining means a payment or collection exceeds the outstanding balance.
	ErrExceedsRemaining = errors.New("exceeds remaining amount")
	// ErrAlreadySettled means a payment was attempted on a settled loan or lending.
	ErrAlreadySettled = errors.New("already settled")
	// ErrInvalidAmount means a non-positive amount where a positive value is required.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// ValidationError carries one or more field-level messages for a rejected
// input. No mutation happens when it is returned.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// validation accumulates field messages and yields a *ValidationError only
// when at least one check failed.
type validation struct {
	messages []string
}

func (v *validation) check(ok bool, message string) {
	if !ok {
		v.messages = append(v.messages, message)
	}
}

func (v *validation) err() error {
	if len(v.messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: v.messages}
}
