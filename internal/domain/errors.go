package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Error types for consistent error handling across the service. All
// validation errors are recoverable user-input errors: the caller fixes
// the input and resubmits, and no entry is ever partially stored.

// ErrMissingField indicates a required entry field was empty.
type ErrMissingField struct {
	Field string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// ErrInsufficientPostings indicates fewer than two usable postings
// survived filtering.
type ErrInsufficientPostings struct {
	Count int
}

func (e *ErrInsufficientPostings) Error() string {
	return fmt.Sprintf("a journal entry needs at least two postings, got %d", e.Count)
}

// ErrInvalidAmount indicates a posting amount that could not be parsed
// as a number.
type ErrInvalidAmount struct {
	Account string
	Value   string
}

func (e *ErrInvalidAmount) Error() string {
	return fmt.Sprintf("invalid amount %q for account %q", e.Value, e.Account)
}

// ErrUnbalanced indicates debit and credit totals differ beyond the
// tolerance and the caller did not allow force-saving. It carries both
// totals so the front end can show the difference and offer the
// save-anyway confirmation.
type ErrUnbalanced struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

func (e *ErrUnbalanced) Error() string {
	return fmt.Sprintf("entry is not balanced: debit=%s credit=%s",
		e.Debit.StringFixed(2), e.Credit.StringFixed(2))
}

// ErrNotFound indicates a resource was not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnauthorized indicates an invalid or expired session token.
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}
