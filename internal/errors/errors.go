package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

// InvalidDatesError reports a bad reservation date pair: missing dates, a
// reversed or empty range, or a start in the past.
type InvalidDatesError struct {
	Message string
}

func (e *InvalidDatesError) Error() string {
	return e.Message
}

func NewInvalidDatesError(message string) *InvalidDatesError {
	return &InvalidDatesError{Message: message}
}

func IsInvalidDatesError(err error) (*InvalidDatesError, bool) {
	if de, ok := err.(*InvalidDatesError); ok {
		return de, true
	}
	return nil, false
}

// InvalidAmountError reports an amount that fails the method-specific
// matching rule, or a negative amount where only non-negative is allowed.
type InvalidAmountError struct {
	Message string
}

func (e *InvalidAmountError) Error() string {
	return e.Message
}

func NewInvalidAmountError(message string) *InvalidAmountError {
	return &InvalidAmountError{Message: message}
}

func IsInvalidAmountError(err error) (*InvalidAmountError, bool) {
	if ae, ok := err.(*InvalidAmountError); ok {
		return ae, true
	}
	return nil, false
}

// InvalidPaymentError reports structural misuse of a payment: a missing
// payment, a double attach, or an attach to a terminal reservation.
type InvalidPaymentError struct {
	Message string
}

func (e *InvalidPaymentError) Error() string {
	return e.Message
}

func NewInvalidPaymentError(message string) *InvalidPaymentError {
	return &InvalidPaymentError{Message: message}
}

func IsInvalidPaymentError(err error) (*InvalidPaymentError, bool) {
	if pe, ok := err.(*InvalidPaymentError); ok {
		return pe, true
	}
	return nil, false
}

// InvalidTransitionError reports an illegal reservation status change.
type InvalidTransitionError struct {
	Message string
}

func (e *InvalidTransitionError) Error() string {
	return e.Message
}

func NewInvalidTransitionError(message string) *InvalidTransitionError {
	return &InvalidTransitionError{Message: message}
}

func IsInvalidTransitionError(err error) (*InvalidTransitionError, bool) {
	if te, ok := err.(*InvalidTransitionError); ok {
		return te, true
	}
	return nil, false
}

// UnknownPaymentTypeError reports a snapshot payment record whose
// discriminant does not name a known variant.
type UnknownPaymentTypeError struct {
	Message string
}

func (e *UnknownPaymentTypeError) Error() string {
	return e.Message
}

func NewUnknownPaymentTypeError(message string) *UnknownPaymentTypeError {
	return &UnknownPaymentTypeError{Message: message}
}

func IsUnknownPaymentTypeError(err error) (*UnknownPaymentTypeError, bool) {
	if ue, ok := err.(*UnknownPaymentTypeError); ok {
		return ue, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if ne, ok := err.(*NotFoundError); ok {
		return ne, true
	}
	return nil, false
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func IsConflictError(err error) (*ConflictError, bool) {
	if ce, ok := err.(*ConflictError); ok {
		return ce, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

func IsInternalError(err error) (*InternalError, bool) {
	if ie, ok := err.(*InternalError); ok {
		return ie, true
	}
	return nil, false
}
