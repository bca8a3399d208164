package domain

import (
	"errors"
	"fmt"

	perr "callerverify/internal/platform/errors"
)

// ErrorCategory is the normalized provider failure taxonomy
type ErrorCategory string

const (
	// ErrorTimeout means the provider took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData means the input was rejected or the reply was malformed
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication means missing or rejected credentials
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorProviderOutage means the provider is down or unreachable
	ErrorProviderOutage ErrorCategory = "provider_outage"

	// ErrorNotFound means the provider does not know the number
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorRateLimited means too many requests
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorInternal is anything unclassified
	ErrorInternal ErrorCategory = "internal"
)

// ProviderError wraps a provider failure with its category
type ProviderError struct {
	Category   ErrorCategory
	ProviderID string
	Message    string
	Underlying error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("provider %s [%s]: %s: %v", e.ProviderID, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("provider %s [%s]: %s", e.ProviderID, e.Category, e.Message)
}

// Unwrap supports error unwrapping
func (e *ProviderError) Unwrap() error { return e.Underlying }

// NewProviderError builds a categorized provider error
func NewProviderError(category ErrorCategory, providerID, message string, underlying error) *ProviderError {
	return &ProviderError{Category: category, ProviderID: providerID, Message: message, Underlying: underlying}
}

// CategoryOf extracts the category, ErrorInternal when err is not a ProviderError
func CategoryOf(err error) ErrorCategory {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category
	}
	return ErrorInternal
}

// codeFor maps a category onto the project error codes
func codeFor(c ErrorCategory) perr.ErrorCode {
	switch c {
	case ErrorBadData, ErrorNotFound:
		return perr.ErrorCodeInvalidArgument
	case ErrorRateLimited:
		return perr.ErrorCodeTooManyRequests
	default:
		return perr.ErrorCodeUpstream
	}
}

// OpLookup labels provider failures surfaced by the resolver
const OpLookup = "resolver.lookup"

// LookupFailed wraps a provider failure for callers of the resolver
// the original error stays reachable through errors.As
func LookupFailed(err error) error {
	if err == nil {
		return nil
	}
	cat := CategoryOf(err)
	return perr.WithOp(perr.Wrapf(err, codeFor(cat), "caller name lookup failed (%s)", cat), OpLookup)
}

// IsLookupFailure reports whether err came from LookupFailed
func IsLookupFailure(err error) bool {
	e, ok := perr.As(err)
	return ok && e.Op() == OpLookup
}
