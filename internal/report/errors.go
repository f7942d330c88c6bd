// Package report builds the generation prompt, invokes the generation
// service, and defensively parses and validates the response into a
// GrowthReport. Failures are classified so callers can message users
// appropriately; none are retried automatically.
package report

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

// FailureKind identifies the class of a generation failure.
type FailureKind string

// Failure kinds surfaced to the session state machine.
const (
	// FailureConfiguration: the service credential/endpoint is unusable.
	// Fatal for this call; requires operator action, not a retry.
	FailureConfiguration FailureKind = "configuration"
	// FailureSchema: the response could not be parsed or is missing
	// required fields. Recoverable via explicit retry.
	FailureSchema FailureKind = "schema"
	// FailureQuota: the service signaled rate/quota exhaustion.
	// Recoverable, but messaged distinctly from schema failures.
	FailureQuota FailureKind = "quota"
	// FailureService: any other failure communicating with the service.
	FailureService FailureKind = "service"
)

// ConfigurationError means the generation service cannot be used at all.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("advisor service not configured: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("advisor service not configured: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error { return e.Cause }

// SchemaError means the response was malformed or incomplete.
type SchemaError struct {
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid advisor response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid advisor response: %s", e.Message)
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// QuotaError means the service rejected the call for rate/quota reasons.
type QuotaError struct {
	Message string
	Cause   error
}

func (e *QuotaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("advisor quota exhausted: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("advisor quota exhausted: %s", e.Message)
}

func (e *QuotaError) Unwrap() error { return e.Cause }

// ServiceError is the catch-all for transport and service failures.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("advisor service failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("advisor service failed: %s", e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Cause }

// Classify maps a generation error to its FailureKind. Unknown errors are
// treated as service failures.
func Classify(err error) FailureKind {
	var (
		confErr    *ConfigurationError
		schemaErr  *SchemaError
		quotaErr   *QuotaError
		serviceErr *ServiceError
	)
	switch {
	case errors.As(err, &confErr):
		return FailureConfiguration
	case errors.As(err, &schemaErr):
		return FailureSchema
	case errors.As(err, &quotaErr):
		return FailureQuota
	case errors.As(err, &serviceErr):
		return FailureService
	default:
		return FailureService
	}
}

// isQuotaExhausted reports whether a provider error signals rate or quota
// exhaustion.
func isQuotaExhausted(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return true
	}
	msg := strings.ToUpper(err.Error())
	return strings.Contains(msg, "RESOURCE_EXHAUSTED") || strings.Contains(msg, "QUOTA")
}
