// Package domain holds lookup DTOs and the last resolved slot contract
package domain

import (
	"context"
	"time"
)

// NameNotAvailable is the message returned when the provider has no name
const NameNotAvailable = "Name not found or not available"

// PhoneQuery is the lookup query string
type PhoneQuery struct {
	PhoneNumber string `query:"phone_number" json:"phone_number" validate:"required,phone"`
}

// LookupResult is the single number lookup response
type LookupResult struct {
	PhoneNumber string `json:"phone_number" example:"+15551234567"`
	Name        string `json:"name,omitempty" example:"John Doe"`
	Found       bool   `json:"found" example:"true"`
	Cached      bool   `json:"cached" example:"false"`
	Message     string `json:"message,omitempty"`
}

// LastResolved is the most recent successful lookup
type LastResolved struct {
	PhoneNumber string    `json:"phone_number" example:"+15551234567"`
	CallerName  string    `json:"caller_name" example:"John Doe"`
	Found       bool      `json:"-"`
	ResolvedAt  time.Time `json:"resolved_at" example:"2025-09-03T13:05:00Z"`
}

// ServicePort is the lookup contract exposed to transports
type ServicePort interface {
	Lookup(ctx context.Context, phone string) (LookupResult, error)
	Last(ctx context.Context) (LastResolved, error)
}
