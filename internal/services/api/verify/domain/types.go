// Package domain holds verifier contracts shared by the directory bindings
package domain

// Status is the verdict for one phone number
type Status string

// Verdicts
const (
	StatusVerified    Status = "Verified"
	StatusInvalid     Status = "Invalid"
	StatusLookupError Status = "LookupError"
)

// Record is one directory entry, read only from the verifier's side
type Record struct {
	PhoneNumber string `json:"phone_number" example:"+15551234567"`
	ClaimedName string `json:"name" example:"John Doe"`
}

// Result is the verification verdict for one record
type Result struct {
	PhoneNumber  string  `json:"phone_number" example:"+15551234567"`
	ClaimedName  string  `json:"claimed_name" example:"John Doe"`
	ResolvedName *string `json:"resolved_name" example:"John Doe"`
	Status       Status  `json:"status" example:"Verified"`
	Error        string  `json:"error,omitempty"`
}

// PhoneQuery is the query string accepted by the single verify endpoint
type PhoneQuery struct {
	PhoneNumber string `query:"phone_number" json:"phone_number" validate:"required,phone"`
}
