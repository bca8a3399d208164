// Package domain holds the resolver contracts and the provider error taxonomy
package domain

// CallerInfo is what a lookup provider knows about a number
type CallerInfo struct {
	// CallerName is empty when the provider has no name yet
	CallerName string
	// CallerType is BUSINESS, CONSUMER or empty
	CallerType string
}

// Resolution is the resolver output for one number
type Resolution struct {
	PhoneNumber string
	Name        string
	// Found is false when the provider returned no name
	Found bool
	// Cached is true when the name came from the cache
	Cached bool
}
