// Package domain holds the lookup cache entry model and its storage seam
package domain

// Entry is one cached resolution keyed by phone number
type Entry struct {
	PhoneNumber  string
	ResolvedName string
	// FetchedAt is unix seconds
	FetchedAt int64
}

// Outcome reports what a repo Get observed
type Outcome uint8

const (
	// OutcomeMiss means no entry existed
	OutcomeMiss Outcome = iota
	// OutcomeHit means a fresh entry was found
	OutcomeHit
	// OutcomeEvicted means a stale entry was found and removed
	OutcomeEvicted
)

// String implements fmt.Stringer
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeEvicted:
		return "evicted"
	default:
		return "miss"
	}
}
