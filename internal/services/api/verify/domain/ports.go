package domain

import "context"

// Directory supplies claimed names; enumeration order is stable
type Directory interface {
	ListRecords(ctx context.Context) ([]Record, error)
	GetRecord(ctx context.Context, phone string) (Record, bool, error)
}

// VerifierPort is the verifier contract exposed to transports
type VerifierPort interface {
	VerifyOne(ctx context.Context, phone string) (Result, error)
	VerifyAll(ctx context.Context) ([]Result, error)
}
