package repokit

import (
	"context"
	"fmt"
)

// Guarder is a store that can check its backends answer
type Guarder interface {
	Guard(context.Context) error
}

// MustGuard panics when g reports an unreachable backend
func MustGuard(ctx context.Context, g Guarder) {
	if err := g.Guard(ctx); err != nil {
		panic(fmt.Errorf("store guard: %w", err))
	}
}
