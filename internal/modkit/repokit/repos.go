// Package repokit is shared plumbing for sql backed repos
package repokit

import "callerverify/internal/platform/store"

// Queryer is the sql surface a repo is bound to
type Queryer = store.RowQuerier
