package llm

import (
	"context"
	"errors"
)

// ErrUpstream marks failures of the completion service itself (network,
// auth, rate limit, timeout). Handlers surface these as 500s; everything
// after a successful completion is repaired locally instead.
var ErrUpstream = errors.New("completion service error")

// Client is the text-completion surface every generation feature depends on.
// Prompt formatting belongs to the caller; the returned text carries no
// guarantees and must go through the normalizer.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
