package llm

import (
	"context"
	"fmt"
)

// Client abstracts the text-completion provider behind message analysis.
type Client interface {
	Complete(ctx context.Context, input CompleteInput) (string, error)
}

// CompleteInput captures one completion sub-call.
type CompleteInput struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// UpstreamError reports a failed call to the completion service. Status is
// the HTTP status for non-2xx responses and 0 for transport failures.
type UpstreamError struct {
	Status int
	Body   string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("completion request: %v", e.Err)
	}
	return fmt.Sprintf("completion service status %d: %s", e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
