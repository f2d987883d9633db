package idempotency

import "context"

// Response is a previously returned HTTP response, replayed when a request
// repeats an Idempotency-Key.
type Response struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Store persists responses keyed by Idempotency-Key.
type Store interface {
	Get(ctx context.Context, key string) (*Response, bool, error)
	Set(ctx context.Context, key string, resp *Response) error
}
