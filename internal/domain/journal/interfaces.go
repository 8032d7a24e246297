package journal

import "context"

// Repository stores journal entries.
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	List(ctx context.Context) ([]Entry, error)
}
