package audit

import "context"

type Repository interface {
	Record(ctx context.Context, e *Entry) error
	FindRecent(ctx context.Context, limit int) ([]Entry, error)
}
