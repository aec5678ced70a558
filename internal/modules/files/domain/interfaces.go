package domain

import "context"

// FileRepository is the persistence contract for file records.
// Implementations exist for Postgres and Redis; any durable row store that
// can assign monotonically increasing ids will do.
type FileRepository interface {
	// Insert assigns a fresh id, persists the record and returns it.
	// Ids are never reused, even after deletion.
	Insert(ctx context.Context, file *File) (*File, error)

	// GetByID returns the record, or (nil, nil) when no record exists.
	GetByID(ctx context.Context, id int64) (*File, error)

	// ListAll returns every stored record in id order.
	ListAll(ctx context.Context) ([]File, error)

	// DeleteByID removes the record; ErrFileNotFound when absent.
	DeleteByID(ctx context.Context, id int64) error

	// ExistsByName reports whether any record carries the given file name.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// FindByType returns all records with the given declared content type.
	FindByType(ctx context.Context, fileType string) ([]File, error)
}
