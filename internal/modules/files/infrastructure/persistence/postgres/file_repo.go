package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/yago/fileuploadd/internal/modules/files/domain"
)

// PgFileRepository persists file records in a PostgreSQL files table.
// Ids come from a BIGSERIAL column, so they are monotonic and never reused.
type PgFileRepository struct {
	db *sqlx.DB
}

// NewFileRepository creates a new PostgreSQL-backed file repository
func NewFileRepository(db *sqlx.DB) *PgFileRepository {
	return &PgFileRepository{db: db}
}

func (r *PgFileRepository) Insert(ctx context.Context, file *domain.File) (*domain.File, error) {
	if file.UploadDateTime.IsZero() {
		file.UploadDateTime = time.Now()
	}

	query := `
        INSERT INTO files (file_name, file_type, file_size, data, upload_date_time)
        VALUES (:file_name, :file_type, :file_size, :data, :upload_date_time)
        RETURNING id`

	rows, err := r.db.NamedQueryContext(ctx, query, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&file.ID); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return file, nil
}

func (r *PgFileRepository) GetByID(ctx context.Context, id int64) (*domain.File, error) {
	file := &domain.File{}
	query := `SELECT * FROM files WHERE id = $1`

	err := r.db.GetContext(ctx, file, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (r *PgFileRepository) ListAll(ctx context.Context) ([]domain.File, error) {
	files := []domain.File{}
	query := `SELECT * FROM files ORDER BY id`

	if err := r.db.SelectContext(ctx, &files, query); err != nil {
		return nil, err
	}
	return files, nil
}

func (r *PgFileRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM files WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

func (r *PgFileRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM files WHERE file_name = $1)`

	if err := r.db.GetContext(ctx, &exists, query, name); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PgFileRepository) FindByType(ctx context.Context, fileType string) ([]domain.File, error) {
	files := []domain.File{}
	query := `SELECT * FROM files WHERE file_type = $1 ORDER BY id`

	if err := r.db.SelectContext(ctx, &files, query, fileType); err != nil {
		return nil, err
	}
	return files, nil
}
