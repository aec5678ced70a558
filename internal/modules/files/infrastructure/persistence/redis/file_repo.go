package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yago/fileuploadd/internal/modules/files/domain"
)

const (
	seqKey = "files:id_seq"
	idsKey = "files:ids"
)

// RedisFileRepository persists file records in Redis (or Dragonfly).
// Each record lives in a hash keyed by id; id/name/type membership sets serve
// listing, existence and type lookups. Ids come from an INCR counter that is
// never decremented, so they stay monotonic and are never reused.
type RedisFileRepository struct {
	client redis.Cmdable
}

// NewFileRepository creates a new Redis-backed file repository
func NewFileRepository(client redis.Cmdable) *RedisFileRepository {
	return &RedisFileRepository{client: client}
}

func fileKey(id int64) string { return fmt.Sprintf("file:%d", id) }

func nameKey(name string) string { return "files:name:" + name }

func typeKey(fileType string) string { return "files:type:" + fileType }

func (r *RedisFileRepository) Insert(ctx context.Context, file *domain.File) (*domain.File, error) {
	if file.UploadDateTime.IsZero() {
		file.UploadDateTime = time.Now()
	}

	id, err := r.client.Incr(ctx, seqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	file.ID = id

	err = r.client.HSet(ctx, fileKey(id),
		"file_name", file.FileName,
		"file_type", file.FileType,
		"file_size", file.FileSize,
		"data", file.Data,
		"upload_date_time", file.UploadDateTime.Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	for _, indexKey := range []string{idsKey, nameKey(file.FileName), typeKey(file.FileType)} {
		if err := r.client.SAdd(ctx, indexKey, id).Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
		}
	}
	return file, nil
}

func (r *RedisFileRepository) GetByID(ctx context.Context, id int64) (*domain.File, error) {
	fields, err := r.client.HGetAll(ctx, fileKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return parseFile(id, fields)
}

func (r *RedisFileRepository) ListAll(ctx context.Context) ([]domain.File, error) {
	ids, err := r.memberIDs(ctx, idsKey)
	if err != nil {
		return nil, err
	}
	return r.fetchAll(ctx, ids)
}

func (r *RedisFileRepository) DeleteByID(ctx context.Context, id int64) error {
	file, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if file == nil {
		return domain.ErrFileNotFound
	}

	if err := r.client.Del(ctx, fileKey(id)).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	for _, indexKey := range []string{idsKey, nameKey(file.FileName), typeKey(file.FileType)} {
		if err := r.client.SRem(ctx, indexKey, id).Err(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
		}
	}
	return nil
}

func (r *RedisFileRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	count, err := r.client.SCard(ctx, nameKey(name)).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RedisFileRepository) FindByType(ctx context.Context, fileType string) ([]domain.File, error) {
	ids, err := r.memberIDs(ctx, typeKey(fileType))
	if err != nil {
		return nil, err
	}
	return r.fetchAll(ctx, ids)
}

// memberIDs returns the ids in a membership set, sorted ascending.
func (r *RedisFileRepository) memberIDs(ctx context.Context, key string) ([]int64, error) {
	members, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt id %q in %s: %w", member, key, err)
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *RedisFileRepository) fetchAll(ctx context.Context, ids []int64) ([]domain.File, error) {
	files := []domain.File{}
	for _, id := range ids {
		file, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		// A concurrent delete may have removed the record between the
		// set read and the hash read; skip it.
		if file == nil {
			continue
		}
		files = append(files, *file)
	}
	return files, nil
}

func parseFile(id int64, fields map[string]string) (*domain.File, error) {
	size, err := strconv.ParseInt(fields["file_size"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt file_size for id %d: %w", id, err)
	}
	uploadedAt, err := time.Parse(time.RFC3339Nano, fields["upload_date_time"])
	if err != nil {
		return nil, fmt.Errorf("corrupt upload_date_time for id %d: %w", id, err)
	}

	return &domain.File{
		ID:             id,
		FileName:       fields["file_name"],
		FileType:       fields["file_type"],
		FileSize:       size,
		Data:           []byte(fields["data"]),
		UploadDateTime: uploadedAt,
	}, nil
}
