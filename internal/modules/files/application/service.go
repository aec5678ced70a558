package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/yago/fileuploadd/internal/modules/files/domain"
	"github.com/yago/fileuploadd/internal/shared/infrastructure/config"
)

// FileService validates and orchestrates upload, retrieval, listing and
// deletion of stored files. Records are never updated in place.
type FileService struct {
	repo      domain.FileRepository
	maxSizeMB int64
}

// NewFileService creates a new file service
func NewFileService(repo domain.FileRepository, cfg config.FileStorageConfig) *FileService {
	return &FileService{
		repo:      repo,
		maxSizeMB: cfg.MaxSizeMB,
	}
}

// StoreFile validates the upload and persists a new record.
// The size limit is maxSizeMB * 1024 * 1024 bytes, boundary inclusive.
func (s *FileService) StoreFile(ctx context.Context, originalName, contentType string, data []byte) (*domain.File, error) {
	if len(data) == 0 {
		return nil, domain.ErrEmptyFile
	}

	if int64(len(data)) > s.maxSizeMB*1024*1024 {
		return nil, fmt.Errorf("%w of %dMB", domain.ErrFileTooLarge, s.maxSizeMB)
	}

	fileName, err := domain.NormalizeFileName(originalName)
	if err != nil {
		return nil, err
	}

	log.Printf("Storing file: %s", fileName)

	file := &domain.File{
		FileName:       fileName,
		FileType:       contentType,
		FileSize:       int64(len(data)),
		Data:           data,
		UploadDateTime: time.Now(),
	}

	stored, err := s.repo.Insert(ctx, file)
	if err != nil {
		log.Printf("Could not store file %s: %v", fileName, err)
		return nil, err
	}
	return stored, nil
}

// GetFile returns the record with the given id, or ErrFileNotFound.
func (s *FileService) GetFile(ctx context.Context, id int64) (*domain.File, error) {
	file, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if file == nil {
		log.Printf("File not found with id: %d", id)
		return nil, fmt.Errorf("%w with id %d", domain.ErrFileNotFound, id)
	}
	return file, nil
}

// GetAllFiles returns every stored record; an empty store yields an empty slice.
func (s *FileService) GetAllFiles(ctx context.Context) ([]domain.File, error) {
	return s.repo.ListAll(ctx)
}

// DeleteFile looks the record up first so that deleting a missing id surfaces
// the same ErrFileNotFound as a failed lookup, not a silent no-op.
func (s *FileService) DeleteFile(ctx context.Context, id int64) error {
	file, err := s.GetFile(ctx, id)
	if err != nil {
		return err
	}
	log.Printf("Deleting file: %s", file.FileName)
	return s.repo.DeleteByID(ctx, id)
}

// FileExists reports whether any record carries the given file name.
func (s *FileService) FileExists(ctx context.Context, name string) (bool, error) {
	return s.repo.ExistsByName(ctx, name)
}

// GetFilesByType returns all records with the given declared content type.
func (s *FileService) GetFilesByType(ctx context.Context, fileType string) ([]domain.File, error) {
	return s.repo.FindByType(ctx, fileType)
}
