package http

import (
	"fmt"
	"time"

	"github.com/yago/fileuploadd/internal/modules/files/domain"
)

// FileResponse is the public response shape for upload and listing
type FileResponse struct {
	ID             int64     `json:"id"`
	FileName       string    `json:"fileName"`
	FileType       string    `json:"fileType"`
	FileSize       int64     `json:"fileSize"`
	DownloadURL    string    `json:"downloadUrl"`
	UploadDateTime time.Time `json:"uploadDateTime"`
}

// ToFileResponse builds the response DTO, computing the absolute download URL
// from the base URL of the current request.
func ToFileResponse(file *domain.File, baseURL string) *FileResponse {
	return &FileResponse{
		ID:             file.ID,
		FileName:       file.FileName,
		FileType:       file.FileType,
		FileSize:       file.FileSize,
		DownloadURL:    fmt.Sprintf("%s/api/files/%d", baseURL, file.ID),
		UploadDateTime: file.UploadDateTime,
	}
}
