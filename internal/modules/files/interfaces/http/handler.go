package http

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/yago/fileuploadd/internal/modules/files/domain"
	"github.com/yago/fileuploadd/internal/shared/infrastructure/config"
	"github.com/yago/fileuploadd/internal/shared/utils"
)

// multipartMemoryLimit is how much of the parsed form is held in memory
// before spilling to temp files.
const multipartMemoryLimit = 32 << 20

type FileHandler struct {
	service         FileService
	maxRequestBytes int64
}

func NewFileHandler(service FileService, cfg config.FileStorageConfig) *FileHandler {
	return &FileHandler{
		service:         service,
		maxRequestBytes: cfg.MaxRequestMB * 1024 * 1024,
	}
}

// Upload handles POST /api/files/upload. It expects a multipart form with a
// part named "file" and responds 201 with the stored record's metadata.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestBytes)

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Printf("File size limit exceeded: %v", err)
			utils.WriteError(w, http.StatusRequestEntityTooLarge, "File Too Large",
				"File size exceeds the maximum allowed limit")
			return
		}
		utils.WriteError(w, http.StatusBadRequest, "File Upload Error",
			"request must be multipart/form-data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "File Upload Error",
			"required part 'file' is missing")
		return
	}
	defer file.Close()

	log.Printf("Received file upload request: %s", header.Filename)

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error occurred during file upload: %v", err)
		h.writeServiceError(w, fmt.Errorf("%w %s: %v", domain.ErrUploadFailed, header.Filename, err))
		return
	}

	stored, err := h.service.StoreFile(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	log.Printf("File uploaded successfully: %s", stored.FileName)
	utils.WriteJSON(w, http.StatusCreated, ToFileResponse(stored, requestBaseURL(r)))
}

// Download handles GET /api/files/{fileId}, streaming the raw bytes with the
// stored content type and an attachment disposition.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := h.fileID(w, r)
	if !ok {
		return
	}

	file, err := h.service.GetFile(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	contentType := file.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	log.Printf("Serving file: %s", file.FileName)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.Header().Set("Content-Length", strconv.FormatInt(file.FileSize, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		log.Printf("Failed to write file %d to response: %v", file.ID, err)
	}
}

// List handles GET /api/files, returning one response object per record.
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.service.GetAllFiles(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	baseURL := requestBaseURL(r)
	responses := make([]*FileResponse, 0, len(files))
	for i := range files {
		responses = append(responses, ToFileResponse(&files[i], baseURL))
	}
	utils.WriteJSON(w, http.StatusOK, responses)
}

// Delete handles DELETE /api/files/{fileId}; 204 on success, 404 when the id
// does not exist.
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.fileID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteFile(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	log.Printf("File with id %d successfully deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

// fileID parses the {fileId} path value. A non-numeric id names a resource
// that cannot exist, so it is reported as not found.
func (h *FileHandler) fileID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("fileId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "File Not Found",
			fmt.Sprintf("file not found with id %s", raw))
		return 0, false
	}
	return id, true
}

func (h *FileHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		utils.WriteError(w, http.StatusNotFound, "File Not Found", err.Error())
	case errors.Is(err, domain.ErrEmptyFile),
		errors.Is(err, domain.ErrFileTooLarge),
		errors.Is(err, domain.ErrInvalidFileName),
		errors.Is(err, domain.ErrUploadFailed):
		utils.WriteError(w, http.StatusBadRequest, "File Upload Error", err.Error())
	default:
		log.Printf("Unhandled error: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Internal Server Error",
			"An unexpected error occurred")
	}
}

// requestBaseURL rebuilds the scheme://host prefix of the current request so
// download URLs are absolute. X-Forwarded-Proto wins over the local TLS state
// when the service sits behind a proxy.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
