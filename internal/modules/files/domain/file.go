package domain

import "time"

// File is the stored entity: the raw payload plus its metadata.
// Records are immutable once created; the only mutation is deletion.
type File struct {
	ID             int64     `db:"id" json:"id"`
	FileName       string    `db:"file_name" json:"fileName"`
	FileType       string    `db:"file_type" json:"fileType"`
	FileSize       int64     `db:"file_size" json:"fileSize"`
	Data           []byte    `db:"data" json:"-"`
	UploadDateTime time.Time `db:"upload_date_time" json:"uploadDateTime"`
}
