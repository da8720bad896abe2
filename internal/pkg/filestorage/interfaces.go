package filestorage

import "mime/multipart"

// Upload subdirectories used by the portal.
const (
	SubdirResumes  = "resumes"
	SubdirVerbal   = "verbal"
	SubdirAptitude = "aptitude"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile stores a file under a subdirectory and returns its
	// accessible path.
	SaveFile(fileHeader *multipart.FileHeader, subdir string) (string, error)

	// DeleteFile removes a stored file. Deleting a missing file is not
	// an error.
	DeleteFile(filePath string) error
}
