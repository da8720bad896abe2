package models

import "time"

// MaterialKind selects which resource table a material lives in.
type MaterialKind string

const (
	MaterialVerbal   MaterialKind = "verbal"
	MaterialAptitude MaterialKind = "aptitude"
)

// Valid reports whether k names a known material kind.
func (k MaterialKind) Valid() bool {
	return k == MaterialVerbal || k == MaterialAptitude
}

// Table returns the backing table for the kind.
func (k MaterialKind) Table() string {
	if k == MaterialAptitude {
		return "aptitude_tests"
	}
	return "verbal_materials"
}

// Material is a preparation resource (verbal material or aptitude test)
// owned by a staff profile. Deleting the owner cascades to its materials.
type Material struct {
	ID         int64         `json:"id" db:"id"`
	Kind       MaterialKind  `json:"kind"`
	Title      string        `json:"title" db:"title"`
	FilePath   string        `json:"filePath" db:"file_path"`
	UploaderID int64         `json:"uploaderId" db:"uploader_id"`
	UploadedAt time.Time     `json:"uploadedAt" db:"uploaded_at"`
	Uploader   *StaffProfile `json:"uploader,omitempty"` // Relation, no db tag
}
