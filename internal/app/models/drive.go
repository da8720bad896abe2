package models

import "time"

// PlacementDrive defines a recruitment event based on the 'placement_drives'
// table. Package is the offered compensation in lakhs per annum, stored as
// NUMERIC(10,2).
type PlacementDrive struct {
	ID          int64     `json:"id" db:"id"`
	CompanyName string    `json:"companyName" db:"company_name"`
	JobRole     string    `json:"jobRole" db:"job_role"`
	Date        time.Time `json:"date" db:"drive_date"`
	Package     float64   `json:"package" db:"package"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Registration is one ledger row: a student signed up for a drive. The
// (student_id, drive_id) pair is unique at the storage layer.
type Registration struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	DriveID      int64     `json:"driveId" db:"drive_id"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`
}

// RegisteredDrive is a ledger row joined with its drive data.
type RegisteredDrive struct {
	Registration
	Drive PlacementDrive `json:"drive"`
}
