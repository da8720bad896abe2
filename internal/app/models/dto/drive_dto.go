package dto

import "time"

// CreateDriveRequest creates a placement drive. Package and description are
// stored as provided; no range checks beyond required-field presence.
type CreateDriveRequest struct {
	CompanyName string  `json:"companyName" binding:"required" example:"Acme"`
	JobRole     string  `json:"jobRole" binding:"required" example:"SWE"`
	Date        string  `json:"date" binding:"required" example:"2025-06-01"`
	Package     float64 `json:"package" binding:"required" example:"12.5"`
	Description string  `json:"description" binding:"required"`
}

// UpdateDriveRequest updates an existing drive; all fields are replaced.
type UpdateDriveRequest struct {
	CompanyName string  `json:"companyName" binding:"required"`
	JobRole     string  `json:"jobRole" binding:"required"`
	Date        string  `json:"date" binding:"required" example:"2025-06-01"`
	Package     float64 `json:"package" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

// DriveResponse is the API shape of a placement drive.
type DriveResponse struct {
	ID          int64     `json:"id" example:"1"`
	CompanyName string    `json:"companyName" example:"Acme"`
	JobRole     string    `json:"jobRole" example:"SWE"`
	Date        string    `json:"date" example:"2025-06-01"`
	Package     float64   `json:"package" example:"12.5"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DriveListResponse is a paginated list of drives.
type DriveListResponse struct {
	Drives     []DriveResponse `json:"drives"`
	Pagination PaginationInfo  `json:"pagination"`
}

// DriveDateFormat is the wire format for drive dates.
const DriveDateFormat = "2006-01-02"
