package dto

import "time"

// RegistrationResponse is one ledger entry joined with its drive.
type RegistrationResponse struct {
	ID           int64         `json:"id" example:"1"`
	StudentID    int64         `json:"studentId" example:"7"`
	RegisteredAt time.Time     `json:"registeredAt"`
	Drive        DriveResponse `json:"drive"`
}

// RegisterResult reports the outcome of a registration attempt. A duplicate
// attempt completes with AlreadyRegistered set and no new ledger row.
type RegisterResult struct {
	AlreadyRegistered bool   `json:"alreadyRegistered"`
	CompanyName       string `json:"companyName" example:"Acme"`
}
