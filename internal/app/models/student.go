package models

import "time"

// Student defines the student model based on the 'students' table. UserID is
// nullable: a student record can exist before a login identity is linked.
type Student struct {
	ID             int64     `json:"id" db:"id"`
	UserID         *int64    `json:"userId,omitempty" db:"user_id"`
	FullName       string    `json:"fullName" db:"full_name"`
	RollNumber     string    `json:"rollNumber" db:"roll_number"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Branch         string    `json:"branch" db:"branch"`
	GraduationYear int       `json:"graduationYear" db:"graduation_year"`
	ResumePath     *string   `json:"resumePath,omitempty" db:"resume_path"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
