package dto

// CreateStudentRequest creates a student record, optionally with a login
// identity (when Password is present).
type CreateStudentRequest struct {
	FullName       string `json:"fullName" binding:"required" example:"R Srinivas"`
	RollNumber     string `json:"rollNumber" binding:"required" example:"R100"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Branch         string `json:"branch" binding:"required" example:"CSE"`
	GraduationYear int    `json:"graduationYear" binding:"required" example:"2026"`
	Password       string `json:"password,omitempty"`
}

// UpdateStudentRequest updates a student record.
type UpdateStudentRequest struct {
	FullName       string `json:"fullName" binding:"required"`
	RollNumber     string `json:"rollNumber" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Branch         string `json:"branch" binding:"required"`
	GraduationYear int    `json:"graduationYear" binding:"required"`
}

// StudentResponse is the API shape of a student.
type StudentResponse struct {
	ID             int64   `json:"id" example:"1"`
	FullName       string  `json:"fullName"`
	RollNumber     string  `json:"rollNumber" example:"R100"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Branch         string  `json:"branch" example:"CSE"`
	GraduationYear int     `json:"graduationYear" example:"2026"`
	ResumePath     *string `json:"resumePath,omitempty"`
}

// StudentListResponse is a list of students ordered by roll number.
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
}
