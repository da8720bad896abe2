package dto

// CreateStaffRequest provisions a staff identity and its profile in one step.
type CreateStaffRequest struct {
	Email       string `json:"email" binding:"required,email" example:"alumni@srit.ac.in"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required" example:"D Anil Kumar"`
	Designation string `json:"designation" example:"Verbal Trainer"`
	Role        string `json:"role" binding:"required" example:"verbal_trainer"`
	Branch      string `json:"branch" example:"CSE"`
	Mobile      string `json:"mobile"`
}

// UpdateStaffRequest updates a staff profile.
type UpdateStaffRequest struct {
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation"`
	Role        string `json:"role" binding:"required"`
	Branch      string `json:"branch"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email" binding:"omitempty,email"`
}

// StaffResponse is the API shape of a staff profile.
type StaffResponse struct {
	ID          int64  `json:"id" example:"3"`
	UserID      int64  `json:"userId" example:"5"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Role        string `json:"role" example:"department_coordinator"`
	Branch      string `json:"branch" example:"ECE"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	IsSuperuser bool   `json:"isSuperuser"`
}

// StaffListResponse is a list of staff profiles.
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// TeamMemberResponse is one entry of the public placement-team roster.
type TeamMemberResponse struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
}
