package dto

import "time"

// UploadMaterialRequest is the multipart form accompanying a material upload.
type UploadMaterialRequest struct {
	Title string `form:"title" binding:"required" example:"Synonyms practice set"`
}

// MaterialResponse is the API shape of a verbal material or aptitude test.
type MaterialResponse struct {
	ID         int64     `json:"id" example:"1"`
	Kind       string    `json:"kind" example:"verbal"`
	Title      string    `json:"title"`
	FilePath   string    `json:"filePath"`
	UploaderID int64     `json:"uploaderId" example:"3"`
	Uploader   string    `json:"uploader,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// MaterialListResponse is a list of materials, newest first.
type MaterialListResponse struct {
	Materials []MaterialResponse `json:"materials"`
}
