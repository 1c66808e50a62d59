package dto

type UploadAvatarRequest struct {
	UserID    string `json:"userId" binding:"omitempty"`
	ImageData string `json:"imageData" binding:"required"`
	FileName  string `json:"fileName" binding:"required,max=255"`
}
