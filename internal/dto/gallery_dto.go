package dto

type UploadImageRequest struct {
	Title string `form:"title" binding:"required,max=20"`
}

type GalleryImageResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	FilePath  string `json:"file_path"`
	CreatedAt string `json:"created_at"`
}
