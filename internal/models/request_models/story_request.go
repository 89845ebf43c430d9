package request_models

type CreateStoryRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	AuthorEmail string   `json:"authorEmail" binding:"required,email"`
	Images      []string `json:"images" binding:"required,min=1"`
}

type PatchStoryRequest struct {
	AddImages   []string `json:"addImages"`
	RemoveImage string   `json:"removeImage"`
}
