package request_models

type SubmitApplicationRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Title  string `json:"title" binding:"required"`
	Reason string `json:"reason" binding:"required"`
	CVLink string `json:"cvLink" binding:"required"`
}
