package request_models

type ProgressRequest struct {
	ModuleSlug string `json:"moduleSlug" binding:"required"`
}
