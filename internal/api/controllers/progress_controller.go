package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tescursos/internal/models/request_models"
	"tescursos/internal/services"
	"tescursos/pkg/middleware"
	"tescursos/pkg/utils"
)

type ProgressController struct {
	progressService services.ProgressServiceInterface
}

func NewProgressController(progressService services.ProgressServiceInterface) *ProgressController {
	return &ProgressController{
		progressService: progressService,
	}
}

// MarkCompleted records that the caller finished a module.
func (p *ProgressController) MarkCompleted(c *gin.Context) {
	var request request_models.ProgressRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "moduleSlug é obrigatório")
		return
	}

	if err := p.progressService.MarkCompleted(c.Request.Context(), middleware.GetUserID(c), request.ModuleSlug); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListCompleted returns the slugs the caller has finished.
func (p *ProgressController) ListCompleted(c *gin.Context) {
	slugs, err := p.progressService.ListCompleted(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed": slugs})
}
