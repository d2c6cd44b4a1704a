package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tescursos/internal/services"
	"tescursos/pkg/utils"
)

type ContentController struct {
	contentService services.ContentServiceInterface
}

func NewContentController(contentService services.ContentServiceInterface) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// GetModule returns one module with its body rendered to HTML.
func (ct *ContentController) GetModule(c *gin.Context) {
	module, err := ct.contentService.GetModuleBySlug(c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, module)
}

// ListModules returns module metadata sorted by order, without bodies.
func (ct *ContentController) ListModules(c *gin.Context) {
	modules, err := ct.contentService.ListModules()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"modules": modules})
}
