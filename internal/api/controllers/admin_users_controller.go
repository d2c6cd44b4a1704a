package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tescursos/internal/models/request_models"
	"tescursos/internal/services"
	"tescursos/pkg/utils"
)

type AdminUsersController struct {
	adminUserService services.AdminUserServiceInterface
}

func NewAdminUsersController(adminUserService services.AdminUserServiceInterface) *AdminUsersController {
	return &AdminUsersController{
		adminUserService: adminUserService,
	}
}

// ListUsers godoc
// @Summary List every user with its access status
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Router /api/admin/users [get]
func (a *AdminUsersController) ListUsers(c *gin.Context) {
	users, err := a.adminUserService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateUser godoc
// @Summary Create a user, optionally granting paid access
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.CreateUserRequest true "New user payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/admin/users [post]
func (a *AdminUsersController) CreateUser(c *gin.Context) {
	var request request_models.CreateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "E-mail e senha são obrigatórios")
		return
	}

	if request.Email == "" || request.Password == "" {
		utils.RespondError(c, http.StatusBadRequest, "E-mail e senha são obrigatórios")
		return
	}
	if len(request.Password) < 6 {
		utils.RespondError(c, http.StatusBadRequest, "Senha deve ter no mínimo 6 caracteres")
		return
	}

	user, err := a.adminUserService.CreateUser(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ToggleAccess grants or revokes paid access for an existing user.
func (a *AdminUsersController) ToggleAccess(c *gin.Context) {
	var request request_models.ToggleAccessRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.UserID == "" {
		utils.RespondError(c, http.StatusBadRequest, "userId é obrigatório")
		return
	}

	if err := a.adminUserService.SetAccess(c.Request.Context(), request.UserID, request.Email, request.GrantAccess); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "has_access": request.GrantAccess})
}

// DeleteUser removes the user's ledger rows and then the identity itself.
func (a *AdminUsersController) DeleteUser(c *gin.Context) {
	var request request_models.DeleteUserRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.UserID == "" {
		utils.RespondError(c, http.StatusBadRequest, "userId é obrigatório")
		return
	}

	if err := a.adminUserService.DeleteUser(c.Request.Context(), request.UserID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
