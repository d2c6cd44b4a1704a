package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondError writes the API error envelope. Every error response in the
// API is `{"error": "<localized message>"}`.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// HandleServiceError maps service-layer errors to HTTP responses. Upstream
// detail is logged, never exposed to the client.
func HandleServiceError(c *gin.Context, err error) {
	var progressErr *IncompleteProgressError

	switch {
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusForbidden, "Não autorizado")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "Usuário não encontrado.")
	case errors.Is(err, ErrModuleNotFound):
		RespondError(c, http.StatusNotFound, "Módulo não encontrado")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Este e-mail já está cadastrado")
	case errors.Is(err, ErrMissingUserName):
		RespondError(c, http.StatusBadRequest, "Nome do usuário não encontrado no cadastro. Por favor, entre em contato com o suporte.")
	case errors.As(err, &progressErr):
		RespondError(c, http.StatusBadRequest, progressErr.Error())
	case errors.Is(err, ErrDatabaseError), errors.Is(err, ErrIdentityProvider), errors.Is(err, ErrPaymentGateway):
		log.Printf("upstream error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Erro interno")
	default:
		log.Printf("unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Erro interno")
	}
}
