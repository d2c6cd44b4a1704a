package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tescursos/internal/models/request_models"
	"tescursos/internal/pagbank"
	"tescursos/internal/services"
	"tescursos/pkg/middleware"
	"tescursos/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreateCheckout godoc
// @Summary Create a payment order for the course
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CheckoutRequest true "Checkout payload"
// @Success 200 {object} response_models.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/checkout [post]
func (p *PaymentController) CreateCheckout(c *gin.Context) {
	var request request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Nome e CPF são obrigatórios")
		return
	}

	userID := middleware.GetUserID(c)
	email := c.GetString("email")

	order, err := p.paymentService.CreateOrder(c.Request.Context(), userID, email, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetOrder polls the gateway for an order's payment status.
func (p *PaymentController) GetOrder(c *gin.Context) {
	status, err := p.paymentService.GetOrderStatus(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// HandleWebhook receives PagBank order notifications. Unpaid or unknown
// notifications are acknowledged so the gateway does not retry forever.
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	var order pagbank.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Payload inválido")
		return
	}

	if err := p.paymentService.ConfirmOrder(c.Request.Context(), order); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
