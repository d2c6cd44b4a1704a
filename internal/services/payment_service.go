package services

import (
	"context"
	"log"

	"tescursos/internal/models/db_models"
	"tescursos/internal/models/request_models"
	"tescursos/internal/models/response_models"
	"tescursos/internal/pagbank"
	"tescursos/internal/repositories"
	"tescursos/pkg/utils"
)

// CourseName labels payment orders and certificates.
const CourseName = "eSocial na Prática — SST"

const chargeStatusPaid = "PAID"

// Gateway is the slice of the PagBank client the service uses; tests
// substitute a fake.
type Gateway interface {
	CreateOrder(ctx context.Context, req pagbank.OrderRequest) (*pagbank.Order, error)
	GetOrder(ctx context.Context, orderID string) (*pagbank.Order, error)
}

type PaymentServiceInterface interface {
	CreateOrder(ctx context.Context, userID, email string, request request_models.CheckoutRequest) (*response_models.CheckoutResponse, error)
	GetOrderStatus(ctx context.Context, orderID string) (*response_models.OrderStatusResponse, error)
	ConfirmOrder(ctx context.Context, order pagbank.Order) error
}

type PaymentService struct {
	gateway      Gateway
	purchaseRepo repositories.PurchaseRepository
	priceCents   int64
	appBaseURL   string
}

func NewPaymentService(gateway Gateway, purchaseRepo repositories.PurchaseRepository, priceCents int64, appBaseURL string) PaymentServiceInterface {
	return &PaymentService{
		gateway:      gateway,
		purchaseRepo: purchaseRepo,
		priceCents:   priceCents,
		appBaseURL:   appBaseURL,
	}
}

// CreateOrder opens a PagBank order for the course. The reference id is the
// user id, which is how the webhook later maps the payment back to a user.
func (s *PaymentService) CreateOrder(ctx context.Context, userID, email string, request request_models.CheckoutRequest) (*response_models.CheckoutResponse, error) {
	var notificationURLs []string
	if s.appBaseURL != "" {
		notificationURLs = append(notificationURLs, s.appBaseURL+"/api/webhooks/pagbank")
	}

	order, err := s.gateway.CreateOrder(ctx, pagbank.OrderRequest{
		ReferenceID: userID,
		Customer: pagbank.Customer{
			Name:  request.Name,
			Email: email,
			TaxID: request.TaxID,
		},
		Items: []pagbank.Item{{
			Name:       CourseName,
			Quantity:   1,
			UnitAmount: s.priceCents,
		}},
		QRCodes:          []pagbank.QRCode{{Amount: pagbank.Amount{Value: s.priceCents}}},
		NotificationURLs: notificationURLs,
	})
	if err != nil {
		log.Printf("pagbank create order: %v", err)
		return nil, utils.ErrPaymentGateway
	}

	resp := &response_models.CheckoutResponse{
		OrderID: order.ID,
		Amount:  s.priceCents,
	}
	if len(order.QRCodes) > 0 {
		resp.QRCodeText = order.QRCodes[0].Text
		for _, link := range order.QRCodes[0].Links {
			if link.Media == "image/png" {
				resp.QRCodeImage = link.Href
				break
			}
		}
	}
	return resp, nil
}

func (s *PaymentService) GetOrderStatus(ctx context.Context, orderID string) (*response_models.OrderStatusResponse, error) {
	order, err := s.gateway.GetOrder(ctx, orderID)
	if err != nil {
		log.Printf("pagbank get order %s: %v", orderID, err)
		return nil, utils.ErrPaymentGateway
	}

	resp := &response_models.OrderStatusResponse{OrderID: order.ID}
	for _, charge := range order.Charges {
		resp.Status = charge.Status
		if charge.Status == chargeStatusPaid {
			resp.Paid = true
			break
		}
	}
	return resp, nil
}

// ConfirmOrder records a gateway notification. A paid charge upserts the
// purchase row for the user named by the order's reference id; anything
// else is ignored so retried notifications stay harmless.
func (s *PaymentService) ConfirmOrder(ctx context.Context, order pagbank.Order) error {
	var paidCharge *pagbank.Charge
	for i := range order.Charges {
		if order.Charges[i].Status == chargeStatusPaid {
			paidCharge = &order.Charges[i]
			break
		}
	}
	if paidCharge == nil || order.ReferenceID == "" {
		return nil
	}

	purchase := &db_models.Purchase{
		UserID:           order.ReferenceID,
		Email:            order.Customer.Email,
		StripeSessionID:  order.ID,
		StripeCustomerID: paidCharge.ID,
		Paid:             true,
	}
	if err := s.purchaseRepo.Upsert(ctx, purchase); err != nil {
		return utils.ErrDatabaseError
	}

	log.Printf("payment confirmed for user %s (order %s)", order.ReferenceID, order.ID)
	return nil
}
