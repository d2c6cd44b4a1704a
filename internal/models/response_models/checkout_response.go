package response_models

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
	QRCodeText  string `json:"qr_code_text,omitempty"`
	QRCodeImage string `json:"qr_code_image,omitempty"`
}

type OrderStatusResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Paid    bool   `json:"paid"`
}
