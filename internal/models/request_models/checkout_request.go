package request_models

type CheckoutRequest struct {
	Name  string `json:"name" binding:"required"`
	TaxID string `json:"taxId" binding:"required"`
}
