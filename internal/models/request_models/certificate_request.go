package request_models

type CertificateRequest struct {
	UserID string `json:"userId"`
}
