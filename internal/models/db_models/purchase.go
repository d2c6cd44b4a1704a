package db_models

// Purchase is the paid-access ledger. At most one row per user; paid=true
// is the sole condition for dashboard access. Access is revoked by
// flipping paid to false, the row is only deleted on full account removal.
type Purchase struct {
	UserID           string `gorm:"primaryKey;column:user_id"`
	Email            string `gorm:"index"`
	StripeSessionID  string `gorm:"column:stripe_session_id"`
	StripeCustomerID string `gorm:"column:stripe_customer_id"`
	Paid             bool
	CreatedAt        int64 `gorm:"autoCreateTime"`
	UpdatedAt        int64 `gorm:"autoUpdateTime"`
}
