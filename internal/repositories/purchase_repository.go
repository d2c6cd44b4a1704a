package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tescursos/internal/models/db_models"
)

type PurchaseRepository interface {
	Upsert(ctx context.Context, purchase *db_models.Purchase) error
	FindByUserID(ctx context.Context, userID string) (*db_models.Purchase, error)
	SetPaid(ctx context.Context, userID string, paid bool) error
	DeleteByUserID(ctx context.Context, userID string) error
	ListAll(ctx context.Context) ([]db_models.Purchase, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Upsert inserts or, when a row for the same user id exists, updates it in
// place. One user id never holds more than one purchase row.
func (r *purchaseRepository) Upsert(ctx context.Context, purchase *db_models.Purchase) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "stripe_session_id", "stripe_customer_id", "paid", "updated_at",
		}),
	}).Create(purchase).Error
}

func (r *purchaseRepository) FindByUserID(ctx context.Context, userID string) (*db_models.Purchase, error) {
	var purchase db_models.Purchase
	err := r.db.WithContext(ctx).First(&purchase, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) SetPaid(ctx context.Context, userID string, paid bool) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Purchase{}).
		Where("user_id = ?", userID).
		Update("paid", paid).Error
}

func (r *purchaseRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.Purchase{}, "user_id = ?", userID).Error
}

func (r *purchaseRepository) ListAll(ctx context.Context) ([]db_models.Purchase, error) {
	var purchases []db_models.Purchase
	if err := r.db.WithContext(ctx).Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}
