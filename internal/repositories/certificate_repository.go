package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tescursos/internal/models/db_models"
)

type CertificateRepository interface {
	FindByUserID(ctx context.Context, userID string) (*db_models.Certificate, error)
	// Insert returns gorm.ErrDuplicatedKey when a certificate for the same
	// user already exists; callers re-fetch and reuse the existing code.
	Insert(ctx context.Context, cert *db_models.Certificate) error
}

type certificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) FindByUserID(ctx context.Context, userID string) (*db_models.Certificate, error) {
	var cert db_models.Certificate
	err := r.db.WithContext(ctx).First(&cert, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cert, nil
}

func (r *certificateRepository) Insert(ctx context.Context, cert *db_models.Certificate) error {
	return r.db.WithContext(ctx).Create(cert).Error
}
