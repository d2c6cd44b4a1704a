package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tescursos/internal/identity"
	"tescursos/internal/models/db_models"
	"tescursos/internal/repositories"
	"tescursos/pkg/utils"
)

// TotalModules is the number of course modules a user must complete
// before a certificate can be issued.
const TotalModules = 5

type IssuedCertificate struct {
	UserName string
	Code     string
}

type CertificateServiceInterface interface {
	Issue(ctx context.Context, userID string) (*IssuedCertificate, error)
}

type CertificateService struct {
	provider     identity.Provider
	progressRepo repositories.ProgressRepository
	certRepo     repositories.CertificateRepository
	totalModules int64
}

func NewCertificateService(
	provider identity.Provider,
	progressRepo repositories.ProgressRepository,
	certRepo repositories.CertificateRepository,
) CertificateServiceInterface {
	return &CertificateService{
		provider:     provider,
		progressRepo: progressRepo,
		certRepo:     certRepo,
		totalModules: TotalModules,
	}
}

// Issue confirms completion and returns the user's validation code,
// creating it on first call and reusing it on every call after that.
func (s *CertificateService) Issue(ctx context.Context, userID string) (*IssuedCertificate, error) {
	user, err := s.provider.GetUserByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrIdentityProvider
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	// The name comes from the provider, not from the request, since it is
	// printed on the certificate.
	name := user.DisplayName()
	if name == "" {
		return nil, utils.ErrMissingUserName
	}

	completed, err := s.progressRepo.CountCompleted(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if completed < s.totalModules {
		return nil, &utils.IncompleteProgressError{Completed: completed, Total: s.totalModules}
	}

	existing, err := s.certRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return &IssuedCertificate{UserName: name, Code: existing.Code}, nil
	}

	cert := &db_models.Certificate{
		UserID:   userID,
		UserName: name,
		Code:     utils.NewCertificateCode(),
	}
	if err := s.certRepo.Insert(ctx, cert); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent issuance; the winner's
			// code is the user's code.
			winner, ferr := s.certRepo.FindByUserID(ctx, userID)
			if ferr != nil || winner == nil {
				return nil, utils.ErrDatabaseError
			}
			return &IssuedCertificate{UserName: name, Code: winner.Code}, nil
		}
		return nil, utils.ErrDatabaseError
	}

	return &IssuedCertificate{UserName: name, Code: cert.Code}, nil
}
