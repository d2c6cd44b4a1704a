package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"tescursos/internal/identity"
	"tescursos/internal/models/db_models"
	"tescursos/internal/models/request_models"
	"tescursos/internal/models/response_models"
	"tescursos/internal/repositories"
	"tescursos/pkg/utils"
)

type AdminUserServiceInterface interface {
	ListUsers(ctx context.Context) ([]response_models.AdminUser, error)
	CreateUser(ctx context.Context, request request_models.CreateUserRequest) (*response_models.AdminUser, error)
	SetAccess(ctx context.Context, userID, email string, grant bool) error
	DeleteUser(ctx context.Context, userID string) error
}

type AdminUserService struct {
	provider     identity.Provider
	purchaseRepo repositories.PurchaseRepository
	progressRepo repositories.ProgressRepository
	admins       *utils.Admins
}

func NewAdminUserService(
	provider identity.Provider,
	purchaseRepo repositories.PurchaseRepository,
	progressRepo repositories.ProgressRepository,
	admins *utils.Admins,
) AdminUserServiceInterface {
	return &AdminUserService{
		provider:     provider,
		purchaseRepo: purchaseRepo,
		progressRepo: progressRepo,
		admins:       admins,
	}
}

// ListUsers joins identities with the purchase ledger. Admin accounts are
// not listed. The purchase match prefers user id, falling back to e-mail
// for rows written by webhooks before the account existed.
func (s *AdminUserService) ListUsers(ctx context.Context) ([]response_models.AdminUser, error) {
	identities, err := s.provider.ListUsers(ctx)
	if err != nil {
		return nil, utils.ErrIdentityProvider
	}

	purchases, err := s.purchaseRepo.ListAll(ctx)
	if err != nil {
		// Fail closed: a missing ledger just means "no access" in the listing.
		log.Printf("listing purchases: %v", err)
		purchases = nil
	}

	byID := make(map[string]*db_models.Purchase, len(purchases))
	byEmail := make(map[string]*db_models.Purchase, len(purchases))
	for i := range purchases {
		byID[purchases[i].UserID] = &purchases[i]
		byEmail[strings.ToLower(purchases[i].Email)] = &purchases[i]
	}

	users := make([]response_models.AdminUser, 0, len(identities))
	for _, u := range identities {
		if s.admins.IsAdmin(u.Email, u.UserMetadata) {
			continue
		}
		purchase := byID[u.ID]
		if purchase == nil {
			purchase = byEmail[strings.ToLower(u.Email)]
		}
		users = append(users, response_models.AdminUser{
			ID:        u.ID,
			Email:     u.Email,
			Name:      u.DisplayName(),
			CreatedAt: u.CreatedAt,
			HasAccess: purchase != nil && purchase.Paid,
		})
	}

	return users, nil
}

func (s *AdminUserService) CreateUser(ctx context.Context, request request_models.CreateUserRequest) (*response_models.AdminUser, error) {
	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrIdentityProvider
	}

	user, err := s.provider.CreateUser(ctx, identity.CreateUserParams{
		Email:        request.Email,
		PasswordHash: passwordHash,
		EmailConfirm: true,
		UserMetadata: map[string]interface{}{"name": request.Name},
	})
	if err != nil {
		var apiErr *identity.APIError
		if errors.As(err, &apiErr) &&
			(apiErr.Status == http.StatusUnprocessableEntity ||
				strings.Contains(apiErr.Message, "already been registered")) {
			return nil, utils.ErrEmailAlreadyExists
		}
		log.Printf("creating user: %v", err)
		return nil, utils.ErrIdentityProvider
	}

	if request.GrantAccess {
		if err := s.grantAccess(ctx, user.ID, request.Email); err != nil {
			return nil, err
		}
	}

	log.Printf("user created by admin: %s (access: %t)", request.Email, request.GrantAccess)

	return &response_models.AdminUser{
		ID:        user.ID,
		Email:     request.Email,
		Name:      request.Name,
		CreatedAt: user.CreatedAt,
		HasAccess: request.GrantAccess,
	}, nil
}

func (s *AdminUserService) SetAccess(ctx context.Context, userID, email string, grant bool) error {
	if grant {
		return s.grantAccess(ctx, userID, email)
	}

	// Revoking flips paid off but keeps the row.
	if err := s.purchaseRepo.SetPaid(ctx, userID, false); err != nil {
		return utils.ErrDatabaseError
	}
	log.Printf("access revoked for user %s", userID)
	return nil
}

// DeleteUser removes ledger rows before the identity so nothing keeps
// referencing a deleted account. Ledger deletions are best effort and are
// not rolled back when the identity deletion fails.
func (s *AdminUserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.purchaseRepo.DeleteByUserID(ctx, userID); err != nil {
		log.Printf("deleting purchases for %s: %v", userID, err)
	}
	if err := s.progressRepo.DeleteByUserID(ctx, userID); err != nil {
		log.Printf("deleting progress for %s: %v", userID, err)
	}

	if err := s.provider.DeleteUser(ctx, userID); err != nil {
		var apiErr *identity.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return utils.ErrUserNotFound
		}
		log.Printf("deleting user %s: %v", userID, err)
		return utils.ErrIdentityProvider
	}

	log.Printf("user deleted: %s", userID)
	return nil
}

func (s *AdminUserService) grantAccess(ctx context.Context, userID, email string) error {
	purchase := &db_models.Purchase{
		UserID:           userID,
		Email:            email,
		StripeSessionID:  fmt.Sprintf("admin-%d", time.Now().UnixMilli()),
		StripeCustomerID: "manual-" + userID,
		Paid:             true,
	}
	if err := s.purchaseRepo.Upsert(ctx, purchase); err != nil {
		return utils.ErrDatabaseError
	}
	log.Printf("access granted for user %s", userID)
	return nil
}
