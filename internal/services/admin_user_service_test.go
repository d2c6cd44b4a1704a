package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tescursos/internal/identity"
	"tescursos/internal/models/db_models"
	"tescursos/internal/models/request_models"
	"tescursos/pkg/utils"
)

const adminEmail = "admin@tescursos.com.br"

func newAdminService(provider *fakeProvider, purchases *fakePurchaseRepo, progress *fakeProgressRepo) AdminUserServiceInterface {
	return NewAdminUserService(provider, purchases, progress, utils.NewAdmins([]string{adminEmail}))
}

func TestCreateUser_GrantAccessSetsPaid(t *testing.T) {
	provider := newFakeProvider()
	purchases := newFakePurchaseRepo()
	svc := newAdminService(provider, purchases, newFakeProgressRepo())

	user, err := svc.CreateUser(context.Background(), request_models.CreateUserRequest{
		Name:        "João",
		Email:       "joao@test.com",
		Password:    "secret1",
		GrantAccess: true,
	})
	require.NoError(t, err)
	assert.True(t, user.HasAccess)

	purchase, err := purchases.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, purchase)
	assert.True(t, purchase.Paid)
	assert.Equal(t, "joao@test.com", purchase.Email)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	provider := newFakeProvider()
	svc := newAdminService(provider, newFakePurchaseRepo(), newFakeProgressRepo())

	_, err := svc.CreateUser(context.Background(), request_models.CreateUserRequest{
		Email: "dup@test.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), request_models.CreateUserRequest{
		Email: "dup@test.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestCreateUser_PasswordIsHashedBeforeProvider(t *testing.T) {
	provider := newFakeProvider()
	svc := newAdminService(provider, newFakePurchaseRepo(), newFakeProgressRepo())

	_, err := svc.CreateUser(context.Background(), request_models.CreateUserRequest{
		Email: "h@test.com", Password: "secret1",
	})
	require.NoError(t, err)

	require.Len(t, provider.created, 1)
	params := provider.created[0]
	assert.True(t, params.EmailConfirm)
	assert.NotEqual(t, "secret1", params.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(params.PasswordHash), []byte("secret1")))
}

func TestSetAccess_RevokeKeepsRow(t *testing.T) {
	provider := newFakeProvider()
	purchases := newFakePurchaseRepo()
	svc := newAdminService(provider, purchases, newFakeProgressRepo())

	require.NoError(t, svc.SetAccess(context.Background(), "u1", "u1@test.com", true))
	require.NoError(t, svc.SetAccess(context.Background(), "u1", "u1@test.com", false))

	purchase, err := purchases.FindByUserID(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, purchase, "revoking must not delete the purchase row")
	assert.False(t, purchase.Paid)

	// Granting again updates the same row; still exactly one per user id.
	require.NoError(t, svc.SetAccess(context.Background(), "u1", "u1@test.com", true))
	rows, err := purchases.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.True(t, rows[0].Paid)
}

func TestDeleteUser_LedgersGoFirst(t *testing.T) {
	provider := newFakeProvider()
	purchases := newFakePurchaseRepo()
	progress := newFakeProgressRepo()
	svc := newAdminService(provider, purchases, progress)

	provider.users["u1"] = &identity.User{ID: "u1", Email: "u1@test.com"}
	purchases.rows["u1"] = &db_models.Purchase{UserID: "u1", Paid: true}
	progress.completed["u1"] = []string{"modulo-1-esocial"}

	var order []string
	purchases.onDelete = func() { order = append(order, "purchases") }
	progress.onDelete = func() { order = append(order, "progress") }
	provider.onDelete = func() { order = append(order, "identity") }

	require.NoError(t, svc.DeleteUser(context.Background(), "u1"))
	assert.Equal(t, []string{"purchases", "progress", "identity"}, order)
	assert.Empty(t, purchases.rows)
	assert.Empty(t, progress.completed)
}

func TestDeleteUser_UnknownUser(t *testing.T) {
	svc := newAdminService(newFakeProvider(), newFakePurchaseRepo(), newFakeProgressRepo())

	err := svc.DeleteUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestListUsers_ExcludesAdminsAndJoinsPurchases(t *testing.T) {
	provider := newFakeProvider()
	purchases := newFakePurchaseRepo()
	svc := newAdminService(provider, purchases, newFakeProgressRepo())

	provider.users["a"] = &identity.User{ID: "a", Email: "ADMIN@tescursos.com.br"}
	provider.users["u1"] = &identity.User{ID: "u1", Email: "u1@test.com"}
	provider.users["u2"] = &identity.User{ID: "u2", Email: "u2@test.com"}

	// u1 matched by id, u2 only by e-mail (webhook wrote the row before
	// the account existed).
	purchases.rows["u1"] = &db_models.Purchase{UserID: "u1", Email: "old@test.com", Paid: true}
	purchases.rows["other"] = &db_models.Purchase{UserID: "other", Email: "u2@test.com", Paid: true}

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2, "admin must not appear in the listing")

	byID := map[string]bool{}
	for _, u := range users {
		byID[u.ID] = u.HasAccess
	}
	assert.True(t, byID["u1"])
	assert.True(t, byID["u2"])
}

func TestListUsers_PurchaseLookupFailureFailsClosed(t *testing.T) {
	provider := newFakeProvider()
	purchases := newFakePurchaseRepo()
	purchases.listErr = assert.AnError
	svc := newAdminService(provider, purchases, newFakeProgressRepo())

	provider.users["u1"] = &identity.User{ID: "u1", Email: "u1@test.com"}

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.False(t, users[0].HasAccess)
}
