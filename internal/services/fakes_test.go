package services

import (
	"context"
	"net/http"

	"tescursos/internal/identity"
	"tescursos/internal/models/db_models"
	"tescursos/internal/pagbank"
)

// fakeProvider is an in-memory identity.Provider.
type fakeProvider struct {
	users     map[string]*identity.User
	created   []identity.CreateUserParams
	listErr   error
	createErr error
	deleteErr error
	deleted   []string
	onDelete  func()
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{users: map[string]*identity.User{}}
}

func (f *fakeProvider) ListUsers(ctx context.Context) ([]identity.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	users := make([]identity.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeProvider) GetUserByID(ctx context.Context, id string) (*identity.User, error) {
	return f.users[id], nil
}

func (f *fakeProvider) CreateUser(ctx context.Context, params identity.CreateUserParams) (*identity.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, params)
	for _, u := range f.users {
		if u.Email == params.Email {
			return nil, &identity.APIError{Status: http.StatusUnprocessableEntity, Message: "A user with this email address has already been registered"}
		}
	}
	user := &identity.User{
		ID:           "uid-" + params.Email,
		Email:        params.Email,
		UserMetadata: params.UserMetadata,
		CreatedAt:    "2026-01-01T00:00:00Z",
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeProvider) DeleteUser(ctx context.Context, id string) error {
	if f.onDelete != nil {
		f.onDelete()
	}
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.users[id]; !ok {
		return &identity.APIError{Status: http.StatusNotFound, Message: "user not found"}
	}
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePurchaseRepo struct {
	rows     map[string]*db_models.Purchase
	listErr  error
	onDelete func()
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{rows: map[string]*db_models.Purchase{}}
}

func (f *fakePurchaseRepo) Upsert(ctx context.Context, purchase *db_models.Purchase) error {
	copied := *purchase
	f.rows[purchase.UserID] = &copied
	return nil
}

func (f *fakePurchaseRepo) FindByUserID(ctx context.Context, userID string) (*db_models.Purchase, error) {
	return f.rows[userID], nil
}

func (f *fakePurchaseRepo) SetPaid(ctx context.Context, userID string, paid bool) error {
	if row, ok := f.rows[userID]; ok {
		row.Paid = paid
	}
	return nil
}

func (f *fakePurchaseRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if f.onDelete != nil {
		f.onDelete()
	}
	delete(f.rows, userID)
	return nil
}

func (f *fakePurchaseRepo) ListAll(ctx context.Context) ([]db_models.Purchase, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	rows := make([]db_models.Purchase, 0, len(f.rows))
	for _, r := range f.rows {
		rows = append(rows, *r)
	}
	return rows, nil
}

type fakeProgressRepo struct {
	completed map[string][]string
	countErr  error
	onDelete  func()
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{completed: map[string][]string{}}
}

func (f *fakeProgressRepo) MarkCompleted(ctx context.Context, userID, moduleSlug string) error {
	for _, s := range f.completed[userID] {
		if s == moduleSlug {
			return nil
		}
	}
	f.completed[userID] = append(f.completed[userID], moduleSlug)
	return nil
}

func (f *fakeProgressRepo) CountCompleted(ctx context.Context, userID string) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.completed[userID])), nil
}

func (f *fakeProgressRepo) ListCompletedSlugs(ctx context.Context, userID string) ([]string, error) {
	return f.completed[userID], nil
}

func (f *fakeProgressRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if f.onDelete != nil {
		f.onDelete()
	}
	delete(f.completed, userID)
	return nil
}

type fakeCertRepo struct {
	rows      map[string]*db_models.Certificate
	insertErr error
	// onInsert runs before the insert is applied, letting tests simulate a
	// concurrent writer sneaking in first.
	onInsert func()
	inserts  int
}

func newFakeCertRepo() *fakeCertRepo {
	return &fakeCertRepo{rows: map[string]*db_models.Certificate{}}
}

func (f *fakeCertRepo) FindByUserID(ctx context.Context, userID string) (*db_models.Certificate, error) {
	return f.rows[userID], nil
}

func (f *fakeCertRepo) Insert(ctx context.Context, cert *db_models.Certificate) error {
	if f.onInsert != nil {
		f.onInsert()
	}
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserts++
	copied := *cert
	f.rows[cert.UserID] = &copied
	return nil
}

type fakeGateway struct {
	created   []pagbank.OrderRequest
	order     *pagbank.Order
	createErr error
	getErr    error
}

func (f *fakeGateway) CreateOrder(ctx context.Context, req pagbank.OrderRequest) (*pagbank.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	if f.order != nil {
		return f.order, nil
	}
	return &pagbank.Order{ID: "ORDE_1", ReferenceID: req.ReferenceID}, nil
}

func (f *fakeGateway) GetOrder(ctx context.Context, orderID string) (*pagbank.Order, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.order, nil
}
