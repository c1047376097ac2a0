package impl

import (
	"context"
	"io"
	"log/slog"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// newDiscardLogger builds a logger whose output goes nowhere, keeping test output clean.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubRepoFactory hands out the mock repositories to transactional code.
type stubRepoFactory struct {
	farmers  repository.FarmerRepository
	products repository.ProductRepository
}

func (f *stubRepoFactory) FarmerRepo() repository.FarmerRepository {
	return f.farmers
}

func (f *stubRepoFactory) ProductRepo() repository.ProductRepository {
	return f.products
}

// stubTxManager runs the transactional function directly against the stub factory.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// mockFarmerRepo is a testify mock for repository.FarmerRepository.
type mockFarmerRepo struct {
	mock.Mock
}

func (m *mockFarmerRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Error(1)
}

func (m *mockFarmerRepo) Create(ctx context.Context, farmer *entity.Farmer) error {
	args := m.Called(ctx, farmer)

	return args.Error(0)
}

func (m *mockFarmerRepo) FindByUsername(ctx context.Context, username string) (*entity.Farmer, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Farmer), args.Error(1)
}

func (m *mockFarmerRepo) UpdatePassword(ctx context.Context, username string, passwordHash string) error {
	args := m.Called(ctx, username, passwordHash)

	return args.Error(0)
}

func (m *mockFarmerRepo) ListAll(ctx context.Context) ([]*entity.Farmer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Farmer), args.Error(1)
}

func (m *mockFarmerRepo) DeleteByUsername(ctx context.Context, username string) error {
	args := m.Called(ctx, username)

	return args.Error(0)
}

// mockProductRepo is a testify mock for repository.ProductRepository.
type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepo) FindFirstByUsername(ctx context.Context, username string) (*entity.Product, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

// mockHasher is a testify mock for service.PasswordHasher.
type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// mockTokenService is a testify mock for service.TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) IssueToken(username string) (string, error) {
	args := m.Called(username)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}
