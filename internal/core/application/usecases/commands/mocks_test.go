package commands_test

import (
	"context"
	"testing"

	"github.com/lcnogueira/plataforma-sabia/internal/core/application/usecases/commands"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/access"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/service"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/technology"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/user"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/services"
	"github.com/lcnogueira/plataforma-sabia/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTechnologyOrderRepository struct{ mock.Mock }

func (m *MockTechnologyOrderRepository) Add(ctx context.Context, o *techorder.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTechnologyOrderRepository) Update(ctx context.Context, o *techorder.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTechnologyOrderRepository) Get(ctx context.Context, id kernel.UUID) (*techorder.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*techorder.Order), args.Error(1)
}

type MockServiceOrderRepository struct{ mock.Mock }

func (m *MockServiceOrderRepository) Add(ctx context.Context, o *serviceorder.ServiceOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) Update(ctx context.Context, o *serviceorder.ServiceOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serviceorder.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *serviceorder.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, r *serviceorder.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serviceorder.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTechnologyRepository struct{ mock.Mock }

func (m *MockTechnologyRepository) Get(ctx context.Context, id kernel.UUID) (*technology.Technology, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*technology.Technology), args.Error(1)
}

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Get(ctx context.Context, id kernel.UUID) (*service.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Service), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockTechnologyOrderUoW struct{ mock.Mock }

func (m *MockTechnologyOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTechnologyOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTechnologyOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTechnologyOrderUoW) TechnologyOrderRepository() ports.TechnologyOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.TechnologyOrderRepository)
}

func (m *MockTechnologyOrderUoW) TechnologyRepository() ports.TechnologyRepository {
	args := m.Called()
	return args.Get(0).(ports.TechnologyRepository)
}

func (m *MockTechnologyOrderUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockTechnologyOrderUoWFactory struct{ mock.Mock }

func (m *MockTechnologyOrderUoWFactory) Create() commands.TechnologyOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.TechnologyOrderUoW)
}

type MockServiceOrderUoW struct{ mock.Mock }

func (m *MockServiceOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServiceOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServiceOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServiceOrderUoW) ServiceOrderRepository() ports.ServiceOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceOrderRepository)
}

func (m *MockServiceOrderUoW) ServiceRepository() ports.ServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceRepository)
}

func (m *MockServiceOrderUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockServiceOrderUoWFactory struct{ mock.Mock }

func (m *MockServiceOrderUoWFactory) Create() commands.ServiceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.ServiceOrderUoW)
}

type MockReviewUoW struct{ mock.Mock }

func (m *MockReviewUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReviewUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReviewUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReviewUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

func (m *MockReviewUoW) ServiceOrderRepository() ports.ServiceOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceOrderRepository)
}

func (m *MockReviewUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

func newEvaluator() *services.AccessEvaluator {
	return services.NewAccessEvaluator(access.DefaultPolicy())
}

func newTestUser(t *testing.T, email, role string) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), email, "Test User", role)
	require.NoError(t, err)
	return u
}

func newTestTechnology(t *testing.T, ownerID kernel.UUID) *technology.Technology {
	t.Helper()
	tech, err := technology.NewTechnology(kernel.NewUUID(), "Solar water heater", technology.StatusPublished,
		[]technology.UserRole{{UserID: ownerID, Role: technology.RoleOwner}})
	require.NoError(t, err)
	return tech
}

func newTestService(t *testing.T, responsibleID kernel.UUID) *service.Service {
	t.Helper()
	svc, err := service.NewService(kernel.NewUUID(), "Soil analysis", responsibleID)
	require.NoError(t, err)
	return svc
}

func newOpenOrder(t *testing.T, technologyID, buyerID kernel.UUID) *techorder.Order {
	t.Helper()
	o, err := techorder.NewOrder(kernel.NewUUID(), technologyID, buyerID, 2,
		techorder.UseEnterprise, techorder.FundingWants, "need it soon")
	require.NoError(t, err)
	return o
}

func newRequestedServiceOrder(t *testing.T, serviceID, requesterID kernel.UUID) *serviceorder.ServiceOrder {
	t.Helper()
	o, err := serviceorder.NewServiceOrder(kernel.NewUUID(), serviceID, requesterID, 1, "")
	require.NoError(t, err)
	return o
}

func newTestReview(t *testing.T, serviceOrderID, reviewerID kernel.UUID) *serviceorder.Review {
	t.Helper()
	r, err := serviceorder.NewReview(kernel.NewUUID(), serviceOrderID, reviewerID,
		"great service", 5, []string{"fast"}, nil)
	require.NoError(t, err)
	return r
}
