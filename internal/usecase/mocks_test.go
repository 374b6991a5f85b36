package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/aliar-cursos/internal/entity"
	"github.com/xavierca1/aliar-cursos/pkg/ctxutil"
)

func adminCtx() context.Context {
	return ctxutil.WithIdentity(context.Background(), &entity.Identity{ID: "admin-1", Role: entity.RoleAdmin})
}

func userCtx() context.Context {
	return ctxutil.WithIdentity(context.Background(), &entity.Identity{ID: "user-1", Role: entity.RoleUser})
}

func ptr[T any](v T) *T { return &v }

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, id string, changes entity.LeadChanges) error {
	args := m.Called(ctx, id, changes)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTrialClassRepository
type MockTrialClassRepository struct {
	mock.Mock
}

func (m *MockTrialClassRepository) Create(ctx context.Context, tc *entity.TrialClass) error {
	args := m.Called(ctx, tc)
	return args.Error(0)
}

func (m *MockTrialClassRepository) FindAll(ctx context.Context) ([]*entity.TrialClass, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TrialClass), args.Error(1)
}

func (m *MockTrialClassRepository) FindByID(ctx context.Context, id string) (*entity.TrialClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TrialClass), args.Error(1)
}

func (m *MockTrialClassRepository) Update(ctx context.Context, id string, changes entity.TrialClassChanges) error {
	args := m.Called(ctx, id, changes)
	return args.Error(0)
}

func (m *MockTrialClassRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFeedbackRepository
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, f *entity.Feedback) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFeedbackRepository) FindAll(ctx context.Context) ([]*entity.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindByStatus(ctx context.Context, status entity.FeedbackStatus) ([]*entity.Feedback, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindByID(ctx context.Context, id string) (*entity.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) Update(ctx context.Context, id string, changes entity.FeedbackChanges) error {
	args := m.Called(ctx, id, changes)
	return args.Error(0)
}

func (m *MockFeedbackRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCurriculoRepository
type MockCurriculoRepository struct {
	mock.Mock
}

func (m *MockCurriculoRepository) Create(ctx context.Context, c *entity.Curriculo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCurriculoRepository) FindAll(ctx context.Context) ([]*entity.Curriculo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Curriculo), args.Error(1)
}

func (m *MockCurriculoRepository) FindByArea(ctx context.Context, area string) ([]*entity.Curriculo, error) {
	args := m.Called(ctx, area)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Curriculo), args.Error(1)
}

func (m *MockCurriculoRepository) FindByID(ctx context.Context, id string) (*entity.Curriculo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Curriculo), args.Error(1)
}

func (m *MockCurriculoRepository) Update(ctx context.Context, id string, changes entity.CurriculoChanges) error {
	args := m.Called(ctx, id, changes)
	return args.Error(0)
}

func (m *MockCurriculoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Upsert(ctx context.Context, u entity.UserUpsert) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyNewLead(ctx context.Context, n entity.LeadNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// MockTokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID string) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
