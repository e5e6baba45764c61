package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"requirement-pool/internal/domain"
)

type RequirementRepository struct {
	mock.Mock
}

func (m *RequirementRepository) Create(ctx context.Context, req *domain.Requirement) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *RequirementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Requirement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Requirement), args.Error(1)
}

func (m *RequirementRepository) List(ctx context.Context) ([]domain.Requirement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Requirement), args.Error(1)
}

func (m *RequirementRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *RequirementRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *RequirementRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RequirementRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
