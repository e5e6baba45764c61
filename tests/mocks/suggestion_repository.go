package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"requirement-pool/internal/domain"
)

type SuggestionRepository struct {
	mock.Mock
}

func (m *SuggestionRepository) Create(ctx context.Context, suggestion *domain.Suggestion) error {
	args := m.Called(ctx, suggestion)
	return args.Error(0)
}

func (m *SuggestionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *SuggestionRepository) ListByRequirement(ctx context.Context, requirementID uuid.UUID) ([]domain.Suggestion, error) {
	args := m.Called(ctx, requirementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Suggestion), args.Error(1)
}

func (m *SuggestionRepository) ListAll(ctx context.Context) ([]domain.Suggestion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Suggestion), args.Error(1)
}
