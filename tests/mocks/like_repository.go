package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) Toggle(ctx context.Context, requirementID uuid.UUID, username string) (bool, bool, error) {
	args := m.Called(ctx, requirementID, username)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *LikeRepository) Exists(ctx context.Context, requirementID uuid.UUID, username string) (bool, error) {
	args := m.Called(ctx, requirementID, username)
	return args.Bool(0), args.Error(1)
}

func (m *LikeRepository) CountByRequirement(ctx context.Context, requirementID uuid.UUID) (int, error) {
	args := m.Called(ctx, requirementID)
	return args.Int(0), args.Error(1)
}
