package unit_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"requirement-pool/internal/domain"
	"requirement-pool/tests/mocks"
)

func TestRequirementService_ToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("Toggle Law", func(t *testing.T) {
		likeRepo := new(mocks.LikeRepository)
		svc := newService(new(mocks.RequirementRepository), new(mocks.CommentRepository), new(mocks.SuggestionRepository), likeRepo)

		id := uuid.New()
		likeRepo.On("Toggle", ctx, id, "bob").Return(true, true, nil).Once()
		likeRepo.On("Toggle", ctx, id, "bob").Return(false, true, nil).Once()

		liked, err := svc.ToggleLike(ctx, id, "bob")
		assert.NoError(t, err)
		assert.True(t, liked)

		liked, err = svc.ToggleLike(ctx, id, "bob")
		assert.NoError(t, err)
		assert.False(t, liked)

		likeRepo.AssertExpectations(t)
	})

	t.Run("Missing Username", func(t *testing.T) {
		likeRepo := new(mocks.LikeRepository)
		svc := newService(new(mocks.RequirementRepository), new(mocks.CommentRepository), new(mocks.SuggestionRepository), likeRepo)

		_, err := svc.ToggleLike(ctx, uuid.New(), "")

		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		likeRepo.AssertNotCalled(t, "Toggle")
	})

	t.Run("Missing Requirement", func(t *testing.T) {
		likeRepo := new(mocks.LikeRepository)
		svc := newService(new(mocks.RequirementRepository), new(mocks.CommentRepository), new(mocks.SuggestionRepository), likeRepo)

		id := uuid.New()
		likeRepo.On("Toggle", ctx, id, "bob").Return(false, false, nil).Once()

		_, err := svc.ToggleLike(ctx, id, "bob")

		assert.ErrorIs(t, err, domain.ErrRequirementNotFound)
	})
}

func TestRequirementService_HasLiked(t *testing.T) {
	ctx := context.Background()

	t.Run("Idempotent Without Toggle", func(t *testing.T) {
		likeRepo := new(mocks.LikeRepository)
		svc := newService(new(mocks.RequirementRepository), new(mocks.CommentRepository), new(mocks.SuggestionRepository), likeRepo)

		id := uuid.New()
		likeRepo.On("Exists", ctx, id, "carol").Return(true, nil).Times(3)

		for i := 0; i < 3; i++ {
			liked, err := svc.HasLiked(ctx, id, "carol")
			assert.NoError(t, err)
			assert.True(t, liked)
		}

		likeRepo.AssertExpectations(t)
		likeRepo.AssertNotCalled(t, "Toggle")
	})
}
