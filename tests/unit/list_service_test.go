package unit_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"requirement-pool/internal/domain"
	"requirement-pool/tests/mocks"
)

func TestRequirementService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Groups Children Per Requirement", func(t *testing.T) {
		reqRepo := new(mocks.RequirementRepository)
		commentRepo := new(mocks.CommentRepository)
		suggestionRepo := new(mocks.SuggestionRepository)
		svc := newService(reqRepo, commentRepo, suggestionRepo, new(mocks.LikeRepository))

		newer := domain.Requirement{ID: uuid.New(), Title: "newer", CreatedAt: time.Now()}
		older := domain.Requirement{ID: uuid.New(), Title: "older", CreatedAt: time.Now().Add(-time.Hour)}

		// Repository already orders newest-first.
		reqRepo.On("List", ctx).Return([]domain.Requirement{newer, older}, nil).Once()
		commentRepo.On("ListAll", ctx).Return([]domain.Comment{
			{ID: uuid.New(), RequirementID: older.ID, Content: "on older"},
			{ID: uuid.New(), RequirementID: newer.ID, Content: "on newer"},
		}, nil).Once()
		suggestionRepo.On("ListAll", ctx).Return([]domain.Suggestion{
			{ID: uuid.New(), RequirementID: newer.ID, Content: "try this"},
		}, nil).Once()

		result, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "newer", result[0].Title)
		assert.Equal(t, "older", result[1].Title)
		assert.Len(t, result[0].Comments, 1)
		assert.Equal(t, "on newer", result[0].Comments[0].Content)
		assert.Len(t, result[0].Suggestions, 1)
		assert.Len(t, result[1].Comments, 1)
		assert.Empty(t, result[1].Suggestions)
		assert.NotNil(t, result[1].Suggestions)
	})

	t.Run("Empty Pool", func(t *testing.T) {
		reqRepo := new(mocks.RequirementRepository)
		commentRepo := new(mocks.CommentRepository)
		suggestionRepo := new(mocks.SuggestionRepository)
		svc := newService(reqRepo, commentRepo, suggestionRepo, new(mocks.LikeRepository))

		reqRepo.On("List", ctx).Return([]domain.Requirement{}, nil).Once()
		commentRepo.On("ListAll", ctx).Return([]domain.Comment{}, nil).Once()
		suggestionRepo.On("ListAll", ctx).Return([]domain.Suggestion{}, nil).Once()

		result, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}
