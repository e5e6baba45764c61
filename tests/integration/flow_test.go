//go:build integration
// +build integration

package integration_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"requirement-pool/internal/domain"
)

func amount(v float64) *float64 { return &v }

func TestRequirementLifecycle(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()
	ctx := context.Background()

	created, err := env.Requirements.Create(ctx, "alice", domain.CreateRequirementInput{
		Title:            "X",
		Description:      "Y",
		AllowSuggestions: true,
		WillingToPay:     true,
		PaymentAmount:    amount(100),
		Tags:             []string{"tools"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, 0, created.Likes)
	require.NotNil(t, created.PaymentAmount)
	assert.Equal(t, float64(100), *created.PaymentAmount)

	t.Run("Round Trip", func(t *testing.T) {
		got, err := env.Requirements.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "X", got.Title)
		assert.Equal(t, "Y", got.Description)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, []string{"tools"}, []string(got.Tags))
		assert.Empty(t, got.Comments)
		assert.Empty(t, got.Suggestions)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("Toggle Like", func(t *testing.T) {
		liked, err := env.Requirements.ToggleLike(ctx, created.ID, "bob")
		require.NoError(t, err)
		assert.True(t, liked)

		got, err := env.Requirements.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Likes)

		liked, err = env.Requirements.ToggleLike(ctx, created.ID, "bob")
		require.NoError(t, err)
		assert.False(t, liked)

		liked, err = env.Requirements.ToggleLike(ctx, created.ID, "carol")
		require.NoError(t, err)
		assert.True(t, liked)

		got, err = env.Requirements.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Likes)

		hasLiked, err := env.Requirements.HasLiked(ctx, created.ID, "carol")
		require.NoError(t, err)
		assert.True(t, hasLiked)

		hasLiked, err = env.Requirements.HasLiked(ctx, created.ID, "bob")
		require.NoError(t, err)
		assert.False(t, hasLiked)
	})

	t.Run("Comment Ordering", func(t *testing.T) {
		_, err := env.Requirements.AddComment(ctx, created.ID, domain.CreateCommentInput{Username: "bob", Content: "first"})
		require.NoError(t, err)
		_, err = env.Requirements.AddComment(ctx, created.ID, domain.CreateCommentInput{Username: "carol", Content: "second"})
		require.NoError(t, err)

		got, err := env.Requirements.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, got.Comments, 2)
		assert.Equal(t, "first", got.Comments[0].Content)
		assert.Equal(t, "second", got.Comments[1].Content)
	})

	t.Run("Status Update", func(t *testing.T) {
		_, err := env.Requirements.UpdateStatus(ctx, created.ID, "bogus")
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)

		got, err := env.Requirements.UpdateStatus(ctx, created.ID, "completed")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, got.Status)
	})

	t.Run("Cascading Delete", func(t *testing.T) {
		got, err := env.Requirements.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotEmpty(t, got.Comments)
		commentID := got.Comments[0].ID

		require.NoError(t, env.Requirements.Delete(ctx, created.ID))

		_, err = env.Requirements.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrRequirementNotFound)

		err = env.Requirements.DeleteComment(ctx, commentID)
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)

		for _, table := range []string{"comments", "suggestions", "likes"} {
			var count int
			require.NoError(t, env.DB.Get(&count,
				fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE requirement_id = $1", table), created.ID))
			assert.Zero(t, count, table)
		}
	})
}

func TestLikesCounterStaysConsistent(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()
	ctx := context.Background()

	created, err := env.Requirements.Create(ctx, "alice", domain.CreateRequirementInput{
		Title:       "popular",
		Description: "everyone votes",
	})
	require.NoError(t, err)

	const users = 20
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			username := fmt.Sprintf("user-%d", i)
			_, err := env.Requirements.ToggleLike(ctx, created.ID, username)
			assert.NoError(t, err)
			// Every odd user un-likes again.
			if i%2 == 1 {
				_, err := env.Requirements.ToggleLike(ctx, created.ID, username)
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	rowCount, err := env.Repos.Like.CountByRequirement(ctx, created.ID)
	require.NoError(t, err)

	got, err := env.Requirements.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, users/2, rowCount)
	assert.Equal(t, rowCount, got.Likes, "cached counter must match like rows")
}

func TestOrphanWritesRejected(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()
	ctx := context.Background()

	missing := domain.ErrRequirementNotFound

	_, err := env.Requirements.AddComment(ctx, uuid.New(), domain.CreateCommentInput{Username: "bob", Content: "hi"})
	assert.ErrorIs(t, err, missing)

	_, err = env.Requirements.AddSuggestion(ctx, uuid.New(), domain.CreateCommentInput{Username: "bob", Content: "hi"})
	assert.ErrorIs(t, err, missing)

	_, err = env.Requirements.ToggleLike(ctx, uuid.New(), "bob")
	assert.ErrorIs(t, err, missing)
}
