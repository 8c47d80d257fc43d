package apitests

import (
	"github.com/stretchr/testify/assert"

	"github.com/restharness/fixture-api-tests/ops"
	"github.com/restharness/fixture-api-tests/services"
)

func DoCommentTests(t *T) {
	t.Run("filter by post returns only that post's comments", func(t *T) {
		result, err := ops.ListCommentsByPost(t.Env(), 1)
		RequireNoError(t, err)
		RequireOK(t, result)
		assert.NotEmpty(t, result.Data)
		for _, c := range result.Data {
			assert.Equal(t, 1, c.PostID)
		}
	})

	t.Run("create echoes every submitted field", func(t *T) {
		payload := services.Comment{
			Name:   "Test Comment",
			Email:  "commenter@example.com",
			Body:   "A body for the test comment.",
			PostID: 1,
		}
		result, err := ops.CreateComment(t.Env(), &payload)
		RequireNoError(t, err)
		RequireOK(t, result)
		assert.Equal(t, "commenter@example.com", result.Data.Email)
		assert.Greater(t, result.Data.ID, 0)
	})

	t.Run("create with generated payload", func(t *T) {
		result, err := ops.CreateComment(t.Env(), nil)
		RequireNoError(t, err)
		RequireOK(t, result)
	})
}
