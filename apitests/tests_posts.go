package apitests

import (
	"github.com/stretchr/testify/assert"

	"github.com/restharness/fixture-api-tests/ops"
	"github.com/restharness/fixture-api-tests/services"
)

func DoPostTests(t *T) {
	t.Run("get all returns the full collection", func(t *T) {
		result, err := ops.ListPosts(t.Env())
		RequireNoError(t, err)
		RequireOK(t, result)
	})

	t.Run("get by id returns the matching post", func(t *T) {
		result, err := ops.FetchPost(t.Env(), 1)
		RequireNoError(t, err)
		RequireOK(t, result)
		assert.Equal(t, 1, result.Data.ID)
	})

	t.Run("get by unknown id returns 404", func(t *T) {
		result, err := ops.FetchMissingPost(t.Env(), 9999)
		RequireNoError(t, err)
		RequireOK(t, result)
	})

	t.Run("filter by user returns only that user's posts", func(t *T) {
		result, err := ops.ListPostsByUser(t.Env(), 1)
		RequireNoError(t, err)
		RequireOK(t, result)
		assert.NotEmpty(t, result.Data)
	})

	t.Run("create echoes every submitted field", func(t *T) {
		payload := services.Post{Title: "Test Post", Body: "A body for the test post.", UserID: 1}
		result, err := ops.CreatePost(t.Env(), &payload)
		RequireNoError(t, err)
		RequireOK(t, result)
		assert.Equal(t, "Test Post", result.Data.Title)
		assert.Greater(t, result.Data.ID, 0)
	})

	t.Run("replace preserves submitted fields", func(t *T) {
		payload := services.Post{Title: "Replaced Title", Body: "Replaced body.", UserID: 1}
		result, err := ops.ReplacePost(t.Env(), 1, payload)
		RequireNoError(t, err)
		RequireOK(t, result)
	})

	t.Run("partial update changes only the title", func(t *T) {
		result, err := ops.PatchPost(t.Env(), 1, map[string]interface{}{"title": "Patched Title"})
		RequireNoError(t, err)
		RequireOK(t, result)
		assert.Equal(t, "Patched Title", result.Data.Title)
	})

	t.Run("delete succeeds", func(t *T) {
		result, err := ops.RemovePost(t.Env(), 1)
		RequireNoError(t, err)
		RequireOK(t, result)
	})
}
