package apitests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restharness/fixture-api-tests/ops"
	"github.com/restharness/fixture-api-tests/services"
)

func DoUserTests(t *T) {
	t.Run("get all returns the full collection", func(t *T) {
		result, err := ops.ListUsers(t.Env())
		RequireNoError(t, err)
		RequireOK(t, result)
		t.Debug("fixture dataset has %d users", len(result.Data))
	})

	t.Run("get by id returns the matching user", func(t *T) {
		result, err := ops.FetchUser(t.Env(), 1)
		RequireNoError(t, err)
		RequireOK(t, result)
		assert.Equal(t, 1, result.Data.ID)
		assert.NotEmpty(t, result.Data.Name)
	})

	t.Run("get by unknown id returns 404", func(t *T) {
		result, err := ops.FetchMissingUser(t.Env(), 9999)
		RequireNoError(t, err)
		RequireOK(t, result)
	})

	t.Run("create echoes every submitted field", func(t *T) {
		payload := services.User{
			Name:     "Test User",
			Username: "testuser",
			Email:    "testuser@example.com",
			Address: services.Address{
				Street: "123 Main St", Suite: "Apt 4", City: "Anytown", Zipcode: "12345",
				Geo: services.Geo{Lat: "40.7128", Lng: "-74.0060"},
			},
			Phone:   "1-555-010-0100",
			Website: "https://testuser.example.org",
			Company: services.Company{Name: "Test Co", CatchPhrase: "testing", BS: "tests"},
		}
		result, err := ops.CreateUser(t.Env(), &payload)
		RequireNoError(t, err)
		RequireOK(t, result)
		assert.Equal(t, "Test User", result.Data.Name)
		assert.Equal(t, "testuser", result.Data.Username)
		assert.Equal(t, "testuser@example.com", result.Data.Email)
		assert.Greater(t, result.Data.ID, 0, "server must assign an id")
	})

	t.Run("create with generated payload", func(t *T) {
		result, err := ops.CreateUser(t.Env(), nil)
		RequireNoError(t, err)
		RequireOK(t, result)
	})

	t.Run("replace preserves submitted fields", func(t *T) {
		payload := services.User{
			Name:     "Replaced User",
			Username: "replaceduser",
			Email:    "replaced@example.com",
			Address: services.Address{
				Street: "1 Replacement Way", Suite: "Suite 1", City: "Newtown", Zipcode: "54321",
				Geo: services.Geo{Lat: "-37.3159", Lng: "81.1496"},
			},
			Phone:   "1-555-010-0200",
			Website: "https://replaced.example.org",
			Company: services.Company{Name: "Replace Co", CatchPhrase: "c", BS: "b"},
		}
		result, err := ops.ReplaceUser(t.Env(), 1, payload)
		RequireNoError(t, err)
		RequireOK(t, result)
	})

	t.Run("partial update changes only the named field", func(t *T) {
		result, err := ops.PatchUser(t.Env(), 1, map[string]interface{}{"name": "Patched Name"})
		RequireNoError(t, err)
		RequireOK(t, result)
		assert.Equal(t, "Patched Name", result.Data.Name)
	})

	t.Run("update with non-positive id fails locally", func(t *T) {
		_, err := ops.ReplaceUser(t.Env(), 0, services.User{Name: "x"})
		require.Error(t, err)
		var vErr *services.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("delete succeeds", func(t *T) {
		result, err := ops.RemoveUser(t.Env(), 1)
		RequireNoError(t, err)
		RequireOK(t, result)
	})
}
