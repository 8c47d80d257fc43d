package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restharness/fixture-api-tests/apiclient"
	"github.com/restharness/fixture-api-tests/services"
)

func TestExpectStatus(t *testing.T) {
	resp := &apiclient.Response[services.User]{Status: 404}
	assert.NoError(t, ExpectStatus(resp, 404))

	err := ExpectStatus(resp, 200)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected status 200, got 404")
}

func TestExpectSuccess(t *testing.T) {
	assert.NoError(t, ExpectSuccess(&apiclient.Response[int]{Status: 201}))
	assert.Error(t, ExpectSuccess(&apiclient.Response[int]{Status: 500}))
}

func TestRequireFieldsReportsFirstMissingField(t *testing.T) {
	u := services.User{ID: 1, Name: "Leanne Graham"}
	err := RequireFields(u, "id", "name", "username", "email")
	require.Error(t, err)
	assert.EqualError(t, err, `missing required field "username"`)

	full := services.User{
		ID: 1, Name: "n", Username: "u", Email: "e@example.com",
		Address: services.Address{City: "x"}, Phone: "1", Website: "w.org",
		Company: services.Company{Name: "c"},
	}
	assert.NoError(t, RequireFields(full,
		"id", "name", "username", "email", "address", "phone", "website", "company"))
	assert.NoError(t, RequireFields(&full, "id"))

	err = RequireFields(full, "nosuch")
	assert.EqualError(t, err, `missing required field "nosuch"`)
}

func TestRequireNonEmptyList(t *testing.T) {
	assert.Error(t, RequireNonEmptyList([]int{}, 100))
	assert.NoError(t, RequireNonEmptyList([]int{1, 2}, 100))
	assert.Error(t, RequireNonEmptyList(make([]int, 101), 100))
}

func TestFormatValidators(t *testing.T) {
	assert.NoError(t, ValidEmail("testuser@example.com"))
	assert.Error(t, ValidEmail("not-an-email"))
	assert.Error(t, ValidEmail("missing@tld"))

	assert.NoError(t, ValidUsername("Bret"))
	assert.NoError(t, ValidUsername("Antonette_9"))
	assert.Error(t, ValidUsername("ab"))
	assert.Error(t, ValidUsername("has space"))

	assert.NoError(t, ValidPhone("1-770-736-8031 x56442"))
	assert.NoError(t, ValidPhone("(210) 555-0114"))
	assert.Error(t, ValidPhone("n/a"))

	assert.NoError(t, ValidWebsite("hildegard.org"))
	assert.NoError(t, ValidWebsite("https://testuser1.example.org"))
	assert.Error(t, ValidWebsite("not a website"))
	assert.Error(t, ValidWebsite(""))
}

func TestGeoValidator(t *testing.T) {
	assert.NoError(t, ValidGeo("40.7128", "-74.0060"))
	assert.NoError(t, ValidGeo("-90", "180"))

	err := ValidGeo("200", "-74.0060")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude 200 out of range")

	assert.Error(t, ValidGeo("40", "-200"))
	assert.Error(t, ValidGeo("abc", "0"))
	assert.Error(t, ValidGeo("0", "abc"))
}

func TestEchoMatches(t *testing.T) {
	submitted := services.Post{Title: "t", Body: "b", UserID: 1}
	returned := submitted
	returned.ID = 101
	assert.NoError(t, EchoMatches(submitted, returned, "ID"))

	altered := returned
	altered.Title = "changed"
	err := EchoMatches(submitted, altered, "ID")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not echo submitted fields")
	assert.Contains(t, err.Error(), "Title")
}
