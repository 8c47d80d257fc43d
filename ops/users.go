package ops

import (
	"fmt"
	"net/http"

	"github.com/restharness/fixture-api-tests/services"
	"github.com/restharness/fixture-api-tests/validators"
)

// maxFixtureUsers bounds the fixture dataset's user collection.
const maxFixtureUsers = 100

var userRequiredFields = []string{
	"id", "name", "username", "email", "address", "phone", "website", "company",
}

func userShapeChecks(u services.User) []error {
	return []error{
		validators.RequireFields(u, userRequiredFields...),
		validators.ValidEmail(u.Email),
		validators.ValidUsername(u.Username),
		validators.ValidPhone(u.Phone),
		validators.ValidWebsite(u.Website),
		validators.ValidGeo(u.Address.Geo.Lat, u.Address.Geo.Lng),
	}
}

// ListUsers fetches the whole user collection and validates its bounds and
// the shape of every element.
func ListUsers(env *Env) (Result[[]services.User], error) {
	resp, err := env.Users.GetAll()
	if err != nil {
		return Result[[]services.User]{}, err
	}

	checks := []error{
		validators.ExpectStatus(resp, http.StatusOK),
		validators.RequireNonEmptyList(resp.Data, maxFixtureUsers),
	}
	for i, u := range resp.Data {
		if err := validators.RequireFields(u, userRequiredFields...); err != nil {
			checks = append(checks, fmt.Errorf("element %d: %w", i, err))
			break
		}
	}
	return finish(env, "users.list", resp, checks...), nil
}

// FetchUser gets an existing user and validates identity, structure and
// field formats.
func FetchUser(env *Env, id int) (Result[services.User], error) {
	resp, err := env.Users.GetByID(id)
	if err != nil {
		return Result[services.User]{}, err
	}

	checks := []error{validators.ExpectStatus(resp, http.StatusOK)}
	if resp.IsSuccess() {
		if resp.Data.ID != id {
			checks = append(checks, fmt.Errorf("expected user id %d, got %d", id, resp.Data.ID))
		}
		checks = append(checks, userShapeChecks(resp.Data)...)
	}
	return finish(env, "users.fetch", resp, checks...), nil
}

// FetchMissingUser confirms that a non-existent id yields 404: an expected,
// assertable outcome, not an error.
func FetchMissingUser(env *Env, id int) (Result[services.User], error) {
	resp, err := env.Users.GetByID(id)
	if err != nil {
		return Result[services.User]{}, err
	}
	return finish(env, "users.fetchMissing", resp,
		validators.ExpectStatus(resp, http.StatusNotFound)), nil
}

// CreateUser creates a user (generated payload when nil) and validates that
// the service echoed every submitted field and assigned an id.
func CreateUser(env *Env, payload *services.User) (Result[services.User], error) {
	resp, err := env.Users.Create(payload)
	if err != nil {
		return Result[services.User]{}, err
	}

	checks := []error{validators.ExpectStatus(resp, http.StatusCreated)}
	if resp.IsSuccess() {
		if resp.Data.ID <= 0 {
			checks = append(checks, fmt.Errorf("server did not assign an id"))
		}
		if payload != nil {
			submitted := *payload
			submitted.ID = 0
			checks = append(checks, validators.EchoMatches(submitted, resp.Data, "ID"))
		}
	}
	return finish(env, "users.create", resp, checks...), nil
}

// ReplaceUser PUTs a full replacement and validates the echo.
func ReplaceUser(env *Env, id int, payload services.User) (Result[services.User], error) {
	resp, err := env.Users.Update(id, payload)
	if err != nil {
		return Result[services.User]{}, err
	}

	checks := []error{validators.ExpectStatus(resp, http.StatusOK)}
	if resp.IsSuccess() {
		checks = append(checks, validators.EchoMatches(payload, resp.Data, "ID"))
	}
	return finish(env, "users.replace", resp, checks...), nil
}

// PatchUser PATCHes selected fields and validates the response still has the
// full user shape.
func PatchUser(env *Env, id int, fields map[string]interface{}) (Result[services.User], error) {
	resp, err := env.Users.PartialUpdate(id, fields)
	if err != nil {
		return Result[services.User]{}, err
	}

	checks := []error{validators.ExpectStatus(resp, http.StatusOK)}
	if resp.IsSuccess() {
		checks = append(checks, validators.RequireFields(resp.Data, "id"))
	}
	return finish(env, "users.patch", resp, checks...), nil
}

// RemoveUser deletes a user and validates the status.
func RemoveUser(env *Env, id int) (Result[struct{}], error) {
	resp, err := env.Users.Delete(id)
	if err != nil {
		return Result[struct{}]{}, err
	}
	return finish(env, "users.remove", resp,
		validators.ExpectStatus(resp, http.StatusOK)), nil
}
