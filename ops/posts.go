package ops

import (
	"fmt"
	"net/http"

	"github.com/restharness/fixture-api-tests/services"
	"github.com/restharness/fixture-api-tests/validators"
)

const maxFixturePosts = 100

// ListPosts fetches the whole post collection.
func ListPosts(env *Env) (Result[[]services.Post], error) {
	resp, err := env.Posts.GetAll()
	if err != nil {
		return Result[[]services.Post]{}, err
	}
	return finish(env, "posts.list", resp,
		validators.ExpectStatus(resp, http.StatusOK),
		validators.RequireNonEmptyList(resp.Data, maxFixturePosts)), nil
}

// FetchPost gets an existing post and validates identity and structure.
func FetchPost(env *Env, id int) (Result[services.Post], error) {
	resp, err := env.Posts.GetByID(id)
	if err != nil {
		return Result[services.Post]{}, err
	}

	checks := []error{validators.ExpectStatus(resp, http.StatusOK)}
	if resp.IsSuccess() {
		if resp.Data.ID != id {
			checks = append(checks, fmt.Errorf("expected post id %d, got %d", id, resp.Data.ID))
		}
		checks = append(checks, validators.RequireFields(resp.Data, "id", "title", "body", "userId"))
	}
	return finish(env, "posts.fetch", resp, checks...), nil
}

// FetchMissingPost confirms a 404 for a non-existent post id.
func FetchMissingPost(env *Env, id int) (Result[services.Post], error) {
	resp, err := env.Posts.GetByID(id)
	if err != nil {
		return Result[services.Post]{}, err
	}
	return finish(env, "posts.fetchMissing", resp,
		validators.ExpectStatus(resp, http.StatusNotFound)), nil
}

// ListPostsByUser filters posts by owner and validates every element belongs
// to that user.
func ListPostsByUser(env *Env, userID int) (Result[[]services.Post], error) {
	resp, err := env.Posts.GetByUser(userID)
	if err != nil {
		return Result[[]services.Post]{}, err
	}

	checks := []error{validators.ExpectStatus(resp, http.StatusOK)}
	for i, p := range resp.Data {
		if p.UserID != userID {
			checks = append(checks, fmt.Errorf("element %d has userId %d, want %d", i, p.UserID, userID))
			break
		}
	}
	return finish(env, "posts.listByUser", resp, checks...), nil
}

// CreatePost creates a post and validates status, id assignment and echo.
func CreatePost(env *Env, payload *services.Post) (Result[services.Post], error) {
	resp, err := env.Posts.Create(payload)
	if err != nil {
		return Result[services.Post]{}, err
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
	return finish(env, "posts.create", resp, checks...), nil
}

// ReplacePost PUTs a full replacement and validates the echo.
func ReplacePost(env *Env, id int, payload services.Post) (Result[services.Post], error) {
	resp, err := env.Posts.Update(id, payload)
	if err != nil {
		return Result[services.Post]{}, err
	}

	checks := []error{validators.ExpectStatus(resp, http.StatusOK)}
	if resp.IsSuccess() {
		checks = append(checks, validators.EchoMatches(payload, resp.Data, "ID"))
	}
	return finish(env, "posts.replace", resp, checks...), nil
}

// PatchPost PATCHes selected fields and validates they took effect.
func PatchPost(env *Env, id int, fields map[string]interface{}) (Result[services.Post], error) {
	resp, err := env.Posts.PartialUpdate(id, fields)
	if err != nil {
		return Result[services.Post]{}, err
	}

	checks := []error{validators.ExpectStatus(resp, http.StatusOK)}
	if resp.IsSuccess() {
		if want, ok := fields["title"].(string); ok && resp.Data.Title != want {
			checks = append(checks, fmt.Errorf("patched title %q not reflected, got %q", want, resp.Data.Title))
		}
	}
	return finish(env, "posts.patch", resp, checks...), nil
}

// RemovePost deletes a post and validates the status.
func RemovePost(env *Env, id int) (Result[struct{}], error) {
	resp, err := env.Posts.Delete(id)
	if err != nil {
		return Result[struct{}]{}, err
	}
	return finish(env, "posts.remove", resp,
		validators.ExpectStatus(resp, http.StatusOK)), nil
}
