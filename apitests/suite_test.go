package apitests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restharness/fixture-api-tests/config"
	"github.com/restharness/fixture-api-tests/framework"
	"github.com/restharness/fixture-api-tests/logging"
	"github.com/restharness/fixture-api-tests/ops"
	"github.com/restharness/fixture-api-tests/services"
)

// mockFixtureAPI is a minimal in-process stand-in for the public fixture API,
// implementing just enough CRUD semantics for the suites to pass.
func mockFixtureAPI() http.Handler {
	user1 := services.User{
		ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "leanne@example.com",
		Address: services.Address{
			Street: "Kulas Light", Suite: "Apt. 556", City: "Gwenborough", Zipcode: "92998-3874",
			Geo: services.Geo{Lat: "-37.3159", Lng: "81.1496"},
		},
		Phone: "1-770-736-8031 x56442", Website: "hildegard.org",
		Company: services.Company{Name: "Romaguera-Crona", CatchPhrase: "a", BS: "b"},
	}
	post1 := services.Post{ID: 1, Title: "first post", Body: "body", UserID: 1}
	comments := []services.Comment{
		{ID: 1, Name: "c1", Email: "one@example.com", Body: "b", PostID: 1},
		{ID: 2, Name: "c2", Email: "two@example.com", Body: "b", PostID: 1},
	}

	var nextID atomic.Int64
	nextID.Store(100)
	writeJSON := func(w http.ResponseWriter, status int, body interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
	created := func(w http.ResponseWriter, r *http.Request) {
		into := map[string]interface{}{}
		_ = json.NewDecoder(r.Body).Decode(&into)
		into["id"] = nextID.Add(1)
		writeJSON(w, 201, into)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			created(w, r)
		default:
			writeJSON(w, 200, []services.User{user1})
		}
	})
	mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/users/"))
		if id != 1 {
			writeJSON(w, 404, map[string]string{})
			return
		}
		switch r.Method {
		case http.MethodPut:
			var u services.User
			_ = json.NewDecoder(r.Body).Decode(&u)
			u.ID = 1
			writeJSON(w, 200, u)
		case http.MethodPatch:
			patched := user1
			var fields map[string]string
			_ = json.NewDecoder(r.Body).Decode(&fields)
			if name, ok := fields["name"]; ok {
				patched.Name = name
			}
			writeJSON(w, 200, patched)
		case http.MethodDelete:
			writeJSON(w, 200, map[string]string{})
		default:
			writeJSON(w, 200, user1)
		}
	})
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			created(w, r)
		default:
			if q := r.URL.Query().Get("userId"); q != "" && q != "1" {
				writeJSON(w, 200, []services.Post{})
				return
			}
			writeJSON(w, 200, []services.Post{post1})
		}
	})
	mux.HandleFunc("/posts/", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/posts/"))
		if id != 1 {
			writeJSON(w, 404, map[string]string{})
			return
		}
		switch r.Method {
		case http.MethodPut:
			var p services.Post
			_ = json.NewDecoder(r.Body).Decode(&p)
			p.ID = 1
			writeJSON(w, 200, p)
		case http.MethodPatch:
			patched := post1
			var fields map[string]string
			_ = json.NewDecoder(r.Body).Decode(&fields)
			if title, ok := fields["title"]; ok {
				patched.Title = title
			}
			writeJSON(w, 200, patched)
		case http.MethodDelete:
			writeJSON(w, 200, map[string]string{})
		default:
			writeJSON(w, 200, post1)
		}
	})
	mux.HandleFunc("/comments", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			created(w, r)
		default:
			writeJSON(w, 200, comments)
		}
	})
	return mux
}

func TestSuitePassesAgainstMockFixtureAPI(t *testing.T) {
	server := httptest.NewServer(mockFixtureAPI())
	defer server.Close()

	cfg := config.Config{
		BaseURL:          server.URL,
		EnvironmentName:  "test",
		TimeoutMs:        2000,
		BatchSize:        5,
		RateLimitDelayMs: 0,
	}
	require.NoError(t, cfg.Validate())

	env := ops.NewEnv(cfg, logging.NewLogger(io.Discard, logging.Error))
	results := RunTestSuite(env, nil, nil)

	for _, f := range results.Failures {
		for _, e := range f.Errors {
			t.Errorf("[%s] %s", f.TestID, e)
		}
	}
	assert.True(t, results.OK())
	assert.NotEmpty(t, results.Tests)
}

func TestSuiteHonorsFilters(t *testing.T) {
	server := httptest.NewServer(mockFixtureAPI())
	defer server.Close()

	cfg := config.Config{BaseURL: server.URL, TimeoutMs: 2000, BatchSize: 5}
	env := ops.NewEnv(cfg, logging.NewLogger(io.Discard, logging.Error))

	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^users"))

	results := RunTestSuite(env, filters.AsFilter, nil)
	for _, r := range results.Tests {
		if r.Skipped || len(r.TestID.Path) == 0 {
			continue
		}
		assert.True(t, strings.HasPrefix(r.TestID.String(), "users"),
			"unexpected test ran: %s", r.TestID)
	}
}
