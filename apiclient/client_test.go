package apiclient

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restharness/fixture-api-tests/config"
)

type widget struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func testConfig(baseURL string) config.Config {
	return config.Config{
		BaseURL:   baseURL,
		TimeoutMs: 2000,
		Headers:   map[string]string{"X-Api-Key": "default-key"},
	}
}

func TestGetDecodesEnvelope(t *testing.T) {
	handler := httphelpers.HandlerWithJSONResponse(widget{ID: 3, Name: "gadget"}, nil)
	server := httptest.NewServer(handler)
	defer server.Close()

	c := New(testConfig(server.URL), nil)
	resp, err := Get[widget](c, "/widgets/3", nil)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, widget{ID: 3, Name: "gadget"}, resp.Data)
	assert.True(t, resp.IsSuccess())
	assert.GreaterOrEqual(t, resp.Duration, time.Duration(0))
	assert.NotEmpty(t, resp.Headers.Get("Content-Type"))
}

func TestNon2xxStatusIsDataNotError(t *testing.T) {
	notFound := httptest.NewServer(httphelpers.HandlerWithStatus(404))
	defer notFound.Close()

	c := New(testConfig(notFound.URL), nil)
	resp, err := Get[widget](c, "/widgets/9999", nil)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.Status)
	assert.False(t, resp.IsSuccess())
	assert.Zero(t, resp.Data)
}

func TestHeaderMergePerCallWins(t *testing.T) {
	rh, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	server := httptest.NewServer(rh)
	defer server.Close()

	c := New(testConfig(server.URL), nil)
	_, err := Get[struct{}](c, "/widgets", &RequestOpts{
		Headers: map[string]string{"X-Api-Key": "override-key", "X-Extra": "1"},
	})
	require.NoError(t, err)

	req := <-requests
	assert.Equal(t, "override-key", req.Request.Header.Get("X-Api-Key"))
	assert.Equal(t, "1", req.Request.Header.Get("X-Extra"))
	assert.Equal(t, "application/json", req.Request.Header.Get("Content-Type"))
	assert.NotEmpty(t, req.Request.Header.Get("X-Correlation-Id"))
}

func TestQueryParametersAreEncoded(t *testing.T) {
	rh, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	server := httptest.NewServer(rh)
	defer server.Close()

	c := New(testConfig(server.URL), nil)
	_, err := Get[struct{}](c, "/comments", &RequestOpts{
		Query: map[string]string{"postId": "1", "q": "a b"},
	})
	require.NoError(t, err)

	req := <-requests
	assert.Equal(t, "1", req.Request.URL.Query().Get("postId"))
	assert.Equal(t, "a b", req.Request.URL.Query().Get("q"))
}

func TestPostSendsJSONBody(t *testing.T) {
	rh, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithJSONResponse(widget{ID: 101, Name: "new"}, nil))
	server := httptest.NewServer(rh)
	defer server.Close()

	c := New(testConfig(server.URL), nil)
	resp, err := Post[widget](c, "/widgets", widget{Name: "new"})
	require.NoError(t, err)
	assert.Equal(t, 101, resp.Data.ID)

	req := <-requests
	assert.Equal(t, "POST", req.Request.Method)
	assert.JSONEq(t, `{"id":0,"name":"new"}`, string(req.Body))
}

func TestDeleteReturnsEmptyEnvelope(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithJSONResponse(map[string]string{}, nil))
	defer server.Close()

	c := New(testConfig(server.URL), nil)
	resp, err := Delete(c, "/widgets/1")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
}

func TestConnectionFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	server.Close() // nothing listening any more

	c := New(testConfig(server.URL), nil)
	_, err := Get[widget](c, "/widgets", nil)
	require.Error(t, err)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr), "expected NetworkError, got %T", err)
}

func TestSlowResponseIsTimeoutError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.TimeoutMs = 50
	c := New(cfg, nil)

	_, err := Get[widget](c, "/widgets", nil)
	require.Error(t, err)

	var timeoutErr *TimeoutError
	assert.True(t, errors.As(err, &timeoutErr), "expected TimeoutError, got %T (%v)", err, err)
	assert.Equal(t, 50*time.Millisecond, timeoutErr.Timeout)
}

func TestMalformedSuccessBodyIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("{not json"))
	}))
	defer server.Close()

	c := New(testConfig(server.URL), nil)
	_, err := Get[widget](c, "/widgets/1", nil)
	assert.Error(t, err)
}

func TestBaseURLJoining(t *testing.T) {
	rh, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	server := httptest.NewServer(rh)
	defer server.Close()

	cfg := testConfig(server.URL + "/") // trailing slash must not double up
	c := New(cfg, nil)
	_, err := Get[struct{}](c, "widgets/7", nil)
	require.NoError(t, err)

	req := <-requests
	assert.Equal(t, "/widgets/7", req.Request.URL.Path)
}
