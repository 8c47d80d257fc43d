// Package services exposes typed CRUD operations for each fixture API
// resource (users, posts, comments). Every method is a pass-through: it
// validates local preconditions, makes the request, logs structured context,
// and returns the response envelope untransformed.
package services

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/restharness/fixture-api-tests/apiclient"
	"github.com/restharness/fixture-api-tests/config"
	"github.com/restharness/fixture-api-tests/logging"
)

// ValidationError is a local precondition failure, raised before any network
// call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// collection implements the CRUD operations shared by every resource type.
// The exported services embed it and add their relation filters.
type collection[R any] struct {
	client  *apiclient.Client
	path    string
	log     *logging.Logger
	retries int
}

func newCollection[R any](client *apiclient.Client, cfg config.Config, path, name string, logger *logging.Logger) collection[R] {
	if logger == nil {
		logger = logging.NewLogger(io.Discard, logging.Error)
	}
	return collection[R]{
		client:  client,
		path:    path,
		log:     logger.ForComponent(name),
		retries: cfg.MaxRetryAttempts,
	}
}

func (c *collection[R]) getAll() (*apiclient.Response[[]R], error) {
	defer c.log.StartTimer("getAll")()
	return retryGet(c, func() (*apiclient.Response[[]R], error) {
		return apiclient.Get[[]R](c.client, c.path, nil)
	})
}

func (c *collection[R]) getByID(id int) (*apiclient.Response[R], error) {
	c.log.Debugf("getById id=%d", id)
	defer c.log.StartTimer("getById")()
	return retryGet(c, func() (*apiclient.Response[R], error) {
		return apiclient.Get[R](c.client, c.itemPath(id), nil)
	})
}

// getFiltered fetches the collection filtered by a relation field passed as a
// query parameter, matching the fixture API's filtering convention.
func (c *collection[R]) getFiltered(field string, value int) (*apiclient.Response[[]R], error) {
	c.log.Debugf("getFiltered %s=%d", field, value)
	defer c.log.StartTimer("getFiltered")()
	opts := &apiclient.RequestOpts{Query: map[string]string{field: strconv.Itoa(value)}}
	return retryGet(c, func() (*apiclient.Response[[]R], error) {
		return apiclient.Get[[]R](c.client, c.path, opts)
	})
}

func (c *collection[R]) create(payload R) (*apiclient.Response[R], error) {
	c.log.Debugf("create")
	defer c.log.StartTimer("create")()
	return apiclient.Post[R](c.client, c.path, payload)
}

func (c *collection[R]) update(id int, payload R) (*apiclient.Response[R], error) {
	if err := requirePositiveID(id); err != nil {
		return nil, err
	}
	c.log.Debugf("update id=%d", id)
	defer c.log.StartTimer("update")()
	return apiclient.Put[R](c.client, c.itemPath(id), payload)
}

// partialUpdate PATCHes only the given fields; the server merges them into
// the existing resource.
func (c *collection[R]) partialUpdate(id int, fields map[string]interface{}) (*apiclient.Response[R], error) {
	if err := requirePositiveID(id); err != nil {
		return nil, err
	}
	c.log.Debugf("partialUpdate id=%d fields=%d", id, len(fields))
	defer c.log.StartTimer("partialUpdate")()
	return apiclient.Patch[R](c.client, c.itemPath(id), fields)
}

func (c *collection[R]) delete(id int) (*apiclient.Response[struct{}], error) {
	if err := requirePositiveID(id); err != nil {
		return nil, err
	}
	c.log.Debugf("delete id=%d", id)
	defer c.log.StartTimer("delete")()
	return apiclient.Delete(c.client, c.itemPath(id))
}

func (c *collection[R]) itemPath(id int) string {
	return fmt.Sprintf("%s/%d", c.path, id)
}

func requirePositiveID(id int) error {
	if id <= 0 {
		return &ValidationError{Field: "id", Message: fmt.Sprintf("must be a positive integer, got %d", id)}
	}
	return nil
}

// retryGet re-issues an idempotent request on transport failure, up to the
// configured extra attempts. With the default of zero extra attempts it is a
// plain pass-through.
func retryGet[T any, R any](c *collection[R], call func() (*apiclient.Response[T], error)) (*apiclient.Response[T], error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		resp, err := call()
		if err == nil {
			return resp, nil
		}
		lastErr = err
		var netErr *apiclient.NetworkError
		if !errors.As(err, &netErr) {
			return nil, err
		}
		if attempt < c.retries {
			c.log.Warnf("transport error, retrying (%d/%d): %s", attempt+1, c.retries, err)
		}
	}
	return nil, lastErr
}
