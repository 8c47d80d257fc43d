package services

import (
	"github.com/restharness/fixture-api-tests/apiclient"
	"github.com/restharness/fixture-api-tests/config"
	"github.com/restharness/fixture-api-tests/logging"
)

// Comments is the typed service for the /comments resource.
type Comments struct {
	collection[Comment]
	gen *Generator
}

func NewComments(client *apiclient.Client, cfg config.Config, logger *logging.Logger) *Comments {
	return &Comments{
		collection: newCollection[Comment](client, cfg, "/comments", "comments", logger),
		gen:        NewGenerator(),
	}
}

func (s *Comments) GetAll() (*apiclient.Response[[]Comment], error) {
	return s.getAll()
}

func (s *Comments) GetByID(id int) (*apiclient.Response[Comment], error) {
	return s.getByID(id)
}

// GetByPost returns the comments attached to a post, filtered via the postId
// query parameter.
func (s *Comments) GetByPost(postID int) (*apiclient.Response[[]Comment], error) {
	return s.getFiltered("postId", postID)
}

// Create posts a new comment. If payload is nil, a generated one (attached to
// post 1) is used.
func (s *Comments) Create(payload *Comment) (*apiclient.Response[Comment], error) {
	p := s.gen.NextComment(1)
	if payload != nil {
		p = *payload
	}
	p.ID = 0
	return s.create(p)
}

func (s *Comments) Update(id int, payload Comment) (*apiclient.Response[Comment], error) {
	return s.update(id, payload)
}

func (s *Comments) PartialUpdate(id int, fields map[string]interface{}) (*apiclient.Response[Comment], error) {
	return s.partialUpdate(id, fields)
}

func (s *Comments) Delete(id int) (*apiclient.Response[struct{}], error) {
	return s.delete(id)
}
