package services

import (
	"github.com/restharness/fixture-api-tests/apiclient"
	"github.com/restharness/fixture-api-tests/config"
	"github.com/restharness/fixture-api-tests/logging"
)

// Posts is the typed service for the /posts resource.
type Posts struct {
	collection[Post]
	gen *Generator
}

func NewPosts(client *apiclient.Client, cfg config.Config, logger *logging.Logger) *Posts {
	return &Posts{
		collection: newCollection[Post](client, cfg, "/posts", "posts", logger),
		gen:        NewGenerator(),
	}
}

func (s *Posts) GetAll() (*apiclient.Response[[]Post], error) {
	return s.getAll()
}

func (s *Posts) GetByID(id int) (*apiclient.Response[Post], error) {
	return s.getByID(id)
}

// GetByUser returns the posts belonging to a user, filtered via the userId
// query parameter.
func (s *Posts) GetByUser(userID int) (*apiclient.Response[[]Post], error) {
	return s.getFiltered("userId", userID)
}

// Create posts a new post. If payload is nil, a generated one (attributed to
// user 1) is used.
func (s *Posts) Create(payload *Post) (*apiclient.Response[Post], error) {
	p := s.gen.NextPost(1)
	if payload != nil {
		p = *payload
	}
	p.ID = 0
	return s.create(p)
}

func (s *Posts) Update(id int, payload Post) (*apiclient.Response[Post], error) {
	return s.update(id, payload)
}

func (s *Posts) PartialUpdate(id int, fields map[string]interface{}) (*apiclient.Response[Post], error) {
	return s.partialUpdate(id, fields)
}

func (s *Posts) Delete(id int) (*apiclient.Response[struct{}], error) {
	return s.delete(id)
}
