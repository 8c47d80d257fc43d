package services

import (
	"github.com/restharness/fixture-api-tests/apiclient"
	"github.com/restharness/fixture-api-tests/config"
	"github.com/restharness/fixture-api-tests/logging"
)

// Users is the typed service for the /users resource.
type Users struct {
	collection[User]
	gen *Generator
}

func NewUsers(client *apiclient.Client, cfg config.Config, logger *logging.Logger) *Users {
	return &Users{
		collection: newCollection[User](client, cfg, "/users", "users", logger),
		gen:        NewGenerator(),
	}
}

func (s *Users) GetAll() (*apiclient.Response[[]User], error) {
	return s.getAll()
}

func (s *Users) GetByID(id int) (*apiclient.Response[User], error) {
	return s.getByID(id)
}

// Create posts a new user. If payload is nil, a generated one is used. Any id
// in the payload is ignored; the server assigns it.
func (s *Users) Create(payload *User) (*apiclient.Response[User], error) {
	p := s.gen.NextUser()
	if payload != nil {
		p = *payload
	}
	p.ID = 0
	return s.create(p)
}

func (s *Users) Update(id int, payload User) (*apiclient.Response[User], error) {
	return s.update(id, payload)
}

func (s *Users) PartialUpdate(id int, fields map[string]interface{}) (*apiclient.Response[User], error) {
	return s.partialUpdate(id, fields)
}

func (s *Users) Delete(id int) (*apiclient.Response[struct{}], error) {
	return s.delete(id)
}
