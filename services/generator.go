package services

import (
	"fmt"
	"sync/atomic"
)

// Generator produces deterministic resource payloads for tests that create
// resources without caring about the exact field values. The nth payload of a
// given kind is always identical across runs, so failures reproduce.
type Generator struct {
	seq atomic.Int64
}

func NewGenerator() *Generator { return &Generator{} }

func (g *Generator) next() int64 {
	return g.seq.Add(1)
}

func (g *Generator) NextUser() User {
	n := g.next()
	return User{
		Name:     fmt.Sprintf("Test User %d", n),
		Username: fmt.Sprintf("testuser%d", n),
		Email:    fmt.Sprintf("testuser%d@example.com", n),
		Address: Address{
			Street:  fmt.Sprintf("%d Fixture Street", n),
			Suite:   fmt.Sprintf("Suite %d", n),
			City:    "Testville",
			Zipcode: "10001-0001",
			Geo:     Geo{Lat: "40.7128", Lng: "-74.0060"},
		},
		Phone:   fmt.Sprintf("1-555-010-%04d", n%10000),
		Website: fmt.Sprintf("https://testuser%d.example.org", n),
		Company: Company{
			Name:        fmt.Sprintf("Test Company %d", n),
			CatchPhrase: "End-to-end fixture coverage",
			BS:          "synergize scalable test data",
		},
	}
}

func (g *Generator) NextPost(userID int) Post {
	n := g.next()
	return Post{
		Title:  fmt.Sprintf("Test Post %d", n),
		Body:   fmt.Sprintf("Body of generated test post %d.", n),
		UserID: userID,
	}
}

func (g *Generator) NextComment(postID int) Comment {
	n := g.next()
	return Comment{
		Name:   fmt.Sprintf("Test Comment %d", n),
		Email:  fmt.Sprintf("commenter%d@example.com", n),
		Body:   fmt.Sprintf("Body of generated test comment %d.", n),
		PostID: postID,
	}
}
