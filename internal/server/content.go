package server

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/verte-zerg/folio/internal/api"
	"github.com/verte-zerg/folio/internal/model"
)

// Post is a blog post with its body.
type Post struct {
	model.BlogPost
	Content string `json:"content"`
}

// Content is everything the server publishes.
type Content struct {
	Portfolio model.Portfolio `json:"portfolio"`
	Posts     []Post          `json:"posts"`
}

// LoadContent reads content from a JSON file. An empty path serves the
// built-in portfolio with no posts.
func LoadContent(path string) (Content, error) {
	if path == "" {
		return Content{Portfolio: api.FallbackPortfolio()}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("failed to read content: %w", err)
	}
	var content Content
	if err := json.Unmarshal(data, &content); err != nil {
		return Content{}, fmt.Errorf("failed to decode content: %w", err)
	}
	if content.Portfolio.Profile.Name == "" {
		return Content{}, fmt.Errorf("content has no portfolio profile")
	}
	return content, nil
}

func (c Content) listing() []model.BlogPost {
	posts := make([]model.BlogPost, 0, len(c.Posts))
	for _, p := range c.Posts {
		posts = append(posts, p.BlogPost)
	}
	// Newest first; publishedAt is an ISO date.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt > posts[j].PublishedAt
	})
	return posts
}

func (c Content) post(slug string) (Post, bool) {
	for _, p := range c.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}
