// Package model defines shared data structures.
package model

// Portfolio is the full profile document served by the portfolio endpoint.
type Portfolio struct {
	Profile  Profile        `json:"profile"`
	Home     Home           `json:"home"`
	Works    []Work         `json:"works"`
	Skills   Skills         `json:"skills"`
	Contact  Contact        `json:"contact"`
	Terminal TerminalConfig `json:"terminal"`
}

// Profile describes the portfolio owner.
type Profile struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Intro       string `json:"intro"`
	Email       string `json:"email"`
	Social      Social `json:"social"`
}

// Social holds profile links.
type Social struct {
	Twitter   string `json:"twitter"`
	GitHub    string `json:"github"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
	Cal       string `json:"cal"`
}

// Home describes the landing page layout.
type Home struct {
	Intro                 string        `json:"intro"`
	FeaturedProjectsCount int           `json:"featuredProjectsCount"`
	Sections              []HomeSection `json:"sections"`
}

// HomeSection is one block on the landing page.
type HomeSection struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	ShowAll bool   `json:"showAll"`
}

// Work is a project entry.
type Work struct {
	Title        string   `json:"title"`
	Year         int      `json:"year"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	Category     string   `json:"category"`
	Status       string   `json:"status"`
	Technologies []string `json:"technologies"`
}

// Work statuses.
const (
	StatusActive      = "active"
	StatusDevelopment = "development"
	StatusPublished   = "published"
	StatusOpenSource  = "open-source"
)

// Skills groups technologies by category.
type Skills struct {
	Languages []string `json:"languages"`
	Frontend  []string `json:"frontend"`
	Backend   []string `json:"backend"`
	Databases []string `json:"databases"`
	Cloud     []string `json:"cloud"`
	Tools     []string `json:"tools"`
}

// Contact holds contact preferences.
type Contact struct {
	Email            string `json:"email"`
	Availability     string `json:"availability"`
	Timezone         string `json:"timezone"`
	PreferredContact string `json:"preferredContact"`
}

// TerminalConfig carries CLI presentation hints.
type TerminalConfig struct {
	MOTD     []string                   `json:"motd"`
	Commands map[string]TerminalCommand `json:"commands"`
}

// TerminalCommand documents a command on the remote side.
type TerminalCommand struct {
	Description string   `json:"description"`
	Aliases     []string `json:"aliases"`
}

// BlogPost is a blog listing entry.
type BlogPost struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	PublishedAt string `json:"publishedAt"`
}

// BlogArticle is a full blog post.
type BlogArticle struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
