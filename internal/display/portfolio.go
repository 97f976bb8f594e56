package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/folio/internal/model"
)

const maxTableTechnologies = 3

// SkillCategory is a named group of skills.
type SkillCategory struct {
	Key   string
	Title string
	Items []string
}

// SkillCategories lists skills in display order.
func SkillCategories(s model.Skills) []SkillCategory {
	return []SkillCategory{
		{Key: "languages", Title: "💻 Programming Languages", Items: s.Languages},
		{Key: "frontend", Title: "🎨 Frontend Technologies", Items: s.Frontend},
		{Key: "backend", Title: "⚙️ Backend Technologies", Items: s.Backend},
		{Key: "databases", Title: "🗄️ Databases", Items: s.Databases},
		{Key: "cloud", Title: "☁️ Cloud & Infrastructure", Items: s.Cloud},
		{Key: "tools", Title: "🛠️ Tools & Others", Items: s.Tools},
	}
}

// FindSkillCategory looks up a category by key, case-insensitively.
func FindSkillCategory(s model.Skills, key string) (SkillCategory, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, c := range SkillCategories(s) {
		if c.Key == key {
			return c, true
		}
	}
	return SkillCategory{}, false
}

// SkillCategoryKeys returns the valid category keys.
func SkillCategoryKeys() []string {
	cats := SkillCategories(model.Skills{})
	keys := make([]string, len(cats))
	for i, c := range cats {
		keys[i] = c.Key
	}
	return keys
}

// StatusIcon maps a work status to an icon.
func StatusIcon(status string) string {
	switch status {
	case model.StatusActive:
		return "🟢"
	case model.StatusDevelopment:
		return "🟡"
	case model.StatusPublished:
		return "🔵"
	case model.StatusOpenSource:
		return "🔓"
	default:
		return "⚪"
	}
}

// Welcome renders the landing box.
func (f *Formatter) Welcome(p model.Portfolio) string {
	lines := []string{
		fmt.Sprintf("Welcome to %s's interactive portfolio!", p.Profile.Name),
		"",
		p.Profile.Description,
		"",
		"Available commands:",
		"• about    - Learn more about me",
		"• works    - View my projects and works",
		"• skills   - View my technical skills",
		"• typing   - Start a typing test",
		"• contact  - Get contact information",
		"• blog     - View blog posts",
	}
	if len(p.Terminal.MOTD) > 0 {
		lines = append(lines, "")
		for _, m := range p.Terminal.MOTD {
			lines = append(lines, f.Dim(m))
		}
	}
	lines = append(lines,
		"",
		"Use --help with any command for more details.",
		`Type "folio interactive" for interactive mode.`,
	)
	return f.Box(strings.Join(lines, "\n"), "👋 Welcome!")
}

// About renders the profile.
func (f *Formatter) About(p model.Portfolio) string {
	profile := p.Profile
	content := strings.Join([]string{
		f.KeyValue("Name", profile.Name),
		f.KeyValue("Title", profile.Title),
		"",
		f.Section("About", profile.Description),
		f.Section("Current Focus", profile.Intro),
		"",
		f.Section("Contact", strings.Join([]string{
			f.KeyValue("Email", profile.Email),
			f.KeyValue("GitHub", profile.Social.GitHub),
			f.KeyValue("Twitter", profile.Social.Twitter),
			f.KeyValue("LinkedIn", profile.Social.LinkedIn),
			f.KeyValue("Calendar", profile.Social.Cal),
		}, "\n")),
	}, "\n")
	return f.Box(content, "👨‍💻 About Me")
}

// WorksTable renders projects as a table.
func (f *Formatter) WorksTable(works []model.Work) string {
	headers := []string{"#", "Project", "Year", "Category", "Status", "Technologies"}
	rows := make([][]string, 0, len(works))
	for i, w := range works {
		tech := w.Technologies
		suffix := ""
		if len(tech) > maxTableTechnologies {
			tech = tech[:maxTableTechnologies]
			suffix = "..."
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			w.Title,
			strconv.Itoa(w.Year),
			w.Category,
			StatusIcon(w.Status) + " " + w.Status,
			strings.Join(tech, ", ") + suffix,
		})
	}
	return f.Table(headers, rows)
}

// WorksList renders projects as a detailed list.
func (f *Formatter) WorksList(works []model.Work) string {
	entries := make([]string, 0, len(works))
	for i, w := range works {
		entries = append(entries, strings.Join([]string{
			fmt.Sprintf("%d. %s (%d)", i+1, f.Bold(w.Title), w.Year),
			"   " + f.Dim("Category:") + " " + w.Category,
			"   " + f.Dim("Status:") + " " + StatusIcon(w.Status) + " " + w.Status,
			"   " + f.Dim("Description:") + " " + w.Description,
			"   " + f.Dim("Tech:") + " " + strings.Join(w.Technologies, ", "),
			"   " + f.Dim("URL:") + " " + f.Highlight(w.URL),
		}, "\n"))
	}
	return f.Box(strings.Join(entries, "\n\n"), "🚀 My Projects & Works")
}

// WorkDetails renders one project.
func (f *Formatter) WorkDetails(w model.Work) string {
	content := strings.Join([]string{
		f.KeyValue("Title", w.Title),
		f.KeyValue("Year", strconv.Itoa(w.Year)),
		f.KeyValue("Category", w.Category),
		f.KeyValue("Status", StatusIcon(w.Status)+" "+w.Status),
		"",
		f.Section("Description", w.Description),
		f.Section("Technologies", f.List(w.Technologies, false)),
		f.KeyValue("URL", f.Highlight(w.URL)),
	}, "\n")
	return f.Box(content, "🚀 "+w.Title)
}

// SkillSection renders one skill category.
func (f *Formatter) SkillSection(c SkillCategory) string {
	return strings.Join([]string{
		f.Bold(c.Title),
		f.List(c.Items, false),
		f.Dim(fmt.Sprintf("Total: %d skills", len(c.Items))),
	}, "\n")
}

// Skills renders every skill category.
func (f *Formatter) Skills(s model.Skills) string {
	cats := SkillCategories(s)
	sections := make([]string, 0, len(cats))
	for _, c := range cats {
		sections = append(sections, f.SkillSection(c))
	}
	return f.Box(strings.Join(sections, "\n\n"), "🔧 Technical Skills")
}

// Contact renders contact details and social links.
func (f *Formatter) Contact(p model.Portfolio) string {
	content := strings.Join([]string{
		f.KeyValue("Email", p.Contact.Email),
		f.KeyValue("Availability", p.Contact.Availability),
		f.KeyValue("Timezone", p.Contact.Timezone),
		f.KeyValue("Preferred Contact", p.Contact.PreferredContact),
		"",
		f.Section("Social Links", strings.Join([]string{
			f.KeyValue("GitHub", p.Profile.Social.GitHub),
			f.KeyValue("Twitter", p.Profile.Social.Twitter),
			f.KeyValue("LinkedIn", p.Profile.Social.LinkedIn),
			f.KeyValue("Calendar", p.Profile.Social.Cal),
		}, "\n")),
	}, "\n")
	return f.Box(content, "📧 Contact Information")
}

// Blog renders the blog listing.
func (f *Formatter) Blog(posts []model.BlogPost) string {
	entries := make([]string, 0, len(posts))
	for i, p := range posts {
		entries = append(entries, fmt.Sprintf("%d. %s\n   %s\n   %s",
			i+1, f.Bold(p.Title), f.Dim(p.Summary), f.Highlight("Published: "+p.PublishedAt)))
	}
	return f.Box(strings.Join(entries, "\n\n"), "📝 Blog Posts")
}

// Article renders a full blog post.
func (f *Formatter) Article(a model.BlogArticle) string {
	return f.Box(strings.TrimSpace(a.Content), "📝 "+a.Title)
}
