package render

import (
	"strings"

	"github.com/Zachkp/ee-portfolio/internal/content"
	"github.com/Zachkp/ee-portfolio/internal/models"
)

const (
	// CardImageSizes is the responsive sizes hint for card cover images.
	CardImageSizes = "(max-width: 640px) 100vw, (max-width: 1024px) 50vw, 33vw"

	// NotesPlaceholder fills the notes cell of a component without notes.
	NotesPlaceholder = "—"
)

// Chrome carries what every page layout needs.
type Chrome struct {
	Meta    models.Metadata
	Brand   string
	Nav     []models.Link
	FontURL string
}

// CardImage is the cover block of a project card.
type CardImage struct {
	Src   string
	Alt   string
	Sizes string
	Badge string
}

// ProjectCard is the view of one project on the home page.
type ProjectCard struct {
	Title       string
	Description string
	Image       *CardImage // nil when the project has no image
	Tags        []string   // nil when the project has no tags
	Links       []models.Link
}

// NewProjectCard shapes a project into its card view.
func NewProjectCard(p models.Project) ProjectCard {
	card := ProjectCard{
		Title:       p.Title,
		Description: p.Description,
		Links:       actionLinks(p),
	}
	if p.HasImage() {
		card.Image = &CardImage{
			Src:   p.Image,
			Alt:   p.AltText(),
			Sizes: CardImageSizes,
			Badge: badge(p),
		}
	}
	if len(p.Tags) > 0 {
		card.Tags = append([]string(nil), p.Tags...)
	}
	return card
}

// ProjectCards shapes projects into cards, preserving order.
func ProjectCards(projects []models.Project) []ProjectCard {
	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, NewProjectCard(p))
	}
	return cards
}

func actionLinks(p models.Project) []models.Link {
	var links []models.Link
	for _, l := range []models.Link{
		{Label: "Code", Href: p.Code},
		{Label: "Docs", Href: p.Docs},
		{Label: "Video", Href: p.Video},
	} {
		if l.Href != "" {
			links = append(links, l)
		}
	}
	return links
}

// badge is the corner label on a card image: the first two tags, or the title.
func badge(p models.Project) string {
	switch n := len(p.Tags); {
	case n == 0:
		return p.Title
	case n == 1:
		return p.Tags[0]
	default:
		return strings.Join(p.Tags[:2], " • ")
	}
}

// ComponentRow is one row of the components table.
type ComponentRow struct {
	Category  string
	Name      string
	Notes     string
	Status    string
	PillClass string
}

// NewComponentRow shapes a component into its table row.
func NewComponentRow(c models.Component) ComponentRow {
	notes := c.Notes
	if notes == "" {
		notes = NotesPlaceholder
	}
	return ComponentRow{
		Category:  c.Category,
		Name:      c.Name,
		Notes:     notes,
		Status:    c.Status.String(),
		PillClass: c.Status.Style().Class(),
	}
}

// ComponentRows shapes components into rows, preserving order.
func ComponentRows(components []models.Component) []ComponentRow {
	rows := make([]ComponentRow, 0, len(components))
	for _, c := range components {
		rows = append(rows, NewComponentRow(c))
	}
	return rows
}

// Section ids of a project detail page, in render order.
const (
	SectionPurpose      = "purpose"
	SectionWhatsNew     = "whats-new"
	SectionComponents   = "components"
	SectionArchitecture = "architecture"
	SectionToolbox      = "toolbox"
	SectionRoadmap      = "roadmap"
	SectionRefs         = "refs"
)

var toc = []models.Link{
	{Label: "Purpose", Href: "#" + SectionPurpose},
	{Label: "What’s New", Href: "#" + SectionWhatsNew},
	{Label: "Components", Href: "#" + SectionComponents},
	{Label: "Architecture", Href: "#" + SectionArchitecture},
	{Label: "Vision Toolbox", Href: "#" + SectionToolbox},
	{Label: "Roadmap", Href: "#" + SectionRoadmap},
	{Label: "References", Href: "#" + SectionRefs},
}

// TOC returns the table-of-contents links of a detail page.
func TOC() []models.Link {
	return append([]models.Link(nil), toc...)
}

// HomeView is the data of the landing page.
type HomeView struct {
	Chrome
	Home  models.Home
	Cards []ProjectCard
}

// NewHomeView builds the landing page from the site content.
func NewHomeView() HomeView {
	return HomeView{
		Chrome: Chrome{
			Meta:    content.Metadata(),
			Brand:   content.Brand,
			Nav:     content.Nav(),
			FontURL: content.FontURL,
		},
		Home:  content.HomePage(),
		Cards: ProjectCards(content.Projects()),
	}
}

// DetailView is the data of a project detail page.
type DetailView struct {
	Chrome
	Page models.ProjectPage
	TOC  []models.Link
	Rows []ComponentRow
}

// NewDetailView builds a detail page view from its content.
func NewDetailView(page models.ProjectPage) DetailView {
	return DetailView{
		Chrome: Chrome{
			Meta:    page.Meta,
			Brand:   content.Brand,
			Nav:     []models.Link{{Label: "All projects", Href: "/#projects"}},
			FontURL: content.FontURL,
		},
		Page: page,
		TOC:  TOC(),
		Rows: ComponentRows(page.Components),
	}
}

// NotFoundView is the data of the 404 page.
type NotFoundView struct {
	Chrome
}

func newNotFoundView() NotFoundView {
	meta := content.Metadata()
	meta.Title = "Not found — " + meta.Title
	return NotFoundView{Chrome: Chrome{
		Meta:    meta,
		Brand:   content.Brand,
		Nav:     []models.Link{{Label: "Home", Href: "/"}},
		FontURL: content.FontURL,
	}}
}
