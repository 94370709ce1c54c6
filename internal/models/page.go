package models

// Metadata is the document title/description pair emitted into the page head.
type Metadata struct {
	Title       string
	Description string
}

// Link is a labelled navigation target. Href is emitted verbatim.
type Link struct {
	Label string
	Href  string
}

// Bullet is a list item with an emphasised lead-in, e.g. "Factory: Canny → ...".
type Bullet struct {
	Lead string
	Text string
}

// Emphasis is a sentence with one phrase set in bold.
type Emphasis struct {
	Before string
	Strong string
	After  string
}

// Block is a titled blurb, used for the toolbox tiles.
type Block struct {
	Title string
	Text  string
}

// Hero is the cover section of a project page.
type Hero struct {
	Cover    string
	CoverAlt string
	Title    string
	Subtitle string
	Summary  string
	Chips    []string
}

// ProjectPage is the full content of a project detail page. Sections are rendered in a
// fixed order; only the components table is driven by a record sequence.
type ProjectPage struct {
	Path           string
	Meta           Metadata
	Hero           Hero
	Purpose        Emphasis
	WhatsNew       []Bullet
	Components     []Component
	ComponentsNote string
	Architecture   []string
	Toolbox        []Block
	UseCases       []Bullet
	Roadmap        []string
	References     []Link
}

// Home holds the copy around the project grid on the landing page.
type Home struct {
	Headline       string
	Intro          string
	PrimaryCTA     Link
	SecondaryCTA   Link
	ProjectsHeader string
	About          string
	Skills         []string
	Contact        string
	ContactCTA     Link
}
