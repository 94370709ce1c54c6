package models

// Project represents a portfolio project card on the home page.
// Empty strings mean the optional field is absent.
type Project struct {
	Title       string
	Description string
	Code        string // source repository
	Docs        string // docs page, PDF or internal detail page
	Video       string // demo video
	Tags        []string
	Image       string
	ImageAlt    string // only meaningful when Image is set
}

// HasImage reports whether the project carries a cover image.
func (p Project) HasImage() bool {
	return p.Image != ""
}

// AltText returns the accessible text for the cover image, falling back to the title.
func (p Project) AltText() string {
	if p.ImageAlt != "" {
		return p.ImageAlt
	}
	return p.Title
}
