// Package content holds the literal data the site is rendered from. Editing a page
// means editing these definitions.
package content

import "github.com/Zachkp/ee-portfolio/internal/models"

const (
	Brand      = "YourName"
	DetailPath = "/projects/high-speed-imaging-fpga"
	FontURL    = "https://fonts.googleapis.com/css2?family=Roboto+Mono:wght@400;500;700&display=swap"
)

const (
	headline = `Electrical Engineer • Embedded • Power • RF`

	intro = `I build industry-grade systems: power converters, UWB, SDR, robotics, FPGA, and test automation.`

	aboutMe = `I’m an Electrical Engineer focused on embedded systems, power electronics, RF/communications,
	robotics/AI, and FPGA. I build end-to-end systems and document performance with repeatable tests.`

	contactText = `The fastest way to reach me is email. I’ll add a proper contact form later.`
)

var siteMeta = models.Metadata{
	Title:       "Your Name — EE Portfolio",
	Description: "Projects in embedded, power, RF, robotics, FPGA.",
}

var nav = []models.Link{
	{Label: "Projects", Href: "#projects"},
	{Label: "About", Href: "#about"},
	{Label: "Contact", Href: "#contact"},
	{Label: "HS Imaging (FPGA)", Href: DetailPath},
}

var skills = []string{
	"Embedded & RTOS",
	"Power & Control (C2000)",
	"RF / SDR / UWB",
	"FPGA (AXI/MIG)",
	"Robotics (ROS 2)",
	"Test Automation (SCPI/PyVISA)",
}

// Metadata returns the site-wide document title and description.
func Metadata() models.Metadata {
	return siteMeta
}

// Nav returns the header links.
func Nav() []models.Link {
	return clone(nav)
}

// HomePage returns the copy surrounding the project grid.
func HomePage() models.Home {
	return models.Home{
		Headline:       headline,
		Intro:          intro,
		PrimaryCTA:     models.Link{Label: "See Projects", Href: "#projects"},
		SecondaryCTA:   models.Link{Label: "Download CV", Href: "/resume.pdf"},
		ProjectsHeader: "Featured Projects",
		About:          aboutMe,
		Skills:         clone(skills),
		Contact:        contactText,
		ContactCTA:     models.Link{Label: "Email me", Href: "mailto:your.name@email.com"},
	}
}

func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
