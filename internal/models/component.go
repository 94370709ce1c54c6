package models

// Status is the procurement state of a hardware component.
type Status uint8

const (
	StatusToBuy Status = iota
	StatusOrdered
	StatusReceived
	StatusTested

	statusCount
)

// Style is the visual category a status pill is drawn with.
type Style string

const (
	StyleNeutral Style = "neutral"
	StyleWarning Style = "warning"
	StyleInfo    Style = "info"
	StyleSuccess Style = "success"
)

var statusLabels = [statusCount]string{
	StatusToBuy:    "to buy",
	StatusOrdered:  "ordered",
	StatusReceived: "received",
	StatusTested:   "tested",
}

var statusStyles = [statusCount]Style{
	StatusToBuy:    StyleNeutral,
	StatusOrdered:  StyleWarning,
	StatusReceived: StyleInfo,
	StatusTested:   StyleSuccess,
}

// Statuses returns every status in declaration order.
func Statuses() []Status {
	out := make([]Status, 0, statusCount)
	for s := Status(0); s < statusCount; s++ {
		out = append(out, s)
	}
	return out
}

// String returns the display label, e.g. "to buy".
func (s Status) String() string {
	return statusLabels[s]
}

// Style maps the status to its pill style. The table is indexed by status, so a
// value outside the enumeration panics rather than picking a default.
func (s Status) Style() Style {
	return statusStyles[s]
}

// Class returns the CSS class list for a pill of this style.
func (s Style) Class() string {
	return "pill pill-" + string(s)
}

// Component is one row of a project's parts inventory.
type Component struct {
	Category string
	Name     string
	Notes    string // optional
	Status   Status
}
