package render

import (
	"reflect"
	"testing"

	"github.com/Zachkp/ee-portfolio/internal/content"
	"github.com/Zachkp/ee-portfolio/internal/models"
)

func TestNewProjectCardLinks(t *testing.T) {
	tests := []struct {
		name    string
		project models.Project
		want    []string
	}{
		{"none", models.Project{Title: "a"}, nil},
		{"code only", models.Project{Title: "a", Code: "https://c"}, []string{"Code"}},
		{"docs and video", models.Project{Title: "a", Docs: "/d", Video: "/v"}, []string{"Docs", "Video"}},
		{"all three", models.Project{Title: "a", Code: "https://c", Docs: "/d", Video: "/v"}, []string{"Code", "Docs", "Video"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := NewProjectCard(tt.project)
			var got []string
			for _, l := range card.Links {
				got = append(got, l.Label)
				if l.Href == "" {
					t.Errorf("link %q has empty href", l.Label)
				}
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("labels = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewProjectCardTags(t *testing.T) {
	if card := NewProjectCard(models.Project{Title: "a"}); card.Tags != nil {
		t.Fatalf("expected no tags, got %v", card.Tags)
	}
	if card := NewProjectCard(models.Project{Title: "a", Tags: []string{}}); card.Tags != nil {
		t.Fatalf("expected empty tag slice to render no chips, got %v", card.Tags)
	}
	card := NewProjectCard(models.Project{Title: "a", Tags: []string{"z", "a", "m"}})
	if !reflect.DeepEqual(card.Tags, []string{"z", "a", "m"}) {
		t.Fatalf("tags reordered: %v", card.Tags)
	}
}

func TestNewProjectCardImage(t *testing.T) {
	if card := NewProjectCard(models.Project{Title: "a", ImageAlt: "ignored"}); card.Image != nil {
		t.Fatal("alt text alone must not produce an image block")
	}

	card := NewProjectCard(models.Project{Title: "Title", Image: "/x.png", Tags: []string{"FPGA", "Vision", "High-Speed"}})
	if card.Image == nil {
		t.Fatal("expected image block")
	}
	if card.Image.Alt != "Title" {
		t.Fatalf("alt = %q, want title fallback", card.Image.Alt)
	}
	if card.Image.Badge != "FPGA • Vision" {
		t.Fatalf("badge = %q", card.Image.Badge)
	}
	if card.Image.Sizes != CardImageSizes {
		t.Fatalf("sizes = %q", card.Image.Sizes)
	}
}

func TestBadge(t *testing.T) {
	tests := []struct {
		tags []string
		want string
	}{
		{nil, "Title"},
		{[]string{"RF"}, "RF"},
		{[]string{"RF", "DSP", "SDR"}, "RF • DSP"},
	}
	for _, tt := range tests {
		if got := badge(models.Project{Title: "Title", Tags: tt.tags}); got != tt.want {
			t.Errorf("badge(%v) = %q, want %q", tt.tags, got, tt.want)
		}
	}
}

func TestProjectCardsKeepOrder(t *testing.T) {
	cards := ProjectCards([]models.Project{
		{Title: "A", Tags: []string{"1", "2", "3"}},
		{Title: "B"},
		{Title: "C", Tags: []string{"1"}},
	})
	var got []string
	for _, c := range cards {
		got = append(got, c.Title)
	}
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("order = %v", got)
	}
}

func TestNewComponentRow(t *testing.T) {
	row := NewComponentRow(models.Component{Category: "c", Name: "n", Status: models.StatusTested})
	if row.Notes != NotesPlaceholder {
		t.Fatalf("notes = %q, want placeholder", row.Notes)
	}
	if row.Status != "tested" || row.PillClass != "pill pill-success" {
		t.Fatalf("status = %q class = %q", row.Status, row.PillClass)
	}

	row = NewComponentRow(models.Component{Category: "c", Name: "n", Notes: "keep", Status: models.StatusOrdered})
	if row.Notes != "keep" {
		t.Fatalf("notes = %q", row.Notes)
	}
	if row.PillClass != "pill pill-warning" {
		t.Fatalf("class = %q", row.PillClass)
	}
}

func TestTOCCoversSections(t *testing.T) {
	want := []string{"#purpose", "#whats-new", "#components", "#architecture", "#toolbox", "#roadmap", "#refs"}
	var got []string
	for _, l := range TOC() {
		got = append(got, l.Href)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("toc = %v, want %v", got, want)
	}
}

func TestNewHomeViewUsesContent(t *testing.T) {
	view := NewHomeView()
	if len(view.Cards) != len(content.Projects()) {
		t.Fatalf("cards = %d, projects = %d", len(view.Cards), len(content.Projects()))
	}
	if view.Meta != content.Metadata() {
		t.Fatalf("meta = %+v", view.Meta)
	}
}
