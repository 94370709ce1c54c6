package models

import "testing"

func TestProjectAltText(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		want    string
	}{
		{"explicit alt", Project{Title: "T", Image: "/a.png", ImageAlt: "cover"}, "cover"},
		{"falls back to title", Project{Title: "T", Image: "/a.png"}, "T"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.project.AltText(); got != tt.want {
				t.Fatalf("AltText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProjectHasImage(t *testing.T) {
	if (Project{ImageAlt: "orphan alt"}).HasImage() {
		t.Fatal("alt text without image must not count as an image")
	}
	if !(Project{Image: "/a.png"}).HasImage() {
		t.Fatal("expected HasImage for project with image")
	}
}
