package models

import "testing"

func TestStatusStyleTable(t *testing.T) {
	tests := []struct {
		status Status
		label  string
		style  Style
	}{
		{StatusToBuy, "to buy", StyleNeutral},
		{StatusOrdered, "ordered", StyleWarning},
		{StatusReceived, "received", StyleInfo},
		{StatusTested, "tested", StyleSuccess},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := tt.status.String(); got != tt.label {
				t.Fatalf("String() = %q, want %q", got, tt.label)
			}
			for i := 0; i < 3; i++ {
				if got := tt.status.Style(); got != tt.style {
					t.Fatalf("Style() = %q, want %q", got, tt.style)
				}
			}
		})
	}
}

// Every status must have a label and a distinct style; a new status without table
// entries fails here.
func TestStatusTablesAreTotal(t *testing.T) {
	all := Statuses()
	if len(all) != int(statusCount) {
		t.Fatalf("Statuses() returned %d values, want %d", len(all), statusCount)
	}
	seen := map[Style]Status{}
	for _, s := range all {
		if s.String() == "" {
			t.Errorf("status %d has no label", s)
		}
		style := s.Style()
		if style == "" {
			t.Errorf("status %q has no style", s)
		}
		if prev, ok := seen[style]; ok {
			t.Errorf("statuses %q and %q share style %q", prev, s, style)
		}
		seen[style] = s
	}
}

func TestStyleClass(t *testing.T) {
	if got := StatusTested.Style().Class(); got != "pill pill-success" {
		t.Fatalf("Class() = %q", got)
	}
	if got := StatusToBuy.Style().Class(); got != "pill pill-neutral" {
		t.Fatalf("Class() = %q", got)
	}
}

func TestStatusOutsideEnumerationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range status")
		}
	}()
	_ = Status(statusCount).Style()
}
