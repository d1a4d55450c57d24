package components

import (
	"strings"
	"testing"
)

func TestPagerBounds(t *testing.T) {
	p := Pager{Page: 1, Total: 3}
	if p.HasPrev() {
		t.Error("Expected no prev on the first page")
	}
	if !p.HasNext() {
		t.Error("Expected next on the first page")
	}

	p = Pager{Page: 3, Total: 3}
	if !p.HasPrev() {
		t.Error("Expected prev on the last page")
	}
	if p.HasNext() {
		t.Error("Expected no next on the last page")
	}
}

func TestPagerViewHiddenForSinglePage(t *testing.T) {
	if view := (Pager{Page: 1, Total: 1}).View(); view != "" {
		t.Errorf("Expected empty view for a single page, got %q", view)
	}
	if view := (Pager{Page: 1, Total: 0}).View(); view != "" {
		t.Errorf("Expected empty view without results, got %q", view)
	}
}

func TestPagerViewShowsPosition(t *testing.T) {
	view := (Pager{Page: 2, Total: 3}).View()
	if !strings.Contains(view, "page 2 of 3") {
		t.Errorf("Expected position in view, got %q", view)
	}
}
