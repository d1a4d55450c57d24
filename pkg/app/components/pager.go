package components

import (
	"fmt"

	"github.com/mbellini/forkful/pkg/app/styles"
)

// Pager renders the pagination line under a result list.
type Pager struct {
	Page  int
	Total int
}

func (p Pager) HasPrev() bool { return p.Page > 1 }
func (p Pager) HasNext() bool { return p.Page < p.Total }

func (p Pager) View() string {
	if p.Total <= 1 {
		return ""
	}

	prev := "      "
	if p.HasPrev() {
		prev = styles.SelectedStyle.Render("← prev")
	}
	next := "      "
	if p.HasNext() {
		next = styles.SelectedStyle.Render("next →")
	}
	middle := styles.MutedStyle.Render(fmt.Sprintf(" page %d of %d ", p.Page, p.Total))

	return prev + middle + next
}
