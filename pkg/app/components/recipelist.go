package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mbellini/forkful/pkg/app/styles"
	"github.com/mbellini/forkful/pkg/data"
)

// RecipeListItem is one selectable entry of a recipe list.
type RecipeListItem struct {
	ID        string
	Title     string
	Publisher string
	UserOwned bool
}

// ItemFromSummary builds a list item from a search result.
func ItemFromSummary(result data.SearchResult) RecipeListItem {
	return RecipeListItem{
		ID:        result.ID,
		Title:     result.Title,
		Publisher: result.Publisher,
		UserOwned: result.UserKey != "",
	}
}

// ItemFromRecipe builds a list item from a bookmarked recipe.
func ItemFromRecipe(recipe data.Recipe) RecipeListItem {
	return RecipeListItem{
		ID:        recipe.ID,
		Title:     recipe.Title,
		Publisher: recipe.Publisher,
		UserOwned: recipe.UserKey != "",
	}
}

// RecipeList renders a vertical list of recipe cards with wrap-around
// selection.
type RecipeList struct {
	Items         []RecipeListItem
	SelectedIndex int
	Width         int
	Height        int
	EmptyMessage  string
}

func NewRecipeList(emptyMessage string) *RecipeList {
	return &RecipeList{
		Items:        []RecipeListItem{},
		Width:        80,
		Height:       20,
		EmptyMessage: emptyMessage,
	}
}

func (l *RecipeList) SetItems(items []RecipeListItem) {
	l.Items = items
	if l.SelectedIndex >= len(items) {
		l.SelectedIndex = len(items) - 1
	}
	if l.SelectedIndex < 0 {
		l.SelectedIndex = 0
	}
}

func (l *RecipeList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex = (l.SelectedIndex + 1) % len(l.Items)
}

func (l *RecipeList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *RecipeList) Selected() *RecipeListItem {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

func (l *RecipeList) View() string {
	if len(l.Items) == 0 {
		empty := styles.MutedStyle.Render(l.EmptyMessage)
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, empty)
	}

	var b strings.Builder
	for i, item := range l.Items {
		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := item.Title
		if item.UserOwned {
			title += " *"
		}

		content := lipgloss.JoinVertical(
			lipgloss.Left,
			styles.TitleStyle.Render(title),
			styles.MutedStyle.Render(fmt.Sprintf("by %s", item.Publisher)),
		)
		b.WriteString(cardStyle.Width(l.Width - 4).Render(content))
		b.WriteString("\n")
	}
	return b.String()
}
