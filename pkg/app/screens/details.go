package screens

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mbellini/forkful/pkg/app/styles"
	"github.com/mbellini/forkful/pkg/store"
)

type DetailsScreen struct {
	store    *store.Store
	recipeID string
	loading  bool
	width    int
	height   int
	err      error
}

func NewDetailsScreen(st *store.Store, recipeID string) *DetailsScreen {
	return &DetailsScreen{
		store:    st,
		recipeID: recipeID,
		loading:  true,
	}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return s.loadRecipe
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		recipe := s.store.CurrentRecipe()

		switch msg.String() {
		case "+", "=":
			if recipe != nil {
				s.err = s.store.RescaleServings(recipe.Servings + 1)
			}
		case "-":
			if recipe != nil && recipe.Servings > 1 {
				s.err = s.store.RescaleServings(recipe.Servings - 1)
			}
		case "b":
			if recipe != nil {
				return s, s.toggleBookmark()
			}
		case "r":
			s.loading = true
			return s, s.loadRecipe
		case "esc", "backspace":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "bookmarks", Data: nil}
			}
		}

	case recipeLoadedMsg:
		s.loading = false
		s.err = msg.err

	case bookmarkToggledMsg:
		s.err = msg.err
	}

	return s, nil
}

func (s *DetailsScreen) View() string {
	if s.width == 0 || s.loading {
		return "Loading..."
	}

	recipe := s.store.CurrentRecipe()

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}
	if recipe == nil {
		return errorMsg + styles.MutedStyle.Render("Recipe not available")
	}

	title := recipe.Title
	if recipe.Bookmarked {
		title += " 🔖"
	}
	header := styles.TitleStyle.Render(fmt.Sprintf("🍳 %s", title))

	meta := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TextStyle.Render(fmt.Sprintf("%d minutes • %d servings", recipe.CookingTime, recipe.Servings)),
		styles.MutedStyle.Render(fmt.Sprintf("by %s", recipe.Publisher)),
		styles.MutedStyle.Render(recipe.SourceURL),
	)
	info := styles.CardStyle.Width(s.width - 4).Render(meta)

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Ingredients (%d):", len(recipe.Ingredients))))
	b.WriteString("\n\n")
	for _, ingredient := range recipe.Ingredients {
		b.WriteString(styles.TextStyle.Render("• " + ingredient.Label()))
		b.WriteString("\n")
	}

	help := styles.HelpStyle.Render(
		"+/-: servings • b: toggle bookmark • r: refresh • esc: back • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s\n%s", header, errorMsg, info, b.String(), help)
}

// Messages
type recipeLoadedMsg struct {
	err error
}

type bookmarkToggledMsg struct {
	added bool
	err   error
}

// Commands
func (s *DetailsScreen) loadRecipe() tea.Msg {
	err := s.store.FetchRecipe(context.Background(), s.recipeID)
	return recipeLoadedMsg{err: err}
}

func (s *DetailsScreen) toggleBookmark() tea.Cmd {
	return func() tea.Msg {
		recipe := s.store.CurrentRecipe()
		if recipe == nil {
			return bookmarkToggledMsg{}
		}
		if recipe.Bookmarked {
			return bookmarkToggledMsg{err: s.store.DeleteBookmark(recipe.ID)}
		}
		added, err := s.store.AddBookmark(*recipe)
		return bookmarkToggledMsg{added: added, err: err}
	}
}
