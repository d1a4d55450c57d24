package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbellini/forkful/pkg/app/components"
	"github.com/mbellini/forkful/pkg/app/styles"
	"github.com/mbellini/forkful/pkg/store"
)

type SearchScreen struct {
	store     *store.Store
	input     textinput.Model
	list      *components.RecipeList
	searching bool
	width     int
	height    int
	err       error
}

func NewSearchScreen(st *store.Store) *SearchScreen {
	ti := textinput.New()
	ti.Placeholder = "Search recipes..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return &SearchScreen{
		store: st,
		input: ti,
		list:  components.NewRecipeList("No results"),
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *SearchScreen) inputFocused() bool {
	return s.input.Focused()
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 12

	case tea.KeyMsg:
		if s.searching {
			return s, nil
		}

		switch msg.String() {
		case "enter":
			if s.input.Focused() {
				query := s.input.Value()
				if query != "" {
					s.searching = true
					return s, s.performSearch(query)
				}
			} else if selected := s.list.Selected(); selected != nil {
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "details", Data: selected.ID}
				}
			}

		case "esc":
			if s.input.Focused() {
				s.input.Blur()
			} else {
				s.input.Focus()
				cmd = textinput.Blink
			}

		case "up", "k":
			if !s.input.Focused() {
				s.list.Prev()
			}

		case "down", "j":
			if !s.input.Focused() {
				s.list.Next()
			}

		case "left", "h":
			if !s.input.Focused() {
				s.turnPage(-1)
			}

		case "right", "l":
			if !s.input.Focused() {
				s.turnPage(1)
			}
		}

	case searchDoneMsg:
		s.searching = false
		s.err = msg.err
		s.refreshList()
		if len(s.list.Items) > 0 {
			s.input.Blur()
		}
	}

	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}

	return s, cmd
}

func (s *SearchScreen) turnPage(delta int) {
	page := s.store.Search().Page + delta
	if page < 1 || page > s.store.TotalPages() {
		return
	}
	s.store.Page(page)
	s.refreshList()
}

func (s *SearchScreen) refreshList() {
	results := s.store.CurrentPage()
	items := make([]components.RecipeListItem, len(results))
	for i, result := range results {
		items[i] = components.ItemFromSummary(result)
	}
	s.list.SetItems(items)
	s.list.SelectedIndex = 0
}

func (s *SearchScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("🔍 Search Recipes")

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}

	var resultsView string
	if s.searching {
		resultsView = styles.StatusLoading.Render("Searching...")
	} else if len(s.list.Items) > 0 {
		search := s.store.Search()
		count := styles.SubtitleStyle.Render(
			fmt.Sprintf("%d results for %q", len(search.Results), search.Query))
		pager := components.Pager{Page: search.Page, Total: s.store.TotalPages()}
		resultsView = count + "\n\n" + s.list.View() + pager.View()
	} else if s.input.Value() != "" {
		resultsView = styles.MutedStyle.Render("No results found")
	}

	help := styles.HelpStyle.Render(
		"enter: search/open • esc: switch focus • ↑/↓: navigate • ←/→: page • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n\n%s", header, inputView, errorMsg, resultsView, help)
}

// Messages
type searchDoneMsg struct {
	err error
}

// Commands
func (s *SearchScreen) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		err := s.store.RunSearch(context.Background(), query)
		return searchDoneMsg{err: err}
	}
}
