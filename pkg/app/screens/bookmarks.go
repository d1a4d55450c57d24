package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbellini/forkful/pkg/app/components"
	"github.com/mbellini/forkful/pkg/app/styles"
	"github.com/mbellini/forkful/pkg/integrations"
	"github.com/mbellini/forkful/pkg/store"
)

type BookmarksScreen struct {
	store     *store.Store
	exportDir string
	list      *components.RecipeList
	status    string
	width     int
	height    int
	err       error
}

func NewBookmarksScreen(st *store.Store, exportDir string) *BookmarksScreen {
	return &BookmarksScreen{
		store:     st,
		exportDir: exportDir,
		list:      components.NewRecipeList("No bookmarks yet. Find a nice recipe and bookmark it :)"),
	}
}

func (s *BookmarksScreen) Init() tea.Cmd {
	s.refreshList()
	return nil
}

func (s *BookmarksScreen) refreshList() {
	bookmarks := s.store.Bookmarks()
	items := make([]components.RecipeListItem, len(bookmarks))
	for i, bookmark := range bookmarks {
		items[i] = components.ItemFromRecipe(bookmark)
	}
	s.list.SetItems(items)
}

func (s *BookmarksScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "d":
			if selected := s.list.Selected(); selected != nil {
				return s, s.deleteBookmark(selected.ID)
			}
		case "e":
			if len(s.list.Items) > 0 {
				s.status = "Exporting cookbook..."
				return s, s.exportCookbook()
			}
		case "enter":
			if selected := s.list.Selected(); selected != nil {
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "details", Data: selected.ID}
				}
			}
		}

	case bookmarkDeletedMsg:
		s.err = msg.err
		s.refreshList()

	case cookbookExportedMsg:
		s.err = msg.err
		s.status = ""
		if msg.err == nil {
			s.status = fmt.Sprintf("Cookbook written to %s", msg.path)
		}
	}

	return s, nil
}

func (s *BookmarksScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("📖 Bookmarks")

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}

	var statusMsg string
	if s.status != "" {
		statusMsg = styles.StatusSaved.Render(s.status) + "\n\n"
	}

	help := styles.HelpStyle.Render(
		"↑/↓: navigate • enter: open • d: delete • e: export cookbook • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s%s\n%s", header, errorMsg, statusMsg, s.list.View(), help)
}

// Messages
type bookmarkDeletedMsg struct {
	err error
}

type cookbookExportedMsg struct {
	path string
	err  error
}

// Commands
func (s *BookmarksScreen) deleteBookmark(id string) tea.Cmd {
	return func() tea.Msg {
		return bookmarkDeletedMsg{err: s.store.DeleteBookmark(id)}
	}
}

func (s *BookmarksScreen) exportCookbook() tea.Cmd {
	return func() tea.Msg {
		builder := integrations.NewCookbookBuilder(s.exportDir)
		path, err := builder.Build("My Cookbook", s.store.Bookmarks())
		return cookbookExportedMsg{path: path, err: err}
	}
}
