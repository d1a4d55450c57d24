package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mbellini/forkful/pkg/app/styles"
	"github.com/mbellini/forkful/pkg/store"
)

type screenType int

const (
	bookmarksView screenType = iota
	searchView
	detailsView
)

// SwitchScreenMsg asks the root screen to activate another screen.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

type RootScreen struct {
	store *store.Store

	currentView screenType
	bookmarks   *BookmarksScreen
	search      *SearchScreen
	details     *DetailsScreen

	width  int
	height int
}

func NewRootScreen(st *store.Store, exportDir string) *RootScreen {
	return &RootScreen{
		store:       st,
		currentView: bookmarksView,
		bookmarks:   NewBookmarksScreen(st, exportDir),
		search:      NewSearchScreen(st),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.bookmarks.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			if r.currentView != searchView || !r.search.inputFocused() {
				return r, tea.Quit
			}
		case "tab":
			if r.currentView == detailsView {
				break
			}
			r.currentView = (r.currentView + 1) % 2
			if r.currentView == searchView {
				cmd = r.search.Init()
			} else {
				cmd = r.bookmarks.Init()
			}
			return r, cmd
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "bookmarks":
			r.currentView = bookmarksView
			cmd = r.bookmarks.Init()
		case "search":
			r.currentView = searchView
			cmd = r.search.Init()
		case "details":
			if recipeID, ok := msg.Data.(string); ok {
				r.details = NewDetailsScreen(r.store, recipeID)
				r.currentView = detailsView
				cmd = r.details.Init()
			}
		}
		return r, cmd
	}

	switch r.currentView {
	case bookmarksView:
		newModel, newCmd := r.bookmarks.Update(msg)
		r.bookmarks = newModel.(*BookmarksScreen)
		return r, newCmd
	case searchView:
		newModel, newCmd := r.search.Update(msg)
		r.search = newModel.(*SearchScreen)
		return r, newCmd
	case detailsView:
		if r.details != nil {
			newModel, newCmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var content string
	switch r.currentView {
	case bookmarksView:
		content = r.bookmarks.View()
	case searchView:
		content = r.search.View()
	case detailsView:
		if r.details != nil {
			content = r.details.View()
		}
	}

	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	if r.currentView == detailsView {
		return ""
	}

	bookmarksTab := "Bookmarks"
	searchTab := "Search"

	if r.currentView == bookmarksView {
		bookmarksTab = styles.ActiveTabStyle.Render(bookmarksTab)
		searchTab = styles.InactiveTabStyle.Render(searchTab)
	} else {
		bookmarksTab = styles.InactiveTabStyle.Render(bookmarksTab)
		searchTab = styles.ActiveTabStyle.Render(searchTab)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, bookmarksTab, searchTab)
}
