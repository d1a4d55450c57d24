package forkify

import (
	"context"

	"github.com/mbellini/forkful/pkg/data"
)

// Source is the recipe catalog the application browses.
type Source interface {
	Search(ctx context.Context, query string) ([]data.SearchResult, error)
	GetRecipe(ctx context.Context, id string) (*data.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *data.Recipe) (*data.Recipe, error)
}
