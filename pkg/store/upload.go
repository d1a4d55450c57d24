package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mbellini/forkful/pkg/data"
)

// ValidationError reports malformed user input during recipe upload. No
// store mutation happens before validation passes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ingredientPrefix marks form fields carrying ingredient lines.
const ingredientPrefix = "ingredient"

var validate = validator.New(validator.WithRequiredStructEnabled())

type uploadForm struct {
	Title       string `validate:"required"`
	SourceURL   string `validate:"required,url"`
	ImageURL    string `validate:"omitempty,url"`
	Publisher   string `validate:"required"`
	CookingTime string `validate:"required,numeric"`
	Servings    string `validate:"required,numeric"`
}

// UploadRecipe validates a flat map of form fields, reshapes the
// ingredient lines, POSTs the recipe and bookmarks the stored copy. The
// created recipe becomes the current recipe.
func (s *Store) UploadRecipe(ctx context.Context, fields map[string]string) error {
	form := uploadForm{
		Title:       fields["title"],
		SourceURL:   fields["sourceUrl"],
		ImageURL:    fields["image"],
		Publisher:   fields["publisher"],
		CookingTime: fields["cookingTime"],
		Servings:    fields["servings"],
	}
	if err := validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return &ValidationError{
				Field:  first.Field(),
				Reason: fmt.Sprintf("failed %q check", first.Tag()),
			}
		}
		return err
	}

	ingredients, parseErr := parseIngredients(fields)
	if parseErr != nil {
		return parseErr
	}

	// The numeric tag admits decimals, but both fields are whole numbers.
	cookingTime, err := strconv.Atoi(form.CookingTime)
	if err != nil {
		return &ValidationError{
			Field:  "cookingTime",
			Reason: fmt.Sprintf("%q is not a whole number", form.CookingTime),
		}
	}
	servings, err := strconv.Atoi(form.Servings)
	if err != nil {
		return &ValidationError{
			Field:  "servings",
			Reason: fmt.Sprintf("%q is not a whole number", form.Servings),
		}
	}

	recipe := &data.Recipe{
		Title:       form.Title,
		Publisher:   form.Publisher,
		SourceURL:   form.SourceURL,
		ImageURL:    form.ImageURL,
		CookingTime: cookingTime,
		Servings:    servings,
		Ingredients: ingredients,
	}

	created, err := s.source.CreateRecipe(ctx, recipe)
	if err != nil {
		return err
	}

	created.Bookmarked = true
	s.recipe = created
	if _, err := s.AddBookmark(*created); err != nil {
		return err
	}
	return nil
}

// parseIngredients collects every non-empty ingredient-prefixed field, in
// field-name order, and splits each into quantity, unit and description.
func parseIngredients(fields map[string]string) ([]data.Ingredient, error) {
	var names []string
	for name, value := range fields {
		if strings.HasPrefix(name, ingredientPrefix) && strings.TrimSpace(value) != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	ingredients := make([]data.Ingredient, 0, len(names))
	for _, name := range names {
		ingredient, err := parseIngredient(name, fields[name])
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

func parseIngredient(field, value string) (data.Ingredient, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return data.Ingredient{}, &ValidationError{
			Field:  field,
			Reason: "expected the format 'quantity,unit,description'",
		}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var quantity *float64
	if parts[0] != "" {
		q, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return data.Ingredient{}, &ValidationError{
				Field:  field,
				Reason: fmt.Sprintf("quantity %q is not a number", parts[0]),
			}
		}
		quantity = &q
	}

	return data.Ingredient{
		Quantity:    quantity,
		Unit:        parts[1],
		Description: parts[2],
	}, nil
}
