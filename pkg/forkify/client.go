package forkify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mbellini/forkful/pkg/data"
)

// intish tolerates the API's habit of sending numeric fields as either
// JSON numbers or quoted strings ("45" vs 45).
type intish int

func (n *intish) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*n = intish(f)
	return nil
}

type Ingredient struct {
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
}

// Recipe is the API's wire representation of a recipe.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Publisher   string       `json:"publisher"`
	SourceURL   string       `json:"source_url"`
	ImageURL    string       `json:"image_url"`
	CookingTime intish       `json:"cooking_time"`
	Servings    intish       `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
	Key         string       `json:"key,omitempty"`
}

func (r *Recipe) ToRecipe() *data.Recipe {
	ingredients := make([]data.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = data.Ingredient{
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Description: ing.Description,
		}
	}
	return &data.Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Publisher:   r.Publisher,
		SourceURL:   r.SourceURL,
		ImageURL:    r.ImageURL,
		CookingTime: int(r.CookingTime),
		Servings:    int(r.Servings),
		Ingredients: ingredients,
		UserKey:     r.Key,
	}
}

func (r *Recipe) ToSearchResult() data.SearchResult {
	return data.SearchResult{
		ID:        r.ID,
		Title:     r.Title,
		Publisher: r.Publisher,
		ImageURL:  r.ImageURL,
		UserKey:   r.Key,
	}
}

// FromRecipe reshapes a canonical recipe into the API's wire format for
// upload.
func FromRecipe(recipe *data.Recipe) *Recipe {
	ingredients := make([]Ingredient, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		ingredients[i] = Ingredient{
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Description: ing.Description,
		}
	}
	return &Recipe{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Publisher:   recipe.Publisher,
		SourceURL:   recipe.SourceURL,
		ImageURL:    recipe.ImageURL,
		CookingTime: intish(recipe.CookingTime),
		Servings:    intish(recipe.Servings),
		Ingredients: ingredients,
	}
}

// Client talks to the Forkify v2 API.
type Client struct {
	api     *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		api:     http.DefaultClient,
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
	}
}

// do runs one request against its deadline. The request is cancelled when
// the deadline fires first, and the caller sees a *TimeoutError.
func (c *Client) do(ctx context.Context, method, rawURL string, body, v any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.api.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &TimeoutError{URL: rawURL, Timeout: c.timeout}
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var fail struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&fail)
		return &HTTPError{Status: resp.StatusCode, Message: fail.Message}
	}

	if v == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func (c *Client) endpoint(path string, params url.Values) string {
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	u := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// Search returns summaries for every recipe matching the query.
func (c *Client) Search(ctx context.Context, query string) ([]data.SearchResult, error) {
	params := url.Values{}
	params.Set("search", query)

	var envelope struct {
		Data struct {
			Recipes []Recipe `json:"recipes"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, c.endpoint("", params), nil, &envelope); err != nil {
		return nil, err
	}

	out := make([]data.SearchResult, len(envelope.Data.Recipes))
	for i, recipe := range envelope.Data.Recipes {
		out[i] = recipe.ToSearchResult()
	}
	return out, nil
}

// GetRecipe fetches and normalizes a single recipe by id.
func (c *Client) GetRecipe(ctx context.Context, id string) (*data.Recipe, error) {
	var envelope struct {
		Data struct {
			Recipe Recipe `json:"recipe"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, c.endpoint("/"+id, url.Values{}), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Recipe.ToRecipe(), nil
}

// CreateRecipe uploads a user recipe and returns the stored copy.
func (c *Client) CreateRecipe(ctx context.Context, recipe *data.Recipe) (*data.Recipe, error) {
	var envelope struct {
		Data struct {
			Recipe Recipe `json:"recipe"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, c.endpoint("", url.Values{}), FromRecipe(recipe), &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Recipe.ToRecipe(), nil
}
