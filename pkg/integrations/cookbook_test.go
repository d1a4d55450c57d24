package integrations

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/mbellini/forkful/pkg/data"
)

func quantity(q float64) *float64 { return &q }

func sampleRecipes() []data.Recipe {
	return []data.Recipe{
		{
			ID:          "r2",
			Title:       "Zucchini Fritters",
			Publisher:   "101 Cookbooks",
			SourceURL:   "https://example.com/fritters",
			CookingTime: 30,
			Servings:    2,
			Ingredients: []data.Ingredient{
				{Quantity: quantity(3), Unit: "", Description: "zucchini"},
			},
		},
		{
			ID:          "r1",
			Title:       "Avocado Toast",
			Publisher:   "Closet Cooking",
			SourceURL:   "https://example.com/toast",
			CookingTime: 10,
			Servings:    1,
			Ingredients: []data.Ingredient{
				{Quantity: quantity(1), Unit: "", Description: "avocado"},
				{Quantity: nil, Unit: "", Description: "salt to taste"},
			},
		},
	}
}

func TestCookbookBuild(t *testing.T) {
	outputDir, err := os.MkdirTemp("", "cookbook-output-*")
	if err != nil {
		t.Fatalf("Failed to create output dir: %v", err)
	}
	defer os.RemoveAll(outputDir)

	builder := NewCookbookBuilder(outputDir)
	path, err := builder.Build("My Cookbook", sampleRecipes())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected EPUB at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("Expected a non-empty EPUB")
	}
	if !strings.HasSuffix(path, "My Cookbook.epub") {
		t.Errorf("Unexpected output path %s", path)
	}
}

func TestCookbookBuildEmpty(t *testing.T) {
	builder := NewCookbookBuilder(t.TempDir())

	if _, err := builder.Build("My Cookbook", nil); err == nil {
		t.Fatal("Expected an error for an empty recipe list")
	}
}

func TestCookbookBuildWithUnreachableCover(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	recipes := sampleRecipes()
	recipes[0].ImageURL = server.URL + "/gone.jpg"

	builder := NewCookbookBuilder(t.TempDir())
	if _, err := builder.Build("My Cookbook", recipes); err != nil {
		t.Fatalf("Expected cover failures to be non-fatal, got %v", err)
	}
}

func TestRecipeHTMLEscapes(t *testing.T) {
	recipe := data.Recipe{
		Title:     "Mac & Cheese <deluxe>",
		Publisher: "Me",
		Ingredients: []data.Ingredient{
			{Quantity: nil, Unit: "", Description: "cheese & more"},
		},
	}

	html := recipeHTML(recipe, "")
	if strings.Contains(html, "<deluxe>") {
		t.Error("Expected title to be escaped")
	}
	if !strings.Contains(html, "Mac &amp; Cheese") {
		t.Error("Expected escaped ampersand in title")
	}
	if !strings.Contains(html, "cheese &amp; more") {
		t.Error("Expected escaped ingredient line")
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"My Cookbook":    "My Cookbook",
		"a/b\\c:d":       "a-b-c-d",
		"what? <really>": "what- -really-",
		"  spaced  ":     "spaced",
		"":               "cookbook",
	}

	for in, want := range cases {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
