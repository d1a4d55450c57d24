package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/mbellini/forkful/pkg/data"
)

// CookbookBuilder compiles a list of recipes into a single EPUB.
type CookbookBuilder struct {
	outputDir string
	covers    *CoverProcessor
}

func NewCookbookBuilder(outputDir string) *CookbookBuilder {
	return &CookbookBuilder{
		outputDir: outputDir,
		covers:    NewCoverProcessor(),
	}
}

// Build writes one EPUB with a chapter per recipe and returns its path.
// Cover downloads are best-effort; a recipe without a reachable image
// still gets its chapter.
func (b *CookbookBuilder) Build(title string, recipes []data.Recipe) (string, error) {
	if len(recipes) == 0 {
		return "", fmt.Errorf("no recipes to compile")
	}

	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	sorted := make([]data.Recipe, len(recipes))
	copy(sorted, recipes)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
	})

	book, err := epub.NewEpub(title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPUB: %w", err)
	}
	book.SetAuthor("forkful")
	book.SetLang("en")

	tempDir, err := os.MkdirTemp("", "forkful-covers-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	for i, recipe := range sorted {
		coverRef := b.embedCover(book, tempDir, i, recipe)
		if _, err := book.AddSection(recipeHTML(recipe, coverRef), recipe.Title, "", ""); err != nil {
			return "", fmt.Errorf("failed to add %q: %w", recipe.Title, err)
		}
	}

	outputPath := filepath.Join(b.outputDir, sanitizeFilename(title)+".epub")
	if err := book.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPUB: %w", err)
	}
	return outputPath, nil
}

// embedCover downloads and embeds a recipe cover, returning the internal
// image reference or "" when unavailable.
func (b *CookbookBuilder) embedCover(book *epub.Epub, tempDir string, index int, recipe data.Recipe) string {
	if recipe.ImageURL == "" {
		return ""
	}
	content, err := b.covers.Fetch(recipe.ImageURL)
	if err != nil {
		return ""
	}

	path := filepath.Join(tempDir, fmt.Sprintf("cover-%d.jpg", index))
	if err := os.WriteFile(path, content, 0644); err != nil {
		return ""
	}
	ref, err := book.AddImage(path, fmt.Sprintf("cover-%d.jpg", index))
	if err != nil {
		return ""
	}
	return ref
}

func recipeHTML(recipe data.Recipe, coverRef string) string {
	var body strings.Builder
	body.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(recipe.Title)))
	if coverRef != "" {
		body.WriteString(fmt.Sprintf(`<p><img src="%s" alt="%s"/></p>`+"\n",
			coverRef, html.EscapeString(recipe.Title)))
	}
	body.WriteString(fmt.Sprintf("<p>%s &middot; %d minutes &middot; serves %d</p>\n",
		html.EscapeString(recipe.Publisher), recipe.CookingTime, recipe.Servings))

	body.WriteString("<h2>Ingredients</h2>\n<ul>\n")
	for _, ingredient := range recipe.Ingredients {
		body.WriteString(fmt.Sprintf("<li>%s</li>\n", html.EscapeString(ingredient.Label())))
	}
	body.WriteString("</ul>\n")

	if recipe.SourceURL != "" {
		body.WriteString(fmt.Sprintf(`<p>Directions: <a href="%s">%s</a></p>`+"\n",
			recipe.SourceURL, html.EscapeString(recipe.SourceURL)))
	}
	return body.String()
}

func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	sanitized := strings.TrimSpace(replacer.Replace(name))
	if sanitized == "" {
		return "cookbook"
	}
	return sanitized
}
