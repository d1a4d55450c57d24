package integrations

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

// CoverProcessor downloads recipe cover images and normalizes them for
// embedding: bounded dimensions, JPEG output.
type CoverProcessor struct {
	client    *http.Client
	maxWidth  int
	maxHeight int
}

func NewCoverProcessor() *CoverProcessor {
	return &CoverProcessor{
		client:    http.DefaultClient,
		maxWidth:  1024,
		maxHeight: 768,
	}
}

// Fetch downloads a cover and returns it as a normalized JPEG.
func (p *CoverProcessor) Fetch(url string) ([]byte, error) {
	resp, err := p.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cover: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status for cover: %s", resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read cover: %w", err)
	}
	return p.Normalize(content)
}

// Normalize decodes an image, scales it down to fit the processor's
// bounds while keeping the aspect ratio, and re-encodes it as JPEG.
func (p *CoverProcessor) Normalize(content []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode cover: %w", err)
	}

	bounds := img.Bounds()
	width, height := p.fitDimensions(bounds.Dx(), bounds.Dy())
	if width != bounds.Dx() || height != bounds.Dy() {
		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode cover: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *CoverProcessor) fitDimensions(width, height int) (int, int) {
	if width <= p.maxWidth && height <= p.maxHeight {
		return width, height
	}

	widthScale := float64(p.maxWidth) / float64(width)
	heightScale := float64(p.maxHeight) / float64(height)
	scale := widthScale
	if heightScale < scale {
		scale = heightScale
	}
	return int(float64(width) * scale), int(float64(height) * scale)
}
