// Package render rasterizes a multi-line text block onto a solid-color
// bitmap, anchored to the bottom-right corner of the canvas.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontSize is the fixed point size of the monospace face.
const fontSize = 20

// background is the flat canvas fill.
var background = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// Options controls the canvas geometry. The text block's bottom-right
// corner is placed MarginRight px left and MarginBottom px above the
// canvas's bottom-right corner.
type Options struct {
	Width        int
	Height       int
	MarginRight  int
	MarginBottom int
}

// DefaultOptions returns the standard 1920x1080 canvas with the text block
// anchored clear of the taskbar and system tray area.
func DefaultOptions() Options {
	return Options{
		Width:        1920,
		Height:       1080,
		MarginRight:  560,
		MarginBottom: 260,
	}
}

// Draw rasterizes text onto a new canvas. Each line's pixel width and the
// line height come from the actual font metrics, not assumed glyph-cell
// math, so the block aligns correctly for any content.
//
// Parameters:
//   - text: The multi-line block to draw
//   - opts: Canvas geometry
//
// Returns:
//   - The drawn canvas
//   - An error if the geometry is invalid or the font face cannot be built
func Draw(text string, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if opts.MarginRight < 0 || opts.MarginBottom < 0 {
		return nil, fmt.Errorf("invalid margins %d/%d", opts.MarginRight, opts.MarginBottom)
	}

	face, err := newFace()
	if err != nil {
		return nil, err
	}
	defer func() { _ = face.Close() }()

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	drawBlock(img, face, text, opts)

	return img, nil
}

// WriteBMP encodes the canvas to an uncompressed bitmap file. The file is
// closed, with the flush error checked, before the function returns, so the
// caller may hand the path to the OS immediately.
func WriteBMP(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := bmp.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode bitmap: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return nil
}

// RenderToFile draws text with the given geometry and writes the result to
// path, overwriting any previous file.
func RenderToFile(text, path string, opts Options) error {
	img, err := Draw(text, opts)
	if err != nil {
		return err
	}
	return WriteBMP(img, path)
}

// newFace builds the fixed-width face at the fixed point size.
func newFace() (font.Face, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build font face: %w", err)
	}
	return face, nil
}

// drawBlock measures the block and draws it line by line from the computed
// origin, top-to-bottom, with line spacing equal to the face line height.
func drawBlock(img *image.RGBA, face font.Face, text string, opts Options) {
	lines := strings.Split(text, "\n")

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}

	maxWidth := 0
	for _, line := range lines {
		if w := drawer.MeasureString(line).Ceil(); w > maxWidth {
			maxWidth = w
		}
	}

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()
	blockHeight := lineHeight * len(lines)

	x := opts.Width - opts.MarginRight - maxWidth
	baseline := opts.Height - opts.MarginBottom - blockHeight + ascent

	for _, line := range lines {
		drawer.Dot = fixed.P(x, baseline)
		drawer.DrawString(line)
		baseline += lineHeight
	}
}
