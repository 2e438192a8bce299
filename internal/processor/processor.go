package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/aliskhannn/upscaler/internal/resolution"
)

// Processor executes the decode, resize and encode steps for a single image.
type Processor struct {
	quality  int
	label    string
	fontPath string
}

// New creates a Processor. quality applies to JPEG output. label, when
// non-empty, is stamped in the bottom-right corner of the result using the
// font face at fontPath.
func New(quality int, label, fontPath string) *Processor {
	return &Processor{quality: quality, label: label, fontPath: fontPath}
}

// Resize decodes src, scales it to the target resolution and encodes the
// result into a buffer. The output format follows the extension of outPath,
// falling back to JPEG when the extension is unknown.
func (p *Processor) Resize(ctx context.Context, src io.Reader, target resolution.Resolution, outPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Perform resizing.
	var out image.Image = imaging.Resize(img, target.Width, target.Height, imaging.Lanczos)

	if p.label != "" {
		out, err = p.stamp(out)
		if err != nil {
			return nil, err
		}
	}

	format, err := imaging.FormatFromExtension(filepath.Ext(outPath))
	if err != nil {
		format = imaging.JPEG
	}

	// Encode resized image into a buffer for persistence.
	buf := bytes.NewBuffer(nil)
	if err := imaging.Encode(buf, out, format, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}

	return buf.Bytes(), nil
}

// stamp draws the configured label text on top of the image, placed in the
// bottom-right corner.
func (p *Processor) stamp(img image.Image) (image.Image, error) {
	dc := gg.NewContextForImage(img)
	dc.SetColor(color.White)

	fontSize := float64(dc.Width()) * 0.05 // 5% of the image width

	if err := dc.LoadFontFace(p.fontPath, fontSize); err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	tw, th := dc.MeasureString(p.label)

	margin := 10.0
	x := float64(dc.Width()) - tw - margin
	y := float64(dc.Height()) - th - margin

	dc.DrawStringAnchored(p.label, x, y, 1, 1) // bottom-right corner
	dc.Fill()

	return dc.Image(), nil
}
