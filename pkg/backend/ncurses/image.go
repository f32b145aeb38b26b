package ncurses

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/odvcencio/yui/pkg/logging"
	"github.com/odvcencio/yui/pkg/yui"
)

const (
	defaultImageCols = 8
	defaultImageRows = 4
)

// imageCells returns the text-mode footprint of an image: its pixel size
// converted to cells, or a fixed placeholder when the file cannot be read.
func (b *Backend) imageCells(v *yui.Image) (w, h int) {
	p := peerOf(v)
	if p == nil {
		return defaultImageCols, defaultImageRows
	}
	if p.imgPath != v.Path() {
		p.imgPath = v.Path()
		p.imgW, p.imgH = b.decodeSize(v.Path())
	}
	if p.imgW == 0 || p.imgH == 0 {
		return defaultImageCols, defaultImageRows
	}
	return b.cfg.CellsForPixels(p.imgW, false), b.cfg.CellsForPixels(p.imgH, true)
}

func (b *Backend) decodeSize(path string) (w, h int) {
	if path == "" {
		return 0, 0
	}
	f, err := os.Open(path)
	if err != nil {
		b.log.Debug(logging.CategoryWidget, "image_unreadable", err.Error(), map[string]any{"path": path})
		return 0, 0
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		b.log.Debug(logging.CategoryWidget, "image_undecodable", err.Error(), map[string]any{"path": path})
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
