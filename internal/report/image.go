package report

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hailam/queensweep/internal/board"
	"github.com/hailam/queensweep/internal/store"
)

//go:embed assets/*.svg
var pieceAssets embed.FS

var (
	lightSquare = color.RGBA{0xf0, 0xd9, 0xb5, 0xff}
	darkSquare  = color.RGBA{0xb5, 0x88, 0x63, 0xff}
	background  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	captionInk  = color.RGBA{0x20, 0x20, 0x20, 0xff}
)

// ImageOptions controls PNG rendering.
type ImageOptions struct {
	Square   int     // side of one board square in pixels
	PerRow   int     // boards per image row
	FontSize float64 // caption size in points
}

// DefaultImageOptions renders 32px squares, four boards per row.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{Square: 32, PerRow: 4, FontSize: 14}
}

const imageMargin = 12

var parseFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// loadSprite rasterises an embedded SVG icon to a size x size image.
func loadSprite(path string, size int) (*image.RGBA, error) {
	data, err := pieceAssets.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// RenderSolution draws the start board and the board after every move of
// sol as a grid of captioned boards.
func RenderSolution(start board.Board, sol board.Solution, opts ImageOptions) (*image.RGBA, error) {
	if opts.Square < 8 {
		opts.Square = 8
	}
	if opts.PerRow < 1 {
		opts.PerRow = 1
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 14
	}

	mover, err := loadSprite("assets/mover.svg", opts.Square)
	if err != nil {
		return nil, err
	}
	pawn, err := loadSprite("assets/pawn.svg", opts.Square)
	if err != nil {
		return nil, err
	}

	f, err := parseFont()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	defer face.Close()

	boards := append([]board.Board{start}, sol.Replay(start)...)
	captions := MoveCaptions(sol)

	boardPx := board.Size * opts.Square
	captionPx := int(opts.FontSize) + imageMargin/2
	cols := min(opts.PerRow, len(boards))
	rows := (len(boards) + cols - 1) / cols

	width := imageMargin + cols*(boardPx+imageMargin)
	height := imageMargin + rows*(captionPx+boardPx+imageMargin)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Src: image.NewUniform(captionInk), Face: face}

	for k, b := range boards {
		x0 := imageMargin + (k%cols)*(boardPx+imageMargin)
		y0 := imageMargin + (k/cols)*(captionPx+boardPx+imageMargin)

		d.Dot = fixed.P(x0, y0+int(opts.FontSize))
		d.DrawString(captions[k])

		drawBoard(img, b, image.Pt(x0, y0+captionPx), opts.Square, mover, pawn)
	}
	return img, nil
}

func drawBoard(dst draw.Image, b board.Board, origin image.Point, square int, mover, pawn image.Image) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			r := image.Rect(0, 0, square, square).Add(origin.Add(image.Pt(col*square, row*square)))

			c := lightSquare
			if (row+col)%2 == 1 {
				c = darkSquare
			}
			draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)

			sq := board.NewSquare(row, col)
			switch {
			case sq == b.Mover:
				draw.Draw(dst, r, mover, image.Point{}, draw.Over)
			case b.Pawns.IsSet(sq):
				draw.Draw(dst, r, pawn, image.Point{}, draw.Over)
			}
		}
	}
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// PNGName is the file name of solution i (zero based).
func PNGName(i int) string {
	return fmt.Sprintf("solution-%04d.png", i+1)
}

// WritePNGs renders up to limit solutions of st into dir, one file per
// solution, and returns the number of files written. Zero limit writes all.
func WritePNGs(dir string, start board.Board, st store.Store, limit int, opts ImageOptions) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}

	written := 0
	err := st.Each(func(i int, sol board.Solution) error {
		if limit > 0 && i >= limit {
			return errLimit
		}
		img, err := RenderSolution(start, sol, opts)
		if err != nil {
			return err
		}
		if err := WritePNG(filepath.Join(dir, PNGName(i)), img); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil && !errors.Is(err, errLimit) {
		return written, err
	}
	return written, nil
}
