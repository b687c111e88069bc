// Package bigchar renders a character as block art using half-block cells.
package bigchar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontEnv names an environment variable holding an extra font path to try first.
const FontEnv = "CJ_FONT"

var fontPaths = []string{
	// macOS
	"/System/Library/Fonts/STHeiti Light.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// Windows
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\mingliu.ttc",
}

// threshold is the grey level above which a pixel counts as ink.
const threshold = 40

var (
	loadOnce sync.Once
	face     font.Face

	mu    sync.Mutex
	cache = make(map[string]string)
)

func loadFace() {
	paths := fontPaths
	if p := os.Getenv(FontEnv); p != "" {
		paths = append([]string{p}, paths...)
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if f := parseFace(data); f != nil {
			face = f
			return
		}
	}
}

// parseFace accepts a font collection or a single font.
func parseFace(data []byte) font.Face {
	opts := &opentype.FaceOptions{Size: 64, DPI: 72}

	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if f, err := opentype.NewFace(fnt, opts); err == nil {
				return f
			}
		}
	}

	if fnt, err := opentype.Parse(data); err == nil {
		if f, err := opentype.NewFace(fnt, opts); err == nil {
			return f
		}
	}

	return nil
}

// IsAvailable reports whether a CJK font was found.
func IsAvailable() bool {
	loadOnce.Do(loadFace)
	return face != nil
}

// Render draws the first rune of char into cols×rows terminal cells. It returns
// "" when no font is available.
func Render(char string, cols, rows int) string {
	if char == "" || cols <= 0 || rows <= 0 || !IsAvailable() {
		return ""
	}

	r := []rune(char)[0]
	bounds, _, ok := face.GlyphBounds(r)
	if !ok {
		return ""
	}
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	padding := 4
	srcWidth := max(glyphWidth+padding*2, 64)
	srcHeight := max(glyphHeight+padding*2, 64)

	src := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P((srcWidth-glyphWidth)/2, srcHeight-padding-bounds.Max.Y.Ceil()),
	}
	d.DrawString(string(r))

	// each cell holds two vertical pixels
	return HalfBlocks(Downscale(src, cols, rows*2), cols, rows)
}

// GetCached is Render with memoization.
func GetCached(char string, cols, rows int) string {
	if !IsAvailable() {
		return ""
	}

	key := fmt.Sprintf("%s/%dx%d", char, cols, rows)

	mu.Lock()
	defer mu.Unlock()
	if art, ok := cache[key]; ok {
		return art
	}
	art := Render(char, cols, rows)
	cache[key] = art
	return art
}

// Downscale shrinks a grayscale image by averaging each source area.
func Downscale(src *image.Gray, width, height int) *image.Gray {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, width, height))

	xRatio := float64(sw) / float64(width)
	yRatio := float64(sh) / float64(height)

	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			x0, y0 := int(float64(dx)*xRatio), int(float64(dy)*yRatio)
			x1, y1 := min(int(float64(dx+1)*xRatio), sw), min(int(float64(dy+1)*yRatio), sh)

			sum, n := 0, 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					sum += int(src.GrayAt(x, y).Y)
					n++
				}
			}
			if n > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / n)})
			}
		}
	}

	return dst
}

// HalfBlocks maps pairs of vertical pixels onto ▀ ▄ █ and space.
func HalfBlocks(img *image.Gray, cols, rows int) string {
	var sb strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := ink(img, col, row*2)
			bottom := ink(img, col, row*2+1)

			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		if row < rows-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

func ink(img *image.Gray, x, y int) bool {
	b := img.Bounds()
	if x < b.Min.X || y < b.Min.Y || x >= b.Max.X || y >= b.Max.Y {
		return false
	}
	return img.GrayAt(x, y).Y > threshold
}
