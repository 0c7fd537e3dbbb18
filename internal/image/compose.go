package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/youruser/lifestyleapp/internal/section"
	"github.com/youruser/lifestyleapp/internal/util"
)

// DefaultQuality matches the usual JPEG encoder default.
const DefaultQuality = 75

var errRemoteDisabled = errors.New("remote images are disabled")

// Assets are the files a composition reads and where it writes.
type Assets struct {
	TitleFont   string
	CaptionFont string
	Icon        string
	ImagesDir   string // cell images are resolved here by name
	OutputDir   string // auto-numbered outputs go here
}

// Compositor renders the four-cell promotional image. Every input failure is
// soft: fonts fall back to DefaultFont, a bad cell image becomes a white
// placeholder, a bad icon is left out. Each such fallback is reported as a
// Warning in the Result.
type Compositor struct {
	Layout      Layout
	Assets      Assets
	Quality     int
	AllowRemote bool
	Logger      *slog.Logger
}

// New returns a Compositor with the default layout and JPEG quality.
func New(assets Assets) *Compositor {
	return &Compositor{
		Layout:  DefaultLayout(),
		Assets:  assets,
		Quality: DefaultQuality,
	}
}

func (c *Compositor) log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Compose renders req and saves it as JPEG to req.Output, or to the next free
// outputN.jpg in the output directory when no path is given.
func (c *Compositor) Compose(req section.Request) (*Result, error) {
	canvas, res, err := c.Render(req)
	if err != nil {
		return nil, err
	}

	path := req.Output
	if path == "" {
		if path, err = NextOutputPath(c.Assets.OutputDir); err != nil {
			return res, err
		}
	} else if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return res, fmt.Errorf("creating output dir: %w", err)
	}

	q := c.Quality
	if q <= 0 {
		q = DefaultQuality
	}
	if err := imaging.Save(canvas, path, imaging.JPEGQuality(q)); err != nil {
		return res, fmt.Errorf("saving %s: %w", path, err)
	}
	res.Path = path
	c.log().Info("image saved", slog.String("path", path), slog.Int("warnings", len(res.Warnings)))
	return res, nil
}

// Render composes req onto a new canvas without writing anything. It fails
// only when req does not fill the grid.
func (c *Compositor) Render(req section.Request) (*image.NRGBA, *Result, error) {
	cells, err := section.Ordered(req.Sections)
	if err != nil {
		return nil, nil, err
	}
	l := c.Layout
	res := &Result{}
	canvas := imaging.New(l.CanvasWidth, l.CanvasHeight, white)

	title, caption, err := LoadFonts(c.Assets.TitleFont, l.TitleSize, c.Assets.CaptionFont, l.CaptionSize)
	if err != nil {
		res.warn(c.log(), WarnFont, nil, err)
	}

	res.Lines = c.drawTitle(canvas, title, req.Title)
	for _, s := range cells {
		c.drawCell(canvas, caption, s, res)
	}
	if req.FooterQR != "" {
		c.drawFooterQR(canvas, req.FooterQR, res)
	}
	return canvas, res, nil
}

func (c *Compositor) drawTitle(canvas draw.Image, f Font, title string) []string {
	l := c.Layout
	lines := WrapText(f.Face, title, l.TitleMaxWidth)
	lh := f.Size + l.TitleLeading
	y := l.TitleTop(len(lines), lh)
	for i, line := range lines {
		x := floorDiv(l.CanvasWidth-TextWidth(f.Face, line), 2)
		drawText(canvas, f, line, x, y+i*lh, color.Black)
	}
	return lines
}

func (c *Compositor) drawCell(canvas draw.Image, f Font, s section.Section, res *Result) {
	l := c.Layout
	a := l.Anchor(s.Position)

	box := l.CaptionRect(a)
	draw.Draw(canvas, box, image.Black, image.Point{}, draw.Src)
	h := TextBox(f.Face, s.Caption).Dy()
	drawText(canvas, f, s.Caption, box.Min.X+l.CaptionInset, box.Min.Y+floorDiv(l.CaptionHeight-h, 2), color.White)

	if icon, err := LoadIcon(c.Assets.Icon, l.IconSize); err != nil {
		res.warn(c.log(), WarnIcon, &s.Position, err, slog.String("path", c.Assets.Icon))
	} else {
		sz := icon.Bounds().Size()
		at := l.IconPoint(box, sz)
		draw.Draw(canvas, image.Rectangle{Min: at, Max: at.Add(sz)}, icon, image.Point{}, draw.Over)
	}

	tile := Placeholder(l.InteriorSize())
	if src, path, err := c.openSource(s.Image); err != nil {
		res.warn(c.log(), WarnImage, &s.Position, err, slog.String("path", path))
	} else {
		tile = FitImage(src, l.InteriorSize())
	}
	draw.Draw(canvas, l.InteriorRect(a), tile, image.Point{}, draw.Src)
}

// openSource resolves a cell image by name under the images dir, or by URL
// when remote images are allowed. The returned path is for reporting.
func (c *Compositor) openSource(name string) (image.Image, string, error) {
	if isRemote(name) {
		if !c.AllowRemote {
			return nil, name, errRemoteDisabled
		}
		img, err := DownloadImage(name)
		return img, name, err
	}
	path := filepath.Join(c.Assets.ImagesDir, name)
	if !filepath.IsLocal(name) {
		return nil, path, fmt.Errorf("image name %q is not a local path", name)
	}
	img, err := imaging.Open(path)
	return img, path, err
}

func (c *Compositor) drawFooterQR(canvas draw.Image, text string, res *Result) {
	r := c.Layout.FooterQRRect()
	qr, err := GenerateQRImage(text, r.Dx())
	if err != nil {
		res.warn(c.log(), WarnQR, nil, err)
		return
	}
	draw.Draw(canvas, r, qr, qr.Bounds().Min, draw.Src)
}
