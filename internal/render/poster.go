package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/calendar"
)

// PosterOptions controls the size and palette of a PNG poster
type PosterOptions struct {
	Width  int
	Height int
	Dark   bool
}

// DefaultPosterOptions is an A4 page at 300 dpi
var DefaultPosterOptions = PosterOptions{Width: 2480, Height: 3508}

type palette struct {
	background string
	foreground string
	rule       string
	accent     string
}

func (o PosterOptions) palette() palette {
	if o.Dark {
		return palette{background: "#0a0a0a", foreground: "#f5f5f5", rule: "#404040", accent: AccentColor}
	}
	return palette{background: "#ffffff", foreground: "#0a0a0a", rule: "#e5e5e5", accent: AccentColor}
}

func (o PosterOptions) validate() error {
	if o.Width < 200 || o.Height < 200 {
		return fmt.Errorf("poster size %dx%d is too small", o.Width, o.Height)
	}
	return nil
}

// Fonts holds the parsed display faces
type Fonts struct {
	display *truetype.Font
	text    *truetype.Font
}

// LoadFonts parses the embedded Go fonts
func LoadFonts() (*Fonts, error) {
	display, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse display font: %w", err)
	}
	text, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text font: %w", err)
	}
	return &Fonts{display: display, text: text}, nil
}

func (f *Fonts) face(bold bool, size float64) font.Face {
	ft := f.text
	if bold {
		ft = f.display
	}
	return truetype.NewFace(ft, &truetype.Options{Size: size, Hinting: font.HintingFull})
}

// drawKerned draws label centred on cx with its glyphs spaced by the
// kerning table entry for day
func drawKerned(dc *gg.Context, label string, day int, cx, cy, size float64) {
	spacing := calendar.Kerning(day) * size
	runes := []rune(label)

	widths := make([]float64, len(runes))
	total := 0.0
	for i, r := range runes {
		widths[i], _ = dc.MeasureString(string(r))
		total += widths[i]
	}
	total += spacing * float64(len(runes)-1)

	x := cx - total/2
	for i, r := range runes {
		dc.DrawStringAnchored(string(r), x, cy, 0, 0.35)
		x += widths[i] + spacing
	}
}

// MonthPoster draws the month grid of d
func (f *Fonts) MonthPoster(d calendar.Date, grid calendar.MonthGrid, opts PosterOptions) (*gg.Context, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	pal := opts.palette()
	w, h := float64(opts.Width), float64(opts.Height)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetHexColor(pal.background)
	dc.Clear()

	margin := w * 0.04
	titleSize := w * 0.09
	headerTop := margin + titleSize*1.4

	// Title: month name left, year right
	dc.SetFontFace(f.face(true, titleSize))
	dc.SetHexColor(pal.foreground)
	dc.DrawStringAnchored(calendar.MonthName(d.Month), margin, margin, 0, 1)
	dc.DrawStringAnchored(strconv.Itoa(d.Year), w-margin, margin, 1, 1)

	colW := (w - 2*margin) / calendar.DaysPerWeek
	headerH := colW * 0.5
	rowH := (h - headerTop - headerH - margin) / calendar.MonthRows

	// Weekday header
	dc.SetFontFace(f.face(false, headerH*0.6))
	for i, letter := range calendar.WeekdayLetters {
		if i == 0 {
			dc.SetHexColor(pal.accent)
		} else {
			dc.SetHexColor(pal.foreground)
		}
		dc.DrawStringAnchored(letter, margin+colW*(float64(i)+0.5), headerTop+headerH/2, 0.5, 0.5)
	}

	gridTop := headerTop + headerH
	daySize := math.Min(rowH, colW) * 0.62
	single := f.face(true, daySize)
	half := f.face(true, daySize*0.55)

	for i, c := range grid {
		row, col := i/calendar.DaysPerWeek, i%calendar.DaysPerWeek
		x0 := margin + colW*float64(col)
		y0 := gridTop + rowH*float64(row)

		dc.SetHexColor(pal.rule)
		dc.SetLineWidth(2)
		dc.DrawLine(x0, y0, x0, y0+rowH)
		dc.Stroke()

		fg := pal.foreground
		if col == 0 {
			fg = pal.accent
		}
		dc.SetHexColor(fg)

		switch c.Kind {
		case calendar.CellDay:
			dc.SetFontFace(single)
			drawKerned(dc, c.Label(), c.Day, x0+colW/2, y0+rowH/2, daySize)
		case calendar.CellStacked:
			dc.SetFontFace(half)
			upper, lower := strconv.Itoa(c.Day), strconv.Itoa(c.Second)
			drawKerned(dc, upper, c.Day, x0+colW*0.3, y0+rowH*0.3, daySize*0.55)
			drawKerned(dc, lower, c.Second, x0+colW*0.7, y0+rowH*0.7, daySize*0.55)

			dc.SetHexColor(pal.rule)
			dc.SetLineWidth(3)
			dc.DrawLine(x0+colW*0.2, y0+rowH*0.8, x0+colW*0.8, y0+rowH*0.2)
			dc.Stroke()
		}
	}

	return dc, nil
}

// YearPoster draws all twelve month columns of year
func (f *Fonts) YearPoster(year int, grid calendar.YearGrid, opts PosterOptions) (*gg.Context, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	pal := opts.palette()
	w, h := float64(opts.Width), float64(opts.Height)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetHexColor(pal.background)
	dc.Clear()

	margin := w * 0.03
	titleSize := w * 0.06
	top := margin + titleSize*1.3

	dc.SetFontFace(f.face(true, titleSize))
	dc.SetHexColor(pal.foreground)
	dc.DrawStringAnchored(strconv.Itoa(year), w-margin, margin, 1, 1)

	// One label column plus twelve month columns, one header plus the day rows
	colW := (w - 2*margin) / float64(calendar.MonthsPerYear+1)
	rowH := (h - top - margin) / float64(calendar.YearRows+1)
	size := math.Min(rowH*0.8, colW*0.45)
	dc.SetFontFace(f.face(true, size))

	dc.SetHexColor(pal.foreground)
	for m, letter := range calendar.MonthLetters {
		dc.DrawStringAnchored(letter, margin+colW*(float64(m)+1.5), top+rowH/2, 0.5, 0.5)
	}

	for row := 0; row < calendar.YearRows; row++ {
		cy := top + rowH*(float64(row)+1.5)
		weekday := row % calendar.DaysPerWeek
		if weekday == 0 {
			dc.SetHexColor(pal.accent)
		} else {
			dc.SetHexColor(pal.foreground)
		}
		dc.DrawStringAnchored(calendar.WeekdayLetters[weekday], margin+colW*0.8, cy, 1, 0.5)

		for m := range grid {
			e := grid[m][row]
			if e == nil {
				continue
			}
			if e.IsMonday {
				dc.SetHexColor(pal.accent)
			} else {
				dc.SetHexColor(pal.foreground)
			}
			drawKerned(dc, strconv.Itoa(e.Day), e.Day, margin+colW*(float64(m)+1.5), cy, size)
		}
	}

	// Column rules
	dc.SetHexColor(pal.rule)
	dc.SetLineWidth(1)
	for m := 0; m <= calendar.MonthsPerYear; m++ {
		x := margin + colW*float64(m+1)
		dc.DrawLine(x, top, x, h-margin)
	}
	dc.Stroke()

	return dc, nil
}

// WriteMonthPoster renders the month poster of d as PNG to w
func (f *Fonts) WriteMonthPoster(w io.Writer, d calendar.Date, opts PosterOptions) error {
	grid, err := calendar.BuildMonth(d.Year, d.Month)
	if err != nil {
		return err
	}
	dc, err := f.MonthPoster(d, grid, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// WriteYearPoster renders the year poster as PNG to w
func (f *Fonts) WriteYearPoster(w io.Writer, year int, opts PosterOptions) error {
	dc, err := f.YearPoster(year, calendar.BuildYear(year), opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}
