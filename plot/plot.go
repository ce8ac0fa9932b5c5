// Package plot renders measurement series as scatter figures with
// optional error bars and an overlaid fitted line.
//
// The package is a thin layer over gonum.org/v1/plot; it composes the
// plotters the library's result records map onto and leaves styling to
// the underlying Plot, which remains accessible for customization:
//
//	fig, err := plot.Scatter(x, y,
//	    plot.WithYErrors(us),
//	    plot.WithFitLine(res),
//	    plot.WithLabels("U [V]", "I [mA]"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = fig.Save("fit.png")
package plot

import (
	"fmt"
	"io"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/arloliu/labstat/check"
	"github.com/arloliu/labstat/internal/options"
	"github.com/arloliu/labstat/regress"
)

// Figure wraps a composed plot ready to be saved or written out.
type Figure struct {
	plot   *gplot.Plot
	width  vg.Length
	height vg.Length
}

type config struct {
	title     string
	xLabel    string
	yLabel    string
	yErrors   []float64
	fit       *regress.Result
	grid      bool
	legend    bool
	dataLabel string
	fitLabel  string
	width     vg.Length
	height    vg.Length
}

// Option is a functional option for Scatter.
type Option = options.Option[*config]

// WithTitle sets the figure title.
func WithTitle(title string) Option {
	return options.NoError(func(cfg *config) {
		cfg.title = title
	})
}

// WithLabels sets the axis labels.
func WithLabels(xLabel, yLabel string) Option {
	return options.NoError(func(cfg *config) {
		cfg.xLabel = xLabel
		cfg.yLabel = yLabel
	})
}

// WithYErrors draws symmetric error bars on the y values. The series
// must match the data length and contain no negative uncertainty.
func WithYErrors(uncertainties []float64) Option {
	return func(cfg *config) error {
		for i, u := range uncertainties {
			if u < 0 {
				return fmt.Errorf("%w: error bar at index %d must be >= 0, got %v",
					check.ErrDegenerateInput, i, u)
			}
		}
		cfg.yErrors = uncertainties

		return nil
	}
}

// WithFitLine overlays the fitted line of a regression result across
// the x range of the data.
func WithFitLine(res *regress.Result) Option {
	return func(cfg *config) error {
		if res == nil {
			return fmt.Errorf("%w: nil regression result", check.ErrValidation)
		}
		cfg.fit = res

		return nil
	}
}

// WithGrid toggles the background grid (on by default).
func WithGrid(enabled bool) Option {
	return options.NoError(func(cfg *config) {
		cfg.grid = enabled
	})
}

// WithLegend enables the legend with the given entry names.
func WithLegend(dataLabel, fitLabel string) Option {
	return options.NoError(func(cfg *config) {
		cfg.legend = true
		cfg.dataLabel = dataLabel
		cfg.fitLabel = fitLabel
	})
}

// WithSize sets the saved figure size in centimeters. The default is
// 16x12 cm.
func WithSize(widthCm, heightCm float64) Option {
	return func(cfg *config) error {
		if widthCm <= 0 || heightCm <= 0 {
			return fmt.Errorf("%w: figure size must be positive, got %gx%g",
				check.ErrValidation, widthCm, heightCm)
		}
		cfg.width = vg.Length(widthCm) * vg.Centimeter
		cfg.height = vg.Length(heightCm) * vg.Centimeter

		return nil
	}
}

// Scatter builds a scatter figure of the paired samples.
func Scatter(x, y []float64, opts ...Option) (*Figure, error) {
	if err := check.Paired(x, y); err != nil {
		return nil, err
	}

	cfg := config{
		grid:   true,
		width:  16 * vg.Centimeter,
		height: 12 * vg.Centimeter,
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.yErrors != nil {
		if err := check.SameLength(x, cfg.yErrors); err != nil {
			return nil, fmt.Errorf("error bars: %w", err)
		}
	}

	p := gplot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = cfg.xLabel
	p.Y.Label.Text = cfg.yLabel
	if cfg.grid {
		p.Add(plotter.NewGrid())
	}

	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i] = plotter.XY{X: x[i], Y: y[i]}
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to build scatter: %w", err)
	}
	scatter.GlyphStyle.Color = plotutil.Color(0)
	p.Add(scatter)

	if cfg.yErrors != nil {
		bars, err := plotter.NewYErrorBars(errorData{XYs: xys, YErrors: symmetric(cfg.yErrors)})
		if err != nil {
			return nil, fmt.Errorf("failed to build error bars: %w", err)
		}
		p.Add(bars)
	}

	var fitLine *plotter.Line
	if cfg.fit != nil {
		minX, maxX := x[0], x[0]
		for _, xi := range x[1:] {
			if xi < minX {
				minX = xi
			}
			if xi > maxX {
				maxX = xi
			}
		}

		// A straight line only needs its endpoints.
		fitXYs := plotter.XYs{
			{X: minX, Y: cfg.fit.PredictY(minX)},
			{X: maxX, Y: cfg.fit.PredictY(maxX)},
		}
		fitLine, err = plotter.NewLine(fitXYs)
		if err != nil {
			return nil, fmt.Errorf("failed to build fit line: %w", err)
		}
		fitLine.LineStyle.Width = vg.Points(1.5)
		fitLine.LineStyle.Color = plotutil.Color(1)
		p.Add(fitLine)
	}

	if cfg.legend {
		p.Legend.Add(cfg.dataLabel, scatter)
		if fitLine != nil {
			p.Legend.Add(cfg.fitLabel, fitLine)
		}
		p.Legend.Top = true
	}

	return &Figure{plot: p, width: cfg.width, height: cfg.height}, nil
}

// Plot exposes the underlying gonum plot for custom styling.
func (f *Figure) Plot() *gplot.Plot {
	return f.plot
}

// Save writes the figure to path; the image format is inferred from
// the file extension (png, svg, pdf, ...).
func (f *Figure) Save(path string) error {
	if err := f.plot.Save(f.width, f.height, path); err != nil {
		return fmt.Errorf("failed to save figure: %w", err)
	}

	return nil
}

// WriteTo renders the figure to w in the given image format
// ("png", "svg", ...).
func (f *Figure) WriteTo(w io.Writer, imageFormat string) error {
	wt, err := f.plot.WriterTo(f.width, f.height, imageFormat)
	if err != nil {
		return fmt.Errorf("failed to render figure: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write figure: %w", err)
	}

	return nil
}

// errorData pairs data points with their y error bars for the gonum
// error-bar plotter.
type errorData struct {
	plotter.XYs
	plotter.YErrors
}

func symmetric(us []float64) plotter.YErrors {
	errs := make(plotter.YErrors, len(us))
	for i, u := range us {
		errs[i].Low = u
		errs[i].High = u
	}

	return errs
}
