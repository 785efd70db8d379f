package analysis

import (
	"fmt"
	"os"
	"path"

	"github.com/zeu5/bandit-rl/core"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotComparator draws one line per experiment into <SavePath>/<Name>.png.
type PlotComparator struct {
	SavePath string
	Name     string
	Title    string
	YLabel   string
}

var _ core.Comparator = &PlotComparator{}

func NewPlotComparator(savePath, name, yLabel string) *PlotComparator {
	return &PlotComparator{
		SavePath: savePath,
		Name:     name,
		Title:    "Comparison",
		YLabel:   yLabel,
	}
}

func (c *PlotComparator) Compare(names []string, datasets []core.DataSet) error {
	curves, err := asCurves(names, datasets)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.SavePath, 0755); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "Steps"
	p.Y.Label.Text = c.YLabel
	for i, curve := range curves {
		if curve == nil {
			continue
		}
		points := make(plotter.XYs, len(curve.Values))
		for j, v := range curve.Values {
			points[j] = plotter.XY{
				X: float64(j + 1),
				Y: v,
			}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("plotting %s: %w", names[i], err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(names[i], line)
	}
	p.Legend.Top = true
	return p.Save(10*vg.Inch, 6*vg.Inch, c.File())
}

func (c *PlotComparator) File() string {
	return path.Join(c.SavePath, c.Name+".png")
}
