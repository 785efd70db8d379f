package analysis

import (
	"errors"
	"fmt"

	"github.com/zeu5/bandit-rl/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrUnexpectedDataSet = errors.New("unexpected dataset")

// Curve is a per-step value averaged over runs.
type Curve struct {
	Values []float64 `json:"values"`
	Runs   int       `json:"runs"`
}

// Final returns the value at the last step.
func (c *Curve) Final() float64 {
	if len(c.Values) == 0 {
		return 0
	}
	return c.Values[len(c.Values)-1]
}

// Mean returns the average value over all steps.
func (c *Curve) Mean() float64 {
	if len(c.Values) == 0 {
		return 0
	}
	return stat.Mean(c.Values, nil)
}

// curveAccumulator sums one series per run and averages them on demand.
type curveAccumulator struct {
	sums []float64
	runs int
}

func (a *curveAccumulator) add(series []float64) {
	if len(series) > len(a.sums) {
		a.sums = append(a.sums, make([]float64, len(series)-len(a.sums))...)
	}
	floats.Add(a.sums[:len(series)], series)
	a.runs++
}

func (a *curveAccumulator) curve() *Curve {
	out := &Curve{
		Values: make([]float64, len(a.sums)),
		Runs:   a.runs,
	}
	if a.runs > 0 {
		floats.ScaleTo(out.Values, 1/float64(a.runs), a.sums)
	}
	return out
}

func (a *curveAccumulator) reset() {
	a.sums = nil
	a.runs = 0
}

func asCurves(names []string, datasets []core.DataSet) ([]*Curve, error) {
	curves := make([]*Curve, len(datasets))
	for i, ds := range datasets {
		if ds == nil {
			continue
		}
		c, ok := ds.(*Curve)
		if !ok {
			return nil, fmt.Errorf("%w: %T for experiment %s", ErrUnexpectedDataSet, ds, names[i])
		}
		curves[i] = c
	}
	return curves, nil
}
