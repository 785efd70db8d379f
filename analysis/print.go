package analysis

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/zeu5/bandit-rl/core"
)

// PrintComparator writes the final and mean value of every curve as a table.
type PrintComparator struct {
	Writer io.Writer
	Label  string
}

var _ core.Comparator = &PrintComparator{}

func NewPrintComparator(w io.Writer, label string) *PrintComparator {
	return &PrintComparator{
		Writer: w,
		Label:  label,
	}
}

func (c *PrintComparator) Compare(names []string, datasets []core.DataSet) error {
	curves, err := asCurves(names, datasets)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(c.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tfinal\tmean\truns\n", c.Label)
	for i, curve := range curves {
		if curve == nil {
			fmt.Fprintf(tw, "%s\t-\t-\t0\n", names[i])
			continue
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%d\n", names[i], curve.Final(), curve.Mean(), curve.Runs)
	}
	return tw.Flush()
}
