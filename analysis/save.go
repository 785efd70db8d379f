package analysis

import (
	"path"

	"github.com/zeu5/bandit-rl/core"
	"github.com/zeu5/bandit-rl/util"
)

// SaveComparator writes every curve, keyed by experiment name, to
// <SavePath>/<Name>.json.
type SaveComparator struct {
	SavePath string
	Name     string
}

var _ core.Comparator = &SaveComparator{}

func NewSaveComparator(savePath, name string) *SaveComparator {
	return &SaveComparator{
		SavePath: savePath,
		Name:     name,
	}
}

func (s *SaveComparator) Compare(names []string, datasets []core.DataSet) error {
	curves, err := asCurves(names, datasets)
	if err != nil {
		return err
	}
	out := make(map[string]*Curve, len(curves))
	for i, c := range curves {
		if c != nil {
			out[names[i]] = c
		}
	}
	return util.SaveJson(s.File(), out)
}

func (s *SaveComparator) File() string {
	return path.Join(s.SavePath, s.Name+".json")
}
