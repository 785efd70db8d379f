package policies

import (
	"fmt"

	"github.com/zeu5/bandit-rl/core"
	"github.com/zeu5/bandit-rl/util"
	erand "golang.org/x/exp/rand"
)

// ValueTable holds one reward estimate per arm. Its length never changes.
type ValueTable struct {
	values     []float64
	startValue float64

	rand *erand.Rand
}

func NewValueTable(k int, startValue float64, opts ...Option) (*ValueTable, error) {
	o := buildOptions(opts)
	return newValueTable(k, startValue, erand.New(o.src))
}

func newValueTable(k int, startValue float64, rand *erand.Rand) (*ValueTable, error) {
	if err := core.ValidateK(k); err != nil {
		return nil, err
	}
	if !util.IsFinite(startValue) {
		return nil, fmt.Errorf("%w: start value must be finite, got %v", core.ErrInvalidArgument, startValue)
	}
	t := &ValueTable{
		values:     make([]float64, k),
		startValue: startValue,
		rand:       rand,
	}
	t.Reset()
	return t, nil
}

func (t *ValueTable) Len() int {
	return len(t.values)
}

func (t *ValueTable) StartValue() float64 {
	return t.startValue
}

func (t *ValueTable) Get(action int) (float64, error) {
	if err := t.check(action); err != nil {
		return 0, err
	}
	return t.values[action], nil
}

// set is reserved to the owning agent.
func (t *ValueTable) set(action int, val float64) error {
	if err := t.check(action); err != nil {
		return err
	}
	if !util.IsFinite(val) {
		return fmt.Errorf("%w: table values must be finite, got %v", core.ErrInvalidArgument, val)
	}
	t.values[action] = val
	return nil
}

// Values returns a copy of the estimates.
func (t *ValueTable) Values() []float64 {
	return util.CopyFloatSlice(t.values)
}

// Max returns the arm with the highest estimate. Ties are broken uniformly at
// random among the tied arms.
func (t *ValueTable) Max() (int, float64) {
	maxActions := util.MaxIndices(t.values)
	action := maxActions[t.rand.Intn(len(maxActions))]
	return action, t.values[action]
}

// Random returns an arm drawn uniformly from [0, k).
func (t *ValueTable) Random() int {
	return t.rand.Intn(len(t.values))
}

// Reset sets every estimate back to the start value.
func (t *ValueTable) Reset() {
	for i := range t.values {
		t.values[i] = t.startValue
	}
}

func (t *ValueTable) check(action int) error {
	if action < 0 || action >= len(t.values) {
		return fmt.Errorf("%w: action %d with %d arms", core.ErrIndexOutOfRange, action, len(t.values))
	}
	return nil
}
