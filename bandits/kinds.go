package bandits

import (
	"fmt"
	"strings"

	"github.com/zeu5/bandit-rl/core"
	"github.com/zeu5/bandit-rl/util"
)

const (
	KindStatic     = "static"
	KindNormal     = "normal"
	KindRandomWalk = "random-walk"
)

func Kinds() []string {
	return []string{KindStatic, KindNormal, KindRandomWalk}
}

// NewConstructor returns the constructor for the named kind of bandit.
// rewards is only used by static bandits.
func NewConstructor(kind string, k int, rewards []float64, seed uint64) (core.BanditConstructor, error) {
	if err := core.ValidateK(k); err != nil {
		return nil, err
	}
	switch kind {
	case KindStatic:
		return NewStaticConstructor(k, rewards, seed), nil
	case KindNormal:
		return NewNormalConstructor(k, seed), nil
	case KindRandomWalk:
		return NewRandomWalkConstructor(k, seed), nil
	}
	return nil, fmt.Errorf("%w: unknown bandit %q, expected one of %s", core.ErrInvalidArgument, kind, strings.Join(Kinds(), ", "))
}

// ParseRewards parses a comma separated list of rewards. An empty string
// yields nil, meaning the rewards should be drawn at random.
func ParseRewards(s string) ([]float64, error) {
	rewards, err := util.ParseFloats(s)
	if err != nil {
		return nil, fmt.Errorf("%w: rewards: %v", core.ErrInvalidArgument, err)
	}
	return rewards, nil
}
