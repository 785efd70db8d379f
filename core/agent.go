package core

// Agent picks arms and learns from the rewards they return.
type Agent interface {
	// Act returns the next arm to pull, always in [0, k).
	Act() int
	// Update reports the reward obtained from action.
	Update(action int, reward float64) error
	// Reset clears everything learned so far.
	Reset()
}

type AgentConstructor interface {
	NewAgent() (Agent, error)
}
