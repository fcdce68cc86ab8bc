package types

// Transition is one environment step.
type Transition struct {
	State     []float64
	Action    int
	Reward    float64
	NextState []float64
	Done      bool
}

// Trace records the transitions of a single episode.
type Trace struct {
	transitions []Transition
	totalReward float64
}

func NewTrace() *Trace {
	return &Trace{
		transitions: make([]Transition, 0),
	}
}

func (t *Trace) Append(tr Transition) {
	t.transitions = append(t.transitions, tr)
	t.totalReward += tr.Reward
}

func (t *Trace) Len() int {
	return len(t.transitions)
}

func (t *Trace) Get(i int) (Transition, bool) {
	if i >= len(t.transitions) {
		return Transition{}, false
	}
	return t.transitions[i], true
}

// Return is the undiscounted sum of rewards of the episode.
func (t *Trace) Return() float64 {
	return t.totalReward
}
