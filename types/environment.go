package types

import "grid-dqn/replay"

// Environment is a discrete-action environment emitting flat numeric
// state vectors, the observation format the replay store consumes.
type Environment interface {
	// Reset starts a new episode and returns the initial state.
	Reset() []float64
	// Step applies the action and returns the next state, the reward
	// and whether the episode ended.
	Step(action int) ([]float64, float64, bool)
	// StateShape is the shape of the emitted state vectors.
	StateShape() replay.Shape
	// NumActions is the size of the discrete action set.
	NumActions() int
}

// Policy selects actions and learns from replayed minibatches.
type Policy interface {
	// NextAction picks an action for the state at the given global step.
	NextAction(step int, state []float64, numActions int) int
	// Update applies one learning step on a sampled minibatch and
	// returns the training loss.
	Update(step int, batch replay.Batch) float64
	// SyncTarget copies the online parameters into the target copy.
	SyncTarget()
	Reset()
}
