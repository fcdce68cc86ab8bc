package replay

// Batch holds n transitions as flat slices, one per field.
// Each field stores its per-example tensors flattened and concatenated,
// so States has N*|S| elements, Actions N*|A|, Rewards N*|R| and
// Dones N elements (0.0 or 1.0).
type Batch struct {
	N          int
	States     []float64
	Actions    []float64
	Rewards    []float64
	NextStates []float64
	Dones      []float64
}

// Single wraps one transition as a batch of size 1.
func Single(state, action, reward, nextState []float64, done bool) Batch {
	d := 0.0
	if done {
		d = 1.0
	}
	return Batch{
		N:          1,
		States:     state,
		Actions:    action,
		Rewards:    reward,
		NextStates: nextState,
		Dones:      []float64{d},
	}
}

// State returns the i-th state tensor of the batch, flattened.
func (b Batch) State(i int) []float64 {
	size := len(b.States) / b.N
	return b.States[i*size : (i+1)*size]
}

// Action returns the i-th action tensor of the batch, flattened.
func (b Batch) Action(i int) []float64 {
	size := len(b.Actions) / b.N
	return b.Actions[i*size : (i+1)*size]
}

// Reward returns the i-th reward tensor of the batch, flattened.
func (b Batch) Reward(i int) []float64 {
	size := len(b.Rewards) / b.N
	return b.Rewards[i*size : (i+1)*size]
}

// NextState returns the i-th next-state tensor of the batch, flattened.
func (b Batch) NextState(i int) []float64 {
	size := len(b.NextStates) / b.N
	return b.NextStates[i*size : (i+1)*size]
}

// Done reports whether the i-th transition is terminal.
func (b Batch) Done(i int) bool {
	return b.Dones[i] != 0
}
