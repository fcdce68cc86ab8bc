package policies

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"grid-dqn/replay"
	"grid-dqn/types"
)

// LinearQ is an epsilon-greedy policy over a linear Q-function with a
// bias feature. It keeps a separate target copy of the weights that the
// TD targets are computed against; the agent syncs it on a cadence.
type LinearQ struct {
	stateSize  int
	numActions int
	discount   float64
	clipVal    float64

	epsilon *LinearSchedule
	lr      *LinearSchedule

	weights *mat.Dense
	target  *mat.Dense
	rand    *rand.Rand
}

var _ types.Policy = &LinearQ{}

func NewLinearQ(stateSize, numActions int, discount, clipVal float64, epsilon, lr *LinearSchedule) *LinearQ {
	// one extra column for the bias feature
	featDim := stateSize + 1
	return &LinearQ{
		stateSize:  stateSize,
		numActions: numActions,
		discount:   discount,
		clipVal:    clipVal,
		epsilon:    epsilon,
		lr:         lr,
		weights:    mat.NewDense(numActions, featDim, nil),
		target:     mat.NewDense(numActions, featDim, nil),
		rand:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (q *LinearQ) Reset() {
	q.weights.Zero()
	q.target.Zero()
}

func (q *LinearQ) NextAction(step int, state []float64, numActions int) int {
	if q.rand.Float64() < q.epsilon.Value(step) {
		return q.rand.Intn(numActions)
	}
	best, _ := q.argmax(q.weights, state)
	return best
}

// Update applies one SGD step of the TD(0) objective on the minibatch
// and returns the mean squared TD error.
func (q *LinearQ) Update(step int, batch replay.Batch) float64 {
	lr := q.lr.Value(step)
	loss := 0.0
	for i := 0; i < batch.N; i++ {
		state := batch.State(i)
		action := int(batch.Action(i)[0])
		reward := batch.Reward(i)[0]

		target := reward
		if !batch.Done(i) {
			_, nextVal := q.argmax(q.target, batch.NextState(i))
			target += q.discount * nextVal
		}
		td := target - q.value(q.weights, state, action)
		loss += td * td
		if q.clipVal > 0 {
			if td > q.clipVal {
				td = q.clipVal
			} else if td < -q.clipVal {
				td = -q.clipVal
			}
		}

		scale := lr * td / float64(batch.N)
		for j, x := range state {
			q.weights.Set(action, j, q.weights.At(action, j)+scale*x)
		}
		// bias feature is always 1
		q.weights.Set(action, q.stateSize, q.weights.At(action, q.stateSize)+scale)
	}
	return loss / float64(batch.N)
}

// SyncTarget copies the online weights into the target copy.
func (q *LinearQ) SyncTarget() {
	q.target.Copy(q.weights)
}

func (q *LinearQ) value(w *mat.Dense, state []float64, action int) float64 {
	v := w.At(action, q.stateSize) // bias
	for j, x := range state {
		v += w.At(action, j) * x
	}
	return v
}

func (q *LinearQ) argmax(w *mat.Dense, state []float64) (int, float64) {
	best := 0
	bestVal := q.value(w, state, 0)
	for a := 1; a < q.numActions; a++ {
		if v := q.value(w, state, a); v > bestVal {
			best = a
			bestVal = v
		}
	}
	return best, bestVal
}
