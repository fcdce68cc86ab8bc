package policies

import (
	"time"

	"golang.org/x/exp/rand"

	"grid-dqn/replay"
	"grid-dqn/types"
)

// Random picks uniformly random actions and never learns. Baseline for
// comparisons.
type Random struct {
	rand *rand.Rand
}

var _ types.Policy = &Random{}

func NewRandom() *Random {
	return &Random{
		rand: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (r *Random) Reset() {

}

func (r *Random) NextAction(step int, state []float64, numActions int) int {
	return r.rand.Intn(numActions)
}

func (r *Random) Update(step int, batch replay.Batch) float64 {
	return 0
}

func (r *Random) SyncTarget() {

}
