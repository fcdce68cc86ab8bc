package policies

import (
	"testing"

	"grid-dqn/replay"
)

func greedyLinearQ(stateSize, numActions int) *LinearQ {
	return NewLinearQ(stateSize, numActions, 0.99, 10, ConstantSchedule(0), ConstantSchedule(0.05))
}

func TestNextActionGreedy(t *testing.T) {
	q := greedyLinearQ(2, 3)
	// make action 2 dominate for positive states
	q.weights.Set(2, 0, 1)
	q.weights.Set(2, 1, 1)
	for i := 0; i < 20; i++ {
		if a := q.NextAction(0, []float64{1, 1}, 3); a != 2 {
			t.Fatalf("greedy policy picked action %d, want 2", a)
		}
	}
}

func TestUpdateMovesValueTowardTarget(t *testing.T) {
	q := greedyLinearQ(2, 2)
	state := []float64{1, 0}
	batch := replay.Batch{
		N:          1,
		States:     state,
		Actions:    []float64{1},
		Rewards:    []float64{1},
		NextStates: []float64{0, 1},
		Dones:      []float64{1},
	}
	before := q.value(q.weights, state, 1)
	var loss float64
	for i := 0; i < 100; i++ {
		loss = q.Update(0, batch)
	}
	after := q.value(q.weights, state, 1)
	if after <= before {
		t.Errorf("value did not move toward the target: before %v after %v", before, after)
	}
	if loss >= 1 {
		t.Errorf("loss did not shrink after repeated updates: %v", loss)
	}
}

func TestTargetWeightsSyncOnDemand(t *testing.T) {
	q := greedyLinearQ(2, 2)
	batch := replay.Batch{
		N:          1,
		States:     []float64{1, 1},
		Actions:    []float64{0},
		Rewards:    []float64{1},
		NextStates: []float64{1, 1},
		Dones:      []float64{0},
	}
	q.Update(0, batch)
	if v := q.value(q.target, []float64{1, 1}, 0); v != 0 {
		t.Errorf("target weights changed before sync: %v", v)
	}
	q.SyncTarget()
	want := q.value(q.weights, []float64{1, 1}, 0)
	if v := q.value(q.target, []float64{1, 1}, 0); v != want {
		t.Errorf("target value %v after sync, want %v", v, want)
	}
}

func TestResetZeroesWeights(t *testing.T) {
	q := greedyLinearQ(2, 2)
	q.weights.Set(0, 0, 3)
	q.SyncTarget()
	q.Reset()
	if v := q.value(q.weights, []float64{1, 0}, 0); v != 0 {
		t.Errorf("weights not zeroed by reset: %v", v)
	}
	if v := q.value(q.target, []float64{1, 0}, 0); v != 0 {
		t.Errorf("target not zeroed by reset: %v", v)
	}
}
