package types

import (
	"testing"

	"grid-dqn/replay"
)

// countingEnv is a deterministic two-state environment: it alternates
// between states and ends every third step.
type countingEnv struct {
	step int
}

func (e *countingEnv) Reset() []float64 {
	e.step = 0
	return []float64{0}
}

func (e *countingEnv) Step(action int) ([]float64, float64, bool) {
	e.step++
	return []float64{float64(e.step % 2)}, 1, e.step%3 == 0
}

func (e *countingEnv) StateShape() replay.Shape {
	return replay.Shape{1}
}

func (e *countingEnv) NumActions() int {
	return 2
}

// recordingPolicy records how it was driven by the agent.
type recordingPolicy struct {
	actions int
	updates int
	syncs   int
}

func (p *recordingPolicy) NextAction(step int, state []float64, numActions int) int {
	p.actions++
	return 0
}

func (p *recordingPolicy) Update(step int, batch replay.Batch) float64 {
	p.updates++
	return 0
}

func (p *recordingPolicy) SyncTarget() {
	p.syncs++
}

func (p *recordingPolicy) Reset() {}

func TestAgentFillsStoreBeforeLearning(t *testing.T) {
	policy := &recordingPolicy{}
	config := &AgentConfig{
		Episodes:         4,
		Horizon:          10,
		BufferSize:       8,
		BatchSize:        4,
		LearningStart:    0,
		LearningFreq:     1,
		TargetUpdateFreq: 5,
		Policy:           policy,
		Environment:      &countingEnv{},
	}
	agent, err := NewAgent(config)
	if err != nil {
		t.Fatalf("failed to create agent: %v", err)
	}
	traces, err := agent.Run()
	if err != nil {
		t.Fatalf("agent run failed: %v", err)
	}
	// episodes end every 3 steps, so 4 episodes push 12 transitions
	if len(traces) != 4 {
		t.Fatalf("got %d traces, want 4", len(traces))
	}
	if !agent.Store().ShouldSample() {
		t.Error("store not ready after 12 pushed transitions with capacity 8")
	}
	if policy.actions != 12 {
		t.Errorf("policy picked %d actions, want 12", policy.actions)
	}
	// updates start only once the store is full: steps 8..12 with freq 1
	if policy.updates != 5 {
		t.Errorf("policy updated %d times, want 5", policy.updates)
	}
	if policy.syncs != 2 {
		t.Errorf("target synced %d times, want 2", policy.syncs)
	}
}

func TestAgentHonorsLearningStart(t *testing.T) {
	policy := &recordingPolicy{}
	config := &AgentConfig{
		Episodes:         2,
		Horizon:          3,
		BufferSize:       2,
		BatchSize:        2,
		LearningStart:    100,
		LearningFreq:     1,
		TargetUpdateFreq: 1000,
		Policy:           policy,
		Environment:      &countingEnv{},
	}
	agent, err := NewAgent(config)
	if err != nil {
		t.Fatalf("failed to create agent: %v", err)
	}
	if _, err := agent.Run(); err != nil {
		t.Fatalf("agent run failed: %v", err)
	}
	if policy.updates != 0 {
		t.Errorf("policy updated %d times before the warm-up ended", policy.updates)
	}
}

func TestAgentReportsEpisodes(t *testing.T) {
	episodes := 0
	lastReady := false
	config := &AgentConfig{
		Episodes:         3,
		Horizon:          4,
		BufferSize:       4,
		BatchSize:        2,
		LearningStart:    0,
		LearningFreq:     2,
		TargetUpdateFreq: 100,
		Policy:           &recordingPolicy{},
		Environment:      &countingEnv{},
		OnEpisode: func(episode int, trace *Trace, seen int, ready bool) {
			episodes++
			lastReady = ready
		},
	}
	agent, err := NewAgent(config)
	if err != nil {
		t.Fatalf("failed to create agent: %v", err)
	}
	if _, err := agent.Run(); err != nil {
		t.Fatalf("agent run failed: %v", err)
	}
	if episodes != 3 {
		t.Errorf("callback fired %d times, want 3", episodes)
	}
	if !lastReady {
		t.Error("store should be ready by the last episode")
	}
}
