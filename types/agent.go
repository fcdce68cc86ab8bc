package types

import (
	"fmt"

	"grid-dqn/replay"
)

type AgentConfig struct {
	Episodes int
	Horizon  int

	// replay and learning cadence
	BufferSize       int
	BatchSize        int
	LearningStart    int
	LearningFreq     int
	TargetUpdateFreq int

	Policy      Policy
	Environment Environment

	// OnEpisode, if set, is called after every episode with the trace
	// and the replay store state.
	OnEpisode func(episode int, trace *Trace, seen int, ready bool)
}

// Q-learning agent wiring a policy, an environment and the replay
// store. Actions and rewards are stored as scalars; states follow the
// environment's shape.
type Agent struct {
	config      *AgentConfig
	store       *replay.Store
	policy      Policy
	environment Environment

	traces []*Trace
	// steps counts environment interactions across episodes, driving
	// the learning and target-sync cadences
	steps int
}

// Instantiates a new Agent with a fresh replay store
func NewAgent(config *AgentConfig) (*Agent, error) {
	store, err := replay.New(config.BufferSize, config.Environment.StateShape(), replay.Shape{}, replay.Shape{})
	if err != nil {
		return nil, fmt.Errorf("error creating replay store: %s", err)
	}
	return &Agent{
		config:      config,
		store:       store,
		policy:      config.Policy,
		environment: config.Environment,
		traces:      make([]*Trace, config.Episodes),
	}, nil
}

// Store exposes the agent's replay store.
func (a *Agent) Store() *replay.Store {
	return a.store
}

// Run the agent for the configured number of episodes and horizon
func (a *Agent) Run() ([]*Trace, error) {
	for i := 0; i < a.config.Episodes; i++ {
		trace, err := a.runEpisode(i)
		if err != nil {
			return nil, err
		}
		a.traces[i] = trace
		if a.config.OnEpisode != nil {
			a.config.OnEpisode(i, trace, a.store.Seen(), a.store.ShouldSample())
		}
	}
	return a.traces, nil
}

// run a single episode and return the resulting trace
func (a *Agent) runEpisode(episode int) (*Trace, error) {
	state := a.environment.Reset()
	trace := NewTrace()

	for i := 0; i < a.config.Horizon; i++ {
		action := a.policy.NextAction(a.steps, state, a.environment.NumActions())
		nextState, reward, done := a.environment.Step(action)

		err := a.store.PushOne(state, []float64{float64(action)}, []float64{reward}, nextState, done)
		if err != nil {
			return nil, fmt.Errorf("error storing transition: %s", err)
		}
		trace.Append(Transition{
			State:     state,
			Action:    action,
			Reward:    reward,
			NextState: nextState,
			Done:      done,
		})
		a.steps++

		if a.steps >= a.config.LearningStart && a.steps%a.config.LearningFreq == 0 && a.store.ShouldSample() {
			batch, err := a.store.Sample(a.config.BatchSize)
			if err != nil {
				return nil, fmt.Errorf("error sampling minibatch: %s", err)
			}
			a.policy.Update(a.steps, batch)
		}
		if a.steps%a.config.TargetUpdateFreq == 0 {
			a.policy.SyncTarget()
		}

		if done {
			break
		}
		state = nextState
	}
	return trace, nil
}
