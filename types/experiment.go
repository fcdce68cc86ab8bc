package types

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"grid-dqn/util"
)

type Experiment struct {
	name   string
	config *AgentConfig
	Result []*Trace
	agent  *Agent

	// the caller's callback, kept aside so repeated runs do not stack
	// the progress wrapper
	onEpisode func(episode int, trace *Trace, seen int, ready bool)
}

func NewExperiment(name string, config *AgentConfig) *Experiment {
	return &Experiment{
		name:      name,
		config:    config,
		Result:    make([]*Trace, 0),
		onEpisode: config.OnEpisode,
	}
}

func (e *Experiment) Name() string {
	return e.name
}

func (e *Experiment) Run() error {
	fmt.Printf("Running Experiment: %s\n", e.name)
	e.config.Policy.Reset()
	agent, err := NewAgent(e.config)
	if err != nil {
		return err
	}
	e.agent = agent

	e.config.OnEpisode = func(i int, trace *Trace, seen int, ready bool) {
		fmt.Printf("\rExperiment: %s, Episode: %d/%d, Return: %.2f", e.name, i+1, e.config.Episodes, trace.Return())
		if e.onEpisode != nil {
			e.onEpisode(i, trace, seen, ready)
		}
	}
	e.Result, err = agent.Run()
	fmt.Println("")
	return err
}

type DataSet interface{}

type Analyzer func(run int, name string, traces []*Trace) DataSet

type Comparator func(run int, names []string, datasets []DataSet)

type ComparisonConfig struct {
	Runs       int
	RecordPath string
}

type Comparison struct {
	config      *ComparisonConfig
	Experiments []*Experiment
	analyzers   map[string]Analyzer
	comparators map[string]Comparator
}

func NewComparison(config *ComparisonConfig) *Comparison {
	return &Comparison{
		config:      config,
		Experiments: make([]*Experiment, 0),
		analyzers:   make(map[string]Analyzer),
		comparators: make(map[string]Comparator),
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

func (c *Comparison) AddAnalysis(name string, analyzer Analyzer, comparator Comparator) {
	c.analyzers[name] = analyzer
	c.comparators[name] = comparator
}

func (c *Comparison) Run() error {
	if c.config.RecordPath != "" {
		if _, err := os.Stat(c.config.RecordPath); err != nil {
			os.MkdirAll(c.config.RecordPath, os.ModePerm)
		}
	}
	for run := 0; run < c.config.Runs; run++ {
		datasets := make(map[string][]DataSet)
		names := make([]string, len(c.Experiments))
		for i, e := range c.Experiments {
			if err := e.Run(); err != nil {
				return fmt.Errorf("error running experiment %s: %s", e.name, err)
			}
			names[i] = e.name
			for aName, analyzer := range c.analyzers {
				datasets[aName] = append(datasets[aName], analyzer(run, e.name, e.Result))
			}
			if c.config.RecordPath != "" {
				c.recordReturns(run, e)
			}
		}
		for aName, comparator := range c.comparators {
			comparator(run, names, datasets[aName])
		}
	}
	return nil
}

// recordReturns appends the per-episode returns of the experiment to a
// text file under the record path.
func (c *Comparison) recordReturns(run int, e *Experiment) {
	lines := make([]string, len(e.Result))
	for i, trace := range e.Result {
		lines[i] = strconv.FormatFloat(trace.Return(), 'f', 4, 64)
	}
	savePath := path.Join(c.config.RecordPath, fmt.Sprintf("%d_%s_returns.txt", run, e.name))
	if err := util.WriteToFile(savePath, lines...); err != nil {
		fmt.Printf("error recording returns: %s\n", err)
	}
}
