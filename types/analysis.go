package types

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// EpisodeReturns collects the undiscounted return of every episode.
func EpisodeReturns() Analyzer {
	return func(run int, name string, traces []*Trace) DataSet {
		returns := make([]float64, len(traces))
		for i, trace := range traces {
			returns[i] = trace.Return()
		}
		return returns
	}
}

// SmoothedReturns collects episode returns averaged over a trailing
// window, which makes the learning curves readable.
func SmoothedReturns(window int) Analyzer {
	return func(run int, name string, traces []*Trace) DataSet {
		returns := make([]float64, len(traces))
		sum := 0.0
		for i, trace := range traces {
			sum += trace.Return()
			if i >= window {
				sum -= traces[i-window].Return()
				returns[i] = sum / float64(window)
			} else {
				returns[i] = sum / float64(i+1)
			}
		}
		return returns
	}
}

// ReturnPlotter draws one learning curve per experiment and saves the
// comparison under the plot path.
func ReturnPlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.Mkdir(plotPath, os.ModePerm)
	}
	return func(run int, names []string, datasets []DataSet) {
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Return"
		for i := 0; i < len(names); i++ {
			returns := datasets[i].([]float64)
			points := make(plotter.XYs, len(returns))
			for j, v := range returns {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
			if len(returns) > 0 {
				fmt.Printf("Final return: %.2f for experiment: %s\n", returns[len(returns)-1], names[i])
			}
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_scores.png"))
	}
}
