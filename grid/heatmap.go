package grid

import (
	"os"
	"path"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"grid-dqn/types"
)

// VisitDataSet counts how often each cell was visited across the
// episodes of an experiment.
type VisitDataSet struct {
	Visits map[int]map[int]int
	Height int
	Width  int
}

var _ plotter.GridXYZ = &VisitDataSet{}

func (v *VisitDataSet) Dims() (int, int) {
	return v.Width, v.Height
}

func (v *VisitDataSet) Z(j, i int) float64 {
	return float64(v.Visits[i][j])
}

func (v *VisitDataSet) X(j int) float64 {
	return float64(j)
}

func (v *VisitDataSet) Y(i int) float64 {
	return float64(i)
}

func (v *VisitDataSet) Min() float64 {
	return 0.0
}

func (v *VisitDataSet) Max() float64 {
	max := 0
	for _, vals := range v.Visits {
		for _, count := range vals {
			if count > max {
				max = count
			}
		}
	}
	return float64(max)
}

// VisitAnalyzer accumulates state visit counts from the traces.
func VisitAnalyzer(height, width int) types.Analyzer {
	return func(run int, name string, traces []*types.Trace) types.DataSet {
		d := &VisitDataSet{
			Visits: make(map[int]map[int]int),
			Height: height,
			Width:  width,
		}
		for _, trace := range traces {
			for k := 0; k < trace.Len(); k++ {
				tr, ok := trace.Get(k)
				if !ok {
					continue
				}
				i, j := int(tr.NextState[0]), int(tr.NextState[1])
				if _, ok := d.Visits[i]; !ok {
					d.Visits[i] = make(map[int]int)
				}
				d.Visits[i][j] += 1
			}
		}
		return d
	}
}

// VisitComparator saves one heat map per experiment under the plot path.
func VisitComparator(plotPath string) types.Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.Mkdir(plotPath, os.ModePerm)
	}
	return func(run int, names []string, datasets []types.DataSet) {
		for i, name := range names {
			d := datasets[i].(*VisitDataSet)
			p := plot.New()
			p.Title.Text = name
			p.Add(plotter.NewHeatMap(d, palette.Heat(20, 1)))
			p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_"+name+"_visits.png"))
		}
	}
}
