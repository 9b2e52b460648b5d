package training

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// ClassMetrics holds per-class evaluation scores.
type ClassMetrics struct {
	Class     string  `yaml:"class"`
	Precision float64 `yaml:"precision"`
	Recall    float64 `yaml:"recall"`
	F1        float64 `yaml:"f1"`
	Support   int     `yaml:"support"`
}

// Report summarizes classifier performance on a held-out set.
type Report struct {
	Accuracy float64        `yaml:"accuracy"`
	Classes  []ClassMetrics `yaml:"classes"`
}

// Evaluate scores m against test.
func Evaluate(m *Model, test Dataset) Report {
	n := len(m.ClassNames)
	tp := make([]int, n)
	predicted := make([]int, n)
	support := make([]int, n)

	correct := 0
	for _, s := range test {
		p := m.Predict(s.Features)
		predicted[p]++
		support[s.Label]++
		if p == s.Label {
			tp[p]++
			correct++
		}
	}

	r := Report{Classes: make([]ClassMetrics, n)}
	if len(test) > 0 {
		r.Accuracy = float64(correct) / float64(len(test))
	}
	for c := 0; c < n; c++ {
		cm := ClassMetrics{Class: m.ClassNames[c], Support: support[c]}
		cm.Precision = ratio(tp[c], predicted[c])
		cm.Recall = ratio(tp[c], support[c])
		if cm.Precision+cm.Recall > 0 {
			cm.F1 = 2 * cm.Precision * cm.Recall / (cm.Precision + cm.Recall)
		}
		r.Classes[c] = cm
	}
	return r
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// Render writes the report as a text table.
func (r Report) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Class", "Precision", "Recall", "F1", "Support"})
	total := 0
	for _, c := range r.Classes {
		table.Append([]string{
			c.Class,
			fmt.Sprintf("%.2f", c.Precision),
			fmt.Sprintf("%.2f", c.Recall),
			fmt.Sprintf("%.2f", c.F1),
			fmt.Sprintf("%d", c.Support),
		})
		total += c.Support
	}
	table.SetFooter([]string{"Accuracy", "", "", fmt.Sprintf("%.3f", r.Accuracy), fmt.Sprintf("%d", total)})
	table.Render()
}
