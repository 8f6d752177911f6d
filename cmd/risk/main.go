// risk reads a competing-risks scenario in YAML from a file (or stdin)
// and describes the composed distribution.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/aclements/go-riskmath/dist"
	"github.com/aclements/go-riskmath/prob"
	"github.com/aclements/go-riskmath/risks"
)

type scenario struct {
	Mode        string      `yaml:"mode"`
	Dependency  string      `yaml:"dependency"`
	Correlation [][]float64 `yaml:"correlation"`
	Marginals   []marginal  `yaml:"marginals"`
	Bins        int         `yaml:"bins"`
	Samples     int         `yaml:"samples"`
	Seed        uint64      `yaml:"seed"`
}

type marginal struct {
	Kind  string  `yaml:"kind"`
	Mu    float64 `yaml:"mu"`
	Sigma float64 `yaml:"sigma"`
	Rate  float64 `yaml:"rate"`
	Shape float64 `yaml:"shape"`
	Scale float64 `yaml:"scale"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

func main() {
	var in io.Reader = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		in = f
	}
	data, err := io.ReadAll(in)
	if err != nil {
		fatal(err)
	}

	sc, err := parseScenario(data)
	if err != nil {
		fatal(err)
	}
	d, err := buildRisks(sc)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("K %d  mode %s  dependency %s\n",
		len(sc.Marginals), sc.Mode, sc.Dependency)
	fmt.Printf("mean %.6g  std dev %.6g  variance %.6g\n",
		d.Mean(), d.StdDev(), d.Variance())
	fmt.Println()

	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Printf("%8s %.6g\n", label, d.InvCDF(float64(p)/100))
	}
	fmt.Println()

	bins := sc.Bins
	if bins <= 0 {
		bins = 10
	}
	printIncidence(d.Incidence(bins))

	if sc.Samples > 0 {
		fmt.Println()
		for _, x := range d.Rand(sc.Samples, sc.Seed) {
			fmt.Printf("%g\n", x)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func parseScenario(data []byte) (*scenario, error) {
	sc := new(scenario)
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	if len(sc.Marginals) == 0 {
		return nil, fmt.Errorf("scenario has no marginals")
	}
	return sc, nil
}

func buildRisks(sc *scenario) (*risks.CompetingRisks, error) {
	marginals := make([]dist.Dist, len(sc.Marginals))
	for i, m := range sc.Marginals {
		d, err := buildMarginal(m)
		if err != nil {
			return nil, fmt.Errorf("marginal %d: %w", i, err)
		}
		marginals[i] = d
	}

	model, err := buildModel(sc)
	if err != nil {
		return nil, err
	}

	var mode risks.Mode
	switch strings.ToLower(sc.Mode) {
	case "", "minimum", "min":
		mode = risks.Minimum
	case "maximum", "max":
		mode = risks.Maximum
	default:
		return nil, fmt.Errorf("unknown mode %q", sc.Mode)
	}

	return risks.New(marginals, model, mode)
}

func buildMarginal(m marginal) (dist.Dist, error) {
	switch strings.ToLower(m.Kind) {
	case "normal":
		return dist.Normal{Mu: m.Mu, Sigma: m.Sigma}, nil
	case "exponential":
		return dist.Exponential{Rate: m.Rate}, nil
	case "weibull":
		return dist.Weibull{K: m.Shape, Lambda: m.Scale}, nil
	case "lognormal":
		return dist.LogNormal{Mu: m.Mu, Sigma: m.Sigma}, nil
	case "uniform":
		return dist.Uniform{Min: m.Min, Max: m.Max}, nil
	}
	return nil, fmt.Errorf("unknown distribution kind %q", m.Kind)
}

func buildModel(sc *scenario) (prob.Model, error) {
	switch strings.ToLower(sc.Dependency) {
	case "", "independent":
		return prob.Model{}, nil
	case "positive":
		return prob.Model{Dep: prob.PerfectlyPositive}, nil
	case "negative":
		return prob.Model{Dep: prob.PerfectlyNegative}, nil
	case "correlated":
		n := len(sc.Marginals)
		if len(sc.Correlation) != n {
			return prob.Model{}, fmt.Errorf("correlation matrix has %d rows, need %d", len(sc.Correlation), n)
		}
		c := mat.NewSymDense(n, nil)
		for i, row := range sc.Correlation {
			if len(row) != n {
				return prob.Model{}, fmt.Errorf("correlation row %d has %d entries, need %d", i, len(row), n)
			}
			for j := i; j < n; j++ {
				c.SetSym(i, j, row[j])
			}
		}
		return prob.Model{Dep: prob.Correlated, Corr: c}, nil
	}
	return prob.Model{}, fmt.Errorf("unknown dependency %q", sc.Dependency)
}

func printIncidence(t *risks.IncidenceTable) {
	fmt.Printf("%10s", "t")
	for j := range t.CIF {
		fmt.Printf("  %10s", fmt.Sprintf("cause %d", j))
	}
	fmt.Println()
	for b := range t.CIF[0] {
		fmt.Printf("%10.4g", t.Edges[b+1])
		for j := range t.CIF {
			fmt.Printf("  %10.4g", t.CIF[j][b])
		}
		fmt.Println()
	}
}
