package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/citytour/builder"
	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/order"
	"github.com/katalvlaran/citytour/tsp"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// solverGrid names the grid solver, which Solve does not route.
const solverGrid = "grid"

// defaultSolvers mirrors the order the solvers are usually compared in.
var defaultSolvers = []string{"naive", "sorted", "greedy", "bruteforce", solverGrid}

// Instance is the YAML form of a run. Explicit cities win over random
// generation, which wins over the grid shape.
type Instance struct {
	Cities   [][2]uint8 `yaml:"cities,omitempty"`
	Grid     string     `yaml:"grid,omitempty"`
	Random   int        `yaml:"random,omitempty"`
	MaxCoord uint8      `yaml:"maxCoord,omitempty"`
	Seed     int64      `yaml:"seed,omitempty"`
	Entrance [2]uint8   `yaml:"entrance"`
	Exit     [2]uint8   `yaml:"exit"`
	Solvers  []string   `yaml:"solvers,omitempty"`
	Order    string     `yaml:"order,omitempty"`
}

// options holds the raw command-line flags.
type options struct {
	configPath string
	grid       string
	random     int
	maxCoord   uint8
	seed       int64
	entrance   string
	exit       string
	solvers    []string
	order      string
	withDist   bool
	verbose    bool
}

func addFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.configPath, "config", "c", "", "YAML instance file")
	fs.StringVarP(&o.grid, "grid", "g", "4x3", "complete grid WIDTHxHEIGHT")
	fs.IntVarP(&o.random, "random", "r", 0, "generate N random cities instead of a grid")
	fs.Uint8Var(&o.maxCoord, "max-coord", 20, "largest random coordinate")
	fs.Int64Var(&o.seed, "seed", 0, "random seed (0 selects the default seed)")
	fs.StringVar(&o.entrance, "entrance", "1,1", "grid solver entrance X,Y")
	fs.StringVar(&o.exit, "exit", "1,2", "grid solver exit X,Y")
	fs.StringSliceVarP(&o.solvers, "solvers", "s", defaultSolvers, "solvers to run, in order")
	fs.StringVarP(&o.order, "order", "o", "", "ordering policy applied before solving")
	fs.BoolVar(&o.withDist, "with-dist", false, "print edge lengths in the tour list")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
}

// instance merges the config file, if any, with the flags. Flags set
// explicitly on the command line override the file.
func (o *options) instance(fs *pflag.FlagSet) (Instance, error) {
	var (
		inst = Instance{
			Grid:     o.grid,
			Random:   o.random,
			MaxCoord: o.maxCoord,
			Seed:     o.seed,
			Solvers:  o.solvers,
			Order:    o.order,
		}
		err error
	)
	if inst.Entrance, err = parsePair(o.entrance); err != nil {
		return Instance{}, errors.Wrap(err, "entrance")
	}
	if inst.Exit, err = parsePair(o.exit); err != nil {
		return Instance{}, errors.Wrap(err, "exit")
	}
	if o.configPath == "" {
		return inst, nil
	}

	file, err := loadInstance(o.configPath, inst)
	if err != nil {
		return Instance{}, err
	}
	overrides := map[string]func(){
		"grid":      func() { file.Grid = inst.Grid },
		"random":    func() { file.Random = inst.Random },
		"max-coord": func() { file.MaxCoord = inst.MaxCoord },
		"seed":      func() { file.Seed = inst.Seed },
		"entrance":  func() { file.Entrance = inst.Entrance },
		"exit":      func() { file.Exit = inst.Exit },
		"solvers":   func() { file.Solvers = inst.Solvers },
		"order":     func() { file.Order = inst.Order },
	}
	for name, apply := range overrides {
		if fs.Changed(name) {
			apply()
		}
	}

	return file, nil
}

// loadInstance decodes the YAML file at path over defaults.
func loadInstance(path string, defaults Instance) (Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Instance{}, errors.Wrapf(err, "reading %s", path)
	}
	inst := defaults
	if err = yaml.Unmarshal(data, &inst); err != nil {
		return Instance{}, errors.Wrapf(err, "decoding %s", path)
	}

	return inst, nil
}

// plan is a validated, ready-to-run instance.
type plan struct {
	cities         []geom.City
	entrance, exit geom.City
	solvers        []string
	policy         order.Policy
}

// resolve builds the city set and validates solver and policy names.
func (inst Instance) resolve() (plan, error) {
	var (
		p   plan
		err error
	)
	switch {
	case len(inst.Cities) > 0:
		p.cities = make([]geom.City, len(inst.Cities))
		for i, xy := range inst.Cities {
			p.cities[i] = geom.NewCity(xy[0], xy[1])
		}
	case inst.Random > 0:
		p.cities, err = builder.Random(inst.Random,
			builder.WithSeed(inst.Seed), builder.WithMaxCoord(inst.MaxCoord))
	default:
		var w, h uint8
		if w, h, err = parseGrid(inst.Grid); err != nil {
			return plan{}, err
		}
		p.cities, err = builder.Grid(w, h)
	}
	if err != nil {
		return plan{}, errors.Wrap(err, "building cities")
	}

	for _, name := range inst.Solvers {
		if name == solverGrid {
			continue
		}
		if _, err = tsp.ParseAlgorithm(name); err != nil {
			return plan{}, errors.Wrapf(err, "solver %q", name)
		}
	}
	p.solvers = inst.Solvers

	if inst.Order != "" {
		var ok bool
		if p.policy, ok = order.Policies[inst.Order]; !ok {
			return plan{}, errors.Errorf("unknown ordering policy %q", inst.Order)
		}
	}

	p.entrance = geom.NewCity(inst.Entrance[0], inst.Entrance[1])
	p.exit = geom.NewCity(inst.Exit[0], inst.Exit[1])

	return p, nil
}

// parsePair parses "X,Y" into two 8-bit coordinates.
func parsePair(s string) ([2]uint8, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]uint8{}, errors.Errorf("want X,Y, got %q", s)
	}
	var out [2]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return [2]uint8{}, errors.Wrapf(err, "coordinate %q", part)
		}
		out[i] = uint8(v)
	}

	return out, nil
}

// parseGrid parses "WIDTHxHEIGHT".
func parseGrid(s string) (uint8, uint8, error) {
	pair, err := parsePair(strings.Replace(strings.ToLower(s), "x", ",", 1))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "grid %q", s)
	}

	return pair[0], pair[1], nil
}
