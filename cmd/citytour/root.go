package main

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/citytour/render"
	"github.com/katalvlaran/citytour/tsp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:          "citytour",
		Short:        "Compare travelling-salesman tour lengths over a small city set.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.verbose {
				log.SetLevel(log.DebugLevel)
			}
			inst, err := o.instance(cmd.Flags())
			if err != nil {
				return err
			}
			p, err := inst.resolve()
			if err != nil {
				return err
			}

			return run(cmd.OutOrStdout(), p, o.withDist)
		},
	}
	addFlags(cmd.Flags(), &o)

	return cmd
}

// run applies the ordering policy, then runs each solver in turn on the same
// tour, so every solver starts from the arrangement its predecessor left.
func run(w io.Writer, p plan, withDist bool) error {
	cities := p.cities
	log.WithField("cities", len(cities)).Debug("instance ready")

	if p.policy != nil {
		p.policy(cities)
	}

	for _, name := range p.solvers {
		length, ok := solveOne(name, p)
		if !ok {
			fmt.Fprintf(w, "%-10s no solution\n", name)
			continue
		}
		fmt.Fprintf(w, "%-10s dist = %f\n", name, length)
	}

	if err := render.List(w, cities, withDist); err != nil {
		return errors.Wrap(err, "printing tour")
	}

	return errors.Wrap(render.Grid(w, cities), "printing grid")
}

// solveOne runs a single named solver over p.cities and logs its timing.
// It reports false when the solver declined the instance.
func solveOne(name string, p plan) (float64, bool) {
	var (
		start  = time.Now()
		length float64
		logger = log.WithFields(log.Fields{"solver": name, "cities": len(p.cities)})
	)

	if name == solverGrid {
		if err := tsp.ValidateGrid(p.cities, p.entrance, p.exit); err != nil {
			logger.WithError(err).Warn("grid instance unsolvable")
			return 0, false
		}
		length = tsp.Grid(p.cities, p.entrance, p.exit)
	} else {
		algo, err := tsp.ParseAlgorithm(name)
		if err == nil {
			length, err = tsp.Solve(algo, p.cities)
		}
		if err != nil {
			logger.WithError(err).Warn("solver skipped")
			return 0, false
		}
	}

	logger.WithFields(log.Fields{
		"length":  length,
		"elapsed": time.Since(start),
	}).Info("solved")

	return length, true
}
