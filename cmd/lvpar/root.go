package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/katalvlaran/lvpar/config"
	"github.com/katalvlaran/lvpar/engine"
	"github.com/katalvlaran/lvpar/matrix"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// positionalKeys maps positional arguments to config keys, in order.
var positionalKeys = []string{config.KeyIterations, config.KeyRows, config.KeyCols, config.KeyWorkers}

func newRootCmd(logger *logrus.Logger) *cobra.Command {
	v := config.New()
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "lvpar [iterations rows cols workers]",
		Short: "Increment a zero matrix in parallel over disjoint column segments",
		Example: "  lvpar 5000 10 10 4\n" +
			"  lvpar 200 4096 4096 8 --strategy copy --print=false",
		Args:          cobra.MatchAll(cobra.RangeArgs(0, 4), exactlyZeroOrFour),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyPositional(v, args); err != nil {
				return err
			}
			c, err := config.Load(v, cfgPath)
			if err != nil {
				return err
			}

			return run(cmd, logger, c)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "config file (toml, yaml or json)")
	f.String("strategy", engine.SharedInPlace.String(), "shared-in-place | copy-then-merge")
	f.Bool("shared-mapping", false, "allocate the matrix in an anonymous shared memory mapping")
	f.String("log-level", "info", "logrus level")
	f.Bool("print", true, "print the initial and final matrices")
	mustBind(v, config.KeyStrategy, f.Lookup("strategy"))
	mustBind(v, config.KeySharedMapping, f.Lookup("shared-mapping"))
	mustBind(v, config.KeyLogLevel, f.Lookup("log-level"))
	mustBind(v, config.KeyPrint, f.Lookup("print"))

	return cmd
}

func exactlyZeroOrFour(_ *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != len(positionalKeys) {
		return fmt.Errorf("expected 0 or %d arguments, got %d", len(positionalKeys), len(args))
	}

	return nil
}

// mustBind wires a flag into v; it only fails for a nil flag, which is a programming error.
func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// applyPositional overrides config values with positional integers.
func applyPositional(v *viper.Viper, args []string) error {
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("argument %d (%s): %w", i+1, positionalKeys[i], err)
		}
		v.Set(positionalKeys[i], n)
	}

	return nil
}

func run(cmd *cobra.Command, logger *logrus.Logger, c config.Config) error {
	level, _ := logrus.ParseLevel(c.Log.Level) // validated by config.Load
	logger.SetLevel(level)
	logger.SetOutput(cmd.ErrOrStderr())
	p := c.Params()

	logger.WithFields(logrus.Fields{
		"iterations": p.Iterations,
		"rows":       p.Rows,
		"cols":       p.Cols,
		"workers":    p.Workers,
		"strategy":   c.Run.Strategy,
	}).Info("starting")

	out := cmd.OutOrStdout()
	if c.Output.Print {
		initial, err := matrix.NewDense(p.Rows, p.Cols)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Initial matrix:\n%s", initial)
	}

	start := time.Now()
	m, err := engine.Execute(p, append(c.Options(), engine.WithLogger(logger))...)
	if err != nil {
		return err
	}
	defer m.Close()
	elapsed := time.Since(start)

	if c.Output.Print {
		fmt.Fprintf(out, "Final matrix:\n%s", m)
	}
	logger.WithField("elapsed", elapsed.String()).Info("finished")

	return nil
}
