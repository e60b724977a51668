package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/unbound-force/hello/internal/arith"
	"github.com/unbound-force/hello/internal/config"
	"github.com/unbound-force/hello/internal/greeting"
	"github.com/unbound-force/hello/internal/report"
	"github.com/unbound-force/hello/internal/scaffold"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "hello",
		Short: "Hello: greetings and small arithmetic helpers",
		Long: `Hello prints greeting lines and evaluates the add and halve
helpers from the command line.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"path to YAML config file (default "+config.DefaultPath+" if present)")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"log debug details to stderr")

	loadConfig := func() (*config.HelloConfig, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("config loaded", "path", configPath, "explicit", configPath != "")
		return cfg, nil
	}

	root.AddCommand(newGreetCmd(loadConfig))
	root.AddCommand(newAddCmd(loadConfig))
	root.AddCommand(newHalveCmd(loadConfig))
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newInitCmd())

	return root
}

type configLoader func() (*config.HelloConfig, error)

// greetParams holds the parsed arguments for the greet command.
type greetParams struct {
	name        string
	hasName     bool
	programmer  bool
	defaultName string
	stdout      io.Writer
}

// runGreet is the extracted, testable body of the greet command.
func runGreet(p greetParams) error {
	name := p.defaultName
	switch {
	case p.programmer:
		if p.hasName {
			return errors.New("--programmer does not take a name")
		}
		name = greeting.DefaultName
	case p.hasName:
		name = p.name
	case name == "":
		name = greeting.DefaultName
	}
	return greeting.Fgreet(p.stdout, name)
}

func newGreetCmd(load configLoader) *cobra.Command {
	var programmer bool

	cmd := &cobra.Command{
		Use:   "greet [name]",
		Short: "Print a greeting",
		Long: `Print "Hello, {name}!". Without a name the configured default
is used ("programmer" unless overridden in the config file).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			p := greetParams{
				programmer:  programmer,
				defaultName: cfg.Greeting.DefaultName,
				stdout:      cmd.OutOrStdout(),
			}
			if len(args) == 1 {
				p.name, p.hasName = args[0], true
			}
			return runGreet(p)
		},
	}

	cmd.Flags().BoolVarP(&programmer, "programmer", "p", false,
		"greet the programmer regardless of config")

	return cmd
}

// calcParams holds the parsed arguments for the add and halve commands.
type calcParams struct {
	operation string
	args      []string
	format    string
	stdout    io.Writer
}

// runCalc is the extracted, testable body of the add and halve commands.
func runCalc(p calcParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	operands := make([]float64, 0, len(p.args))
	for _, a := range p.args {
		v, err := arith.ParseOperand(a)
		if err != nil {
			return err
		}
		operands = append(operands, v)
	}

	r := report.Result{Operation: p.operation, Operands: operands}
	switch p.operation {
	case "add":
		if len(operands) != 2 {
			return fmt.Errorf("add takes 2 operands, got %d", len(operands))
		}
		r.Value = arith.Add(operands[0], operands[1])
	case "halve":
		if len(operands) != 1 {
			return fmt.Errorf("halve takes 1 operand, got %d", len(operands))
		}
		r.Value = arith.Halve(operands[0])
	default:
		return fmt.Errorf("unknown operation %q", p.operation)
	}

	if !arith.IsFinite(r.Value) {
		return fmt.Errorf("%s result is not a finite number: %v", p.operation, r.Value)
	}

	logger.Debug("evaluated", "operation", r.Operation, "value", r.Value)

	if p.format == "json" {
		return report.WriteJSON(p.stdout, r, version)
	}
	return report.WriteText(p.stdout, r)
}

func newCalcCmd(load configLoader, use, short string, nargs int) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = cfg.Output.Format
			}
			return runCalc(calcParams{
				operation: cmd.Name(),
				args:      args,
				format:    format,
				stdout:    cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")

	return cmd
}

func newAddCmd(load configLoader) *cobra.Command {
	return newCalcCmd(load, "add <num1> <num2>", "Print the sum of two numbers", 2)
}

func newHalveCmd(load configLoader) *cobra.Command {
	return newCalcCmd(load, "halve <number>", "Print a number divided by two", 1)
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for add/halve JSON output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of hello add|halve --format=json output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .hello.yaml in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := scaffold.Run(scaffold.Options{
				Force:   force,
				Version: version,
				Stdout:  cmd.OutOrStdout(),
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false,
		"overwrite an existing config file")

	return cmd
}
