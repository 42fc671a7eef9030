package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/sivchari/gocalc/internal/calculator"
	"github.com/sivchari/gocalc/internal/config"
	"github.com/sivchari/gocalc/internal/logging"
	"github.com/sivchari/gocalc/pkg/gocalc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.1.0"

type rootOptions struct {
	configFile string
	verbose    bool
	output     string
	color      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "gocalc",
		Short: "A small arithmetic calculator",
		Long: `gocalc performs basic arithmetic on two operands.

Run without arguments to print the built-in demonstration:
addition, subtraction, multiplication, division and a handled
division by zero.

Negative operands must follow "--", e.g. gocalc sub -- -3 2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, lg, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = lg.Sync() }()

			return engine.Run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is .gocalc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output on stderr")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", config.FormatText, "output format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&opts.color, "color", false, "colorize text output")

	for _, op := range calculator.Operations() {
		rootCmd.AddCommand(newOperationCmd(opts, op))
	}

	rootCmd.AddCommand(newEvalCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newOperationCmd(opts *rootOptions, op calculator.Operation) *cobra.Command {
	return &cobra.Command{
		Use:     op.String() + " A B",
		Aliases: wordAliases(op),
		Short:   fmt.Sprintf("Print the %s of two numbers", strings.ToLower(op.Label())),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, opts, op, args[0], args[1])
		},
	}
}

func runOperation(cmd *cobra.Command, opts *rootOptions, op calculator.Operation, rawA, rawB string) error {
	a, err := parseOperand(rawA)
	if err != nil {
		return err
	}

	b, err := parseOperand(rawB)
	if err != nil {
		return err
	}

	engine, lg, err := opts.newEngine(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	_, err = engine.Evaluate(cmd.Context(), op, a, b)

	return err
}

func newEvalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "eval A OP B",
		Short:   "Evaluate an infix expression such as 8 / 2",
		Example: "  gocalc eval 5 + 3\n  gocalc eval 2 x 6",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := calculator.ParseOperation(args[1])
			if err != nil {
				return err
			}

			return runOperation(cmd, opts, op, args[0], args[2])
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gocalc version %s\n", version)
		},
	}
}

// newEngine loads the configuration, applies flag overrides and builds an
// engine writing results to the command's stdout and logs to its stderr.
func (o *rootOptions) newEngine(cmd *cobra.Command) (*gocalc.Engine, *zap.Logger, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if o.verbose {
		cfg.Verbose = true
	}

	if cmd.Flags().Changed("output") {
		cfg.Output.Format = o.output
	}

	if cmd.Flags().Changed("color") {
		cfg.Output.Color = o.color
	}

	lg := logging.New(cfg.Verbose, cmd.ErrOrStderr())

	engine, err := gocalc.NewEngine(cfg,
		gocalc.WithOutput(cmd.OutOrStdout()),
		gocalc.WithLogger(lg),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create engine: %w", err)
	}

	return engine, lg, nil
}

func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: %w", s, err)
	}

	return v, nil
}

// wordAliases returns the aliases usable as subcommand names; symbols such as
// "-" and "/" are left to ParseOperation.
func wordAliases(op calculator.Operation) []string {
	var aliases []string

	for _, alias := range op.Aliases() {
		if strings.IndexFunc(alias, func(r rune) bool { return !unicode.IsLetter(r) }) == -1 && len(alias) > 1 {
			aliases = append(aliases, alias)
		}
	}

	return aliases
}
