package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/rpncalc"
	"github.com/zephyrtronium/rpncalc/internal/config"
	"github.com/zephyrtronium/rpncalc/internal/logger"
)

// Version is the current version.
const Version = "0.1.0"

type flags struct {
	cfgFile    string
	inName     string
	decimals   int
	rightAssoc string
	echo       bool
	debug      bool
	quiet      bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "rpncalc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `rpncalc evaluates expressions made of numbers, + - * / ^, unary minus,
and parentheses. Each argument is evaluated separately. With no arguments,
expressions are read one per line until end of input.`,
		Example: `  rpncalc '1 + 2 * 3'
  rpncalc --right-assoc '^' '2^3^2'
  rpncalc --in exprs.txt --rpn`,
		Args:         cobra.ArbitraryArgs,
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	fl := cmd.Flags()
	fl.StringVar(&f.cfgFile, "config", "", "YAML configuration file")
	fl.StringVar(&f.inName, "in", "", "input file (default stdin if no args given)")
	fl.IntVar(&f.decimals, "decimals", rpncalc.DefaultDecimals, "fractional digits to round results to (-1 for shortest)")
	fl.StringVar(&f.rightAssoc, "right-assoc", "", "operators that group right to left, e.g. '^'")
	fl.BoolVar(&f.echo, "rpn", false, "print the RPN form of each expression")
	fl.BoolVar(&f.debug, "debug", false, "enable debug logging")
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "do not print a prompt")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rpncalc version %s\n", Version)
		},
	})
	return cmd
}

// loadConfig applies command-line flags over the configuration file.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.cfgFile != "" {
		c, err := config.LoadFromFile(f.cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	if cmd.Flags().Changed("decimals") {
		cfg.Decimals = f.decimals
	}
	if cmd.Flags().Changed("right-assoc") {
		cfg.RightAssoc = f.rightAssoc
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, f flags, args []string) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	s := &session{
		calc:   rpncalc.New(cfg.Options()...),
		log:    log,
		out:    cmd.OutOrStdout(),
		prompt: cfg.Prompt,
		echo:   f.echo,
	}
	if f.quiet {
		s.prompt = ""
	}
	if f.inName != "" || len(args) == 0 {
		if err := s.read(cmd, f.inName); err != nil {
			log.Warn("reading input failed", zap.Error(err))
			return fmt.Errorf("reading input: %w", err)
		}
	}
	for _, arg := range args {
		s.eval(arg)
	}
	return nil
}

// read evaluates each line of the named input, or of standard input if name
// is empty or "-". Files are read without a prompt.
func (s *session) read(cmd *cobra.Command, name string) error {
	var in io.Reader
	switch name {
	case "", "-":
		in = cmd.InOrStdin()
	default:
		file, err := os.Open(name)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
		s.prompt = ""
	}
	s.log.Debug("reading expressions", zap.String("in", name))
	return s.run(in)
}
