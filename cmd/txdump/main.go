package main

import (
	"fmt"
	"io"
	"os"

	"github.com/indigo-web/txlog"
	"github.com/indigo-web/txlog/config"
	"github.com/indigo-web/txlog/scanner"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outWriter io.Writer = os.Stdout
	errWriter io.Writer = os.Stderr
	inReader  io.Reader = os.Stdin

	colorableOut io.Writer = colorable.NewColorableStdout()
)

var (
	cfgFile  string
	strict   bool
	recovery bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:          "txdump",
	Short:        "Decode, canonicalize and inspect HTTP transaction logs",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		outWriter = cmd.OutOrStdout()
		errWriter = cmd.ErrOrStderr()
		inReader = cmd.InOrStdin()

		if outWriter != os.Stdout {
			colorableOut = outWriter
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.txlog/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Fail on bodies of undetermined length instead of treating them as empty")
	rootCmd.PersistentFlags().BoolVarP(&recovery, "recover", "r", false, "Skip malformed transactions instead of stopping at the first one")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Human-readable debug logging")

	rootCmd.AddCommand(decodeCmd, canonCmd, statCmd)
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if cfgFile != "" {
		cfg, err = config.Read(cfgFile)
	} else {
		cfg, err = config.ReadDefault()
	}

	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if strict {
		cfg.Body.Framing = config.Strict
	}

	return cfg, nil
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// readInputs returns the contents of every named file, or of stdin if none are given.
// A single dash stands for stdin, too.
func readInputs(args []string) (inputs []input, err error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	for _, name := range args {
		var data []byte
		if name == "-" {
			data, err = io.ReadAll(inReader)
		} else {
			data, err = os.ReadFile(name)
		}

		if err != nil {
			return nil, err
		}

		inputs = append(inputs, input{name: name, data: data})
	}

	return inputs, nil
}

type input struct {
	name string
	data []byte
}

// scanInputs feeds every transaction of every input into fn, stopping on the first error.
func scanInputs(args []string, fn func(s *scanner.Scanner) error) (skipped int, err error) {
	cfg, err := loadConfig()
	if err != nil {
		return 0, err
	}

	logger, err := newLogger()
	if err != nil {
		return 0, err
	}

	defer func() {
		_ = logger.Sync()
	}()

	inputs, err := readInputs(args)
	if err != nil {
		return 0, err
	}

	codec := txlog.New(cfg)

	for _, in := range inputs {
		opts := []scanner.Option{
			scanner.WithCodec(codec),
			scanner.WithLogger(logger.With(zap.String("input", in.name))),
		}
		if recovery {
			opts = append(opts, scanner.WithRecovery())
		}

		s := scanner.New(in.data, opts...)
		for s.Scan() {
			if err = fn(s); err != nil {
				return skipped, err
			}
		}

		skipped += s.Skipped()
		if err = s.Err(); err != nil {
			return skipped, fmt.Errorf("%s: %w", in.name, err)
		}
	}

	return skipped, nil
}
