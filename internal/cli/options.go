// Package cli parses the command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// ErrMissingHandle is returned when no PSN positional argument is given
var ErrMissingHandle = errors.New("the following argument is required: PSN")

// Options holds the parsed command line
type Options struct {
	Mode       string
	ConfigFile string
	ListModes  bool
	LogLevel   string
	LogFile    string
	EnvFile    string

	// Handle is the PSN of the player to track
	Handle string
}

// Parse reads args (without the program name). Usage and errors go to out.
// The handle may be omitted when listing modes.
func Parse(program string, args []string, out io.Writer) (*Options, error) {
	opts := &Options{}

	fs := pflag.NewFlagSet(program, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "Raspberry Pi LCD ELO Tracking\n\nUsage: %s [flags] PSN\n\n", program)
		fs.PrintDefaults()
	}

	fs.StringVarP(&opts.Mode, "mode", "m", "ToO", "Set the mode. (ToO, IB, etc.)")
	fs.StringVarP(&opts.ConfigFile, "config-file", "f", "./config.yml", "Set the location of the yaml config file to read.")
	fs.BoolVarP(&opts.ListModes, "list-modes", "l", false, "List crucible modes.")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "Set the log level.")
	fs.StringVar(&opts.LogFile, "log-file", "", "Set the log file. (default standard output)")
	fs.StringVar(&opts.EnvFile, "env-file", ".env", "Load environment overrides from this dotenv file if it exists.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 1 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args()[1:])
	}

	if fs.NArg() == 1 {
		opts.Handle = fs.Arg(0)
	}

	if opts.Handle == "" && !opts.ListModes {
		fs.Usage()
		return nil, ErrMissingHandle
	}

	return opts, nil
}
