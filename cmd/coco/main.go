// Command coco runs compiled CoCo programs.
//
// Invoke it as
//
//	coco [-v] [--config file] [--recursion-limit n] program
//
// where program is a YAML listing (.yaml) or a CBOR image (.cbc). With -v,
// the listing of every function is written to standard error before the
// program runs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	// import for side effects
	_ "github.com/tliron/commonlog/simple"

	"github.com/zephyrtronium/coco"
	"github.com/zephyrtronium/coco/code"
	"github.com/zephyrtronium/coco/interp"
)

var log = commonlog.GetLogger("coco.cmd")

// exitStatus is an error that ends the process with a specific status after
// its report has already been written.
type exitStatus int

func (e exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

const (
	statusUncaught exitStatus = 1
	statusFault    exitStatus = 2
)

type options struct {
	verbose bool
	config  string
	limit   int
}

func newRootCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "coco [-v] program",
		Short:         "Run a compiled CoCo program",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd, *opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), config, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print function listings and debug logs")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML configuration `file`")
	cmd.Flags().IntVar(&opts.limit, "recursion-limit", coco.DefaultRecursionLimit, "maximum call depth")
	return cmd
}

// loadConfig reads the configuration file, if any, and applies flags on top.
func loadConfig(cmd *cobra.Command, opts options) (coco.Config, error) {
	config := coco.DefaultConfig()
	if opts.config != "" {
		var err error
		config, err = coco.LoadConfig(opts.config)
		if err != nil {
			return config, err
		}
	}
	if cmd.Flags().Changed("recursion-limit") {
		config.RecursionLimit = opts.limit
	}
	if opts.verbose {
		config.Verbose = true
	}
	return config, nil
}

func run(ctx context.Context, config coco.Config, path string, stdout, stderr io.Writer) error {
	verbosity := 0
	if config.Verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	p, err := code.Load(path)
	if err != nil {
		return err
	}
	log.Debugf("loaded %d functions from %s", len(p.Functions), path)
	if config.Verbose {
		for _, c := range p.Functions {
			fmt.Fprintln(stderr, c.PrettyString("", false))
		}
	}

	vm := coco.NewVM(config)
	it := interp.New(vm, stdout)
	ctx, stop := notifyContext(ctx)
	defer stop()
	return execute(ctx, vm, it, p, stderr)
}

// execute runs the program and reports uncaught exceptions and faults.
func execute(ctx context.Context, vm *coco.VM, it *interp.Interpreter, p *code.Program, stderr io.Writer) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		f := coco.FaultFromPanic(r)
		log.Errorf("%v", f)
		vm.WriteFault(stderr, f)
		err = statusFault
	}()
	_, err = it.Run(ctx, p)
	var exc *coco.Exception
	if errors.As(err, &exc) {
		coco.WriteUncaught(stderr, exc)
		return statusUncaught
	}
	return err
}

func main() {
	err := newRootCommand(new(options)).Execute()
	if err == nil {
		return
	}
	var status exitStatus
	if !errors.As(err, &status) {
		fmt.Fprintln(os.Stderr, err)
		status = 1
	}
	os.Exit(int(status))
}
