package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

const versionString = "lone 1.0.0"

// runOptions collects the root command's parsed flags, the same grouping
// the teacher's own CommandContext used for its compiler flags.
type runOptions struct {
	searchPaths []string
	eval        string
	verbose     bool
}

// newRootCommand builds the single root `lone` command (spec §6): no
// subcommands, a repeatable --path flag, a -c/--eval inline-code flag
// mirroring the teacher's own -c inline-compile flag, and positional
// file arguments with a stdin fallback when none are given.
func newRootCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:          "lone [file...]",
		Short:        "A freestanding-style Lisp interpreter",
		Version:      versionString,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			VerboseMode = opts.verbose || environmentVerbose()
			return runLone(cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().StringArrayVar(&opts.searchPaths, "path", nil, "module search directory (repeatable)")
	cmd.Flags().StringVarP(&opts.eval, "eval", "c", "", "evaluate inline code instead of reading a file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "set verbose mode (produces no extra output)")

	return cmd
}

// runLone builds an interpreter, seeds its module search path, and then
// evaluates exactly one source per spec §6's priority: inline -c/--eval
// code, else the named files in order, else stdin, else the executable's
// own embedded run script.
func runLone(out io.Writer, opts *runOptions, files []string) error {
	interp, err := NewInterp()
	if err != nil {
		return err
	}
	if err := interp.registerIntrinsics(os.Args, os.Environ()); err != nil {
		return err
	}

	for _, dir := range opts.searchPaths {
		if err := interp.addSearchPathDirectory(dir); err != nil {
			return err
		}
	}
	for _, dir := range environmentSearchPathDirectories() {
		if err := interp.addSearchPathDirectory(dir); err != nil {
			return err
		}
	}

	switch {
	case opts.eval != "":
		return interp.evaluateSource(out, []byte(opts.eval))

	case len(files) > 0:
		for _, file := range files {
			content, err := os.ReadFile(file)
			if err != nil {
				return fatalErrorf(ErrSystem, "reading %s: %v", file, err)
			}
			if err := interp.evaluateSource(out, content); err != nil {
				return err
			}
		}
		return nil

	default:
		if stdinHasData() {
			content, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fatalErrorf(ErrSystem, "reading stdin: %v", err)
			}
			return interp.evaluateSource(out, content)
		}
		if run, ok := interp.loadEmbeddedRun(); ok {
			return interp.evaluateSource(out, run)
		}
		return fatalErrorf(ErrReader, "no input: pass a file, -c, pipe stdin, or build with an embedded run script")
	}
}

// stdinHasData reports whether stdin was redirected from a file or pipe,
// the same check the teacher's shebang-execution path used before
// attempting to slurp script content from a non-terminal.
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// evaluateSource reads every top-level form in src and evaluates it in
// the null module's environment, running a GC pass between forms (spec
// §4.D "simplest policy"). The forms not yet evaluated are rooted in
// interp.pendingTopLevelForms for the duration of the drive: between
// forms interp.frames is empty, so without this a maybeGC right before
// evaluating forms[0] would sweep the very cells about to be evaluated.
func (interp *Interp) evaluateSource(out io.Writer, src []byte) error {
	forms, err := interp.readAll(src)
	if err != nil {
		return err
	}
	env := interp.modules.null.module().environment
	for i, form := range forms {
		interp.pendingTopLevelForms = forms[i:]
		interp.maybeGC()
		interp.pendingTopLevelForms = nil
		if _, err := interp.eval(interp.modules.null, env, form); err != nil {
			return err
		}
	}
	return nil
}
