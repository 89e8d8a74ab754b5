package cmd

import (
	"flag"
	"fmt"
	"io"

	"funlang/colors"
	"funlang/internal/context"
	"funlang/internal/diagnostics"
	"funlang/internal/di"
)

const usage = "funlang [-debug] [-config file.toml] <source-file>"

// Main parses command line arguments and runs the front end.
// It returns the process exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("funlang", flag.ContinueOnError)
	flags.SetOutput(stderr)
	debugFlag := flags.Bool("debug", false, "Enable debug output")
	configFlag := flags.String("config", "", "Load options from a TOML file")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if flags.NArg() < 1 {
		return fail(stderr, diagnostics.MissingSourceFile(usage))
	}

	options, err := context.LoadOptions(*configFlag)
	if err != nil {
		return fail(stderr, diagnostics.InvalidOptions(*configFlag, err))
	}
	if *debugFlag {
		options.Debug = true
	}
	if options.NoColor {
		colors.SetEnabled(false)
	}

	return Run(flags.Arg(0), options, stdout, stderr)
}

// Run lexes entryPoint and prints one excerpt per token to stdout.
// Diagnostics go to stderr. Returns 1 on fatal failure.
func Run(entryPoint string, options *context.CompilerOptions, stdout, stderr io.Writer) int {
	container := di.NewContainer(options)
	defer container.Shutdown()

	pipeline, err := container.Pipeline()
	if err != nil {
		fmt.Fprintf(stderr, "internal error: %v\n", err)
		return 1
	}
	ctx := pipeline.Context

	if options.Debug {
		fmt.Fprintf(stderr, "\n[Lexing Started] Entry Point: %s\n", entryPoint)
	}

	if err := pipeline.Compile(entryPoint); err != nil {
		ctx.EmitDiagnostics(stderr)
		return 1
	}

	for _, file := range ctx.GetAllFiles() {
		for _, tok := range file.Tokens {
			fmt.Fprintln(stdout, tok.InContext())
		}
	}

	// warnings only at this point
	ctx.EmitDiagnostics(stderr)

	return 0
}

func fail(stderr io.Writer, diag *diagnostics.Diagnostic) int {
	bag := diagnostics.NewDiagnosticBag()
	bag.Add(diag)
	bag.EmitAll(stderr, nil)
	return 1
}
