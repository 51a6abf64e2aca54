// Hmapsizes generates the pointer-map size table and writes it as C++
// source text.
//
// Usage:
//
//	go run ./cmd/hmapsizes > src/PointerMapInfo.inc
//
// Flags:
//
//	-o            Write the table to this file instead of stdout
//	-check        Compare this file with a fresh table; exit 1 if it is stale
//	-workers      Number of goroutines solving power levels (default: sequential)
//	-fingerprint  Print the table's xxHash3 fingerprint to stderr
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tamirms/hmapsizes"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "hmapsizes: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hmapsizes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outFlag := fs.String("o", "", "write the table to `file` instead of stdout")
	checkFlag := fs.String("check", "", "compare `file` with a fresh table and fail if it differs")
	workersFlag := fs.Int("workers", 0, "number of goroutines solving power levels")
	fingerprintFlag := fs.Bool("fingerprint", false, "print the table fingerprint to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if *outFlag != "" && *checkFlag != "" {
		return fmt.Errorf("-o and -check are mutually exclusive")
	}

	t, err := hmapsizes.Generate(ctx, hmapsizes.WithWorkers(*workersFlag))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := t.Verify(); err != nil {
		return err
	}
	if *fingerprintFlag {
		fmt.Fprintf(stderr, "fingerprint: %016x\n", t.Fingerprint())
	}

	switch {
	case *checkFlag != "":
		if err := hmapsizes.CheckFile(*checkFlag, t); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "%s is up to date\n", *checkFlag)
		return nil
	case *outFlag != "":
		return hmapsizes.WriteFile(*outFlag, t)
	default:
		_, err := t.WriteTo(stdout)
		return err
	}
}
