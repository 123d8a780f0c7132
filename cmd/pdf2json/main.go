// Command pdf2json exports a PDF's object graph as JSON through the
// transformation library.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/wudi/pqdfium"
)

type options struct {
	pdfPath string
	outPath string
	version int
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdf2json: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "pdf2json: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: pdf2json [flags] <pdf>\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.outPath, "o", "", "write JSON to this file instead of stdout")
	flag.IntVar(&opts.version, "version", pqdfium.JSONVersionFull, "JSON schema version (1 or 2)")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("expected exactly one PDF path")
	}
	opts.pdfPath = flag.Arg(0)
	return opts, nil
}

func run(opts options) error {
	data, err := os.ReadFile(opts.pdfPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.pdfPath, err)
	}

	lib, err := pqdfium.Initialize()
	if err != nil {
		return err
	}
	defer pqdfium.Cleanup()

	out, err := lib.PDFToJSON(context.Background(), data, pqdfium.WithJSONVersion(opts.version))
	if err != nil {
		return err
	}

	if opts.outPath == "" {
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(opts.outPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.outPath, err)
	}
	return nil
}
