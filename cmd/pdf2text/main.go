// Command pdf2text extracts the text layer of a PDF through the native
// engine. Pages are joined with the page-break separator; pages that fail
// to load are skipped and reported on stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/wudi/pqdfium"
)

type options struct {
	pdfPath  string
	outPath  string
	password string
	ocr      bool
	ocrDPI   int
	langs    string
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdf2text: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "pdf2text: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: pdf2text [flags] <pdf>\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.outPath, "o", "", "write text to this file instead of stdout")
	flag.StringVar(&opts.password, "password", "", "document open password")
	flag.BoolVar(&opts.ocr, "ocr", false, "recognize pages without a text layer (requires the ocr build tag)")
	flag.IntVar(&opts.ocrDPI, "ocr-dpi", 300, "render resolution for recognized pages")
	flag.StringVar(&opts.langs, "lang", "eng", "comma-separated OCR language hints")
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

	var libOpts []pqdfium.Option
	if opts.ocr {
		engine, err := ocrEngine(opts.langs)
		if err != nil {
			return err
		}
		libOpts = append(libOpts, pqdfium.WithOCRFallback(engine, opts.ocrDPI))
	}

	lib, err := pqdfium.Initialize(libOpts...)
	if err != nil {
		return err
	}
	defer pqdfium.Cleanup()

	res, err := lib.ExtractText(context.Background(), data, pqdfium.WithPassword(opts.password))
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "pdf2text: page %d: %v\n", w.Page, w.Err)
	}

	if opts.outPath == "" {
		fmt.Println(res.Text)
		return nil
	}
	if err := os.WriteFile(opts.outPath, []byte(res.Text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.outPath, err)
	}
	return nil
}
