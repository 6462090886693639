// Command quote prices a request file against a catalog file and prints the breakdown.
//
//	quote -catalog catalog.yaml request.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/printshop/printshop/internal/catalog"
	"github.com/printshop/printshop/internal/pricing"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "quote:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("quote", flag.ContinueOnError)
	catalogPath := flags.String("catalog", "catalog.yaml", "catalog snapshot to price against")
	asJSON := flags.Bool("json", false, "print the full result as JSON")
	if err := flags.Parse(args); err != nil {
		return err
	}

	input := stdin
	if path := flags.Arg(0); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	var req pricing.Request
	if err := json.NewDecoder(input).Decode(&req); err != nil {
		return fmt.Errorf("invalid request JSON: %w", err)
	}

	source, err := catalog.NewFileSource(*catalogPath)
	if err != nil {
		return err
	}
	snapshot, err := source.Load(context.Background())
	if err != nil {
		return err
	}

	result, err := pricing.NewEngine().CalculatePrice(&req, snapshot)
	if err != nil {
		return err
	}

	if *asJSON {
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}
	_, err = fmt.Fprintln(stdout, pricing.FormatBreakdown(result.DisplayBreakdown))
	return err
}
