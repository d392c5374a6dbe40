// Command orderschema prints the OpenAPI schema document of the order creation payload
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	orderbook "github.com/kaifufi/orderbook-appdata-go"
)

type options struct {
	cfg   orderbook.SchemaConfig
	debug bool
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("orderschema", flag.ContinueOnError)
	format := fs.String("format", string(orderbook.OutputFormatYAML), "output format: yaml or json")
	title := fs.String("title", orderbook.DefaultSchemaTitle, "document title")
	version := fs.String("version", orderbook.DefaultSchemaVersion, "document version")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	outputFormat, err := orderbook.ParseOutputFormat(*format)
	if err != nil {
		return options{}, err
	}

	return options{
		cfg: orderbook.SchemaConfig{
			Title:   *title,
			Version: *version,
			Format:  outputFormat,
		},
		debug: *debug,
	}, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		slog.Error("invalid flag", "error", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(os.Stdout, logger, opts.cfg); err != nil {
		logger.Error("failed to write schema", "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger, cfg orderbook.SchemaConfig) error {
	doc := orderbook.OpenAPIDocument(cfg)
	logger.Debug(
		"built schema document",
		"openapi", doc.OpenAPI,
		"schemas", len(doc.Components.Schemas),
		"format", string(cfg.Format),
	)
	return orderbook.WriteSchema(w, doc, cfg.Format)
}
