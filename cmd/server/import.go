package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazyhaar/wordfam-registry/pkg/importer"
	"github.com/hazyhaar/wordfam-registry/pkg/normalize"
)

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	file := fs.String("file", "", "CSV file to import")
	kind := fs.String("kind", "records", "what the file holds: records or vocabulary")
	delimiter := fs.String("delimiter", ",", "CSV field delimiter")
	encoding := fs.String("encoding", "", "source encoding (IANA name, e.g. gbk); empty means UTF-8")
	noHeader := fs.Bool("no-header", false, "treat the first row as data, keyed by column position")
	fs.Parse(args)

	logger := newLogger()
	cfg := loadConfig(*cfgPath, logger)

	if *file == "" {
		logger.Error("--file is required")
		fs.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		logger.Error("open file", "path", *file, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := importer.ReadRows(f, importer.Format{
		Delimiter: *delimiter,
		Encoding:  *encoding,
		HasHeader: !*noHeader,
	})
	if err != nil {
		logger.Error("read csv", "path", *file, "error", err)
		os.Exit(1)
	}

	deps, s := openDeps(cfg, logger)
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *kind {
	case "records":
		im := importer.NewRecordImporter(deps.Store, normalize.Default(), logger)
		sum, err := im.ImportRows(ctx, rows)
		if err != nil {
			logger.Error("import aborted", "error", err, "inserted", sum.Inserted)
			os.Exit(1)
		}
		logger.Info("records imported",
			"inserted", sum.Inserted, "skippedRows", sum.SkippedRows, "failed", sum.Failed)
	case "vocabulary":
		n, err := importer.ImportVocabulary(ctx, deps.Store, rows)
		if err != nil {
			logger.Error("import aborted", "error", err, "inserted", n)
			os.Exit(1)
		}
		logger.Info("vocabulary imported", "inserted", n)
	default:
		logger.Error("unknown kind", "kind", *kind)
		os.Exit(1)
	}
}
