package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lawhub-kr/statute-agent/internal/models"
	"github.com/lawhub-kr/statute-agent/internal/parser"
	"github.com/lawhub-kr/statute-agent/internal/setup/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	in := flag.String("in", "", "Directory of statute .txt files (one law per file, named after the law)")
	out := flag.String("out", "", "Output law-package JSON path")
	lawType := flag.String("type", string(models.LawTypeLaw), "Law type for every law in the package (law, admin, three_stage, user_upload)")
	flag.Parse()

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "Usage: ingest -in <dir> -out <package.json>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.Logger = logger.New(os.Getenv("LOG_LEVEL"))

	if err := run(*in, *out, models.LawType(*lawType)); err != nil {
		log.Error().Err(err).Msg("ingest failed")
		os.Exit(1)
	}
}

func run(in, out string, lawType models.LawType) error {
	paths, err := filepath.Glob(filepath.Join(in, "*.txt"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .txt files found in %s", in)
	}

	collection := models.Collection{}
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		lawName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		articles := parser.Segment(string(raw))
		if len(articles) == 0 {
			log.Warn().Str("law", lawName).Msg("No articles segmented, skipping")
			continue
		}

		collection[lawName] = models.LawSet{
			Type: lawType,
			Data: articles,
		}
		log.Info().Str("law", lawName).Int("articles", len(articles)).Msg("Segmented")
	}

	if len(collection) == 0 {
		return fmt.Errorf("no laws segmented from %s", in)
	}

	encoded, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return err
	}

	log.Info().Str("out", out).Int("laws", len(collection)).Msg("Package written")
	return nil
}
