package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/wordmodel/internal/config"
	"github.com/standardbeagle/wordmodel/internal/debug"
	"github.com/standardbeagle/wordmodel/internal/version"
	"github.com/standardbeagle/wordmodel/internal/wordmodel"
)

const usageLine = "Two string arguments produce their cosine similarity under the configured word model"

func init() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintln(c.App.Writer, version.FullInfo())
	}
}

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	if c.IsSet("model") {
		cfg.Model = c.String("model")
	}
	if c.IsSet("stemmer") {
		cfg.Stemmer.Algorithm = c.String("stemmer")
	}
	if c.IsSet("ngram") {
		cfg.NGram = c.Int("ngram")
	}
	if c.IsSet("window") {
		cfg.Window = c.Int("window")
	}
	if c.IsSet("lexicon") {
		cfg.Lexicon.Path = c.String("lexicon")
	}
	if c.IsSet("invertible") {
		cfg.Stemmer.Invertible = c.Bool("invertible")
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newPipeline builds the pipeline selected by the configuration and flags
func newPipeline(c *cli.Context) (*wordmodel.Pipeline, *config.Config, error) {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return nil, nil, err
	}
	pipeline, err := cfg.NewPipeline()
	if err != nil {
		return nil, nil, err
	}
	debug.LogPipeline("using %s extractor", pipeline.Extractor().Name())
	return pipeline, cfg, nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "wordmodel",
		Usage:                  "Turn identifiers and short texts into comparable feature vectors",
		UsageText:              "wordmodel [global options] A B\n   wordmodel [global options] command [command options] [arguments...]",
		Version:                version.Info(),
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path (default: " + config.FileName + " in the current and home directories)",
			},
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   "Feature model: " + fmt.Sprint(wordmodel.Models),
			},
			&cli.StringFlag{
				Name:  "stemmer",
				Usage: "Stemming algorithm: porter2, porter, snowball or none, optionally prefixed with iterated-",
			},
			&cli.IntFlag{
				Name:  "ngram",
				Usage: "N for the ngram and multigram models",
			},
			&cli.IntFlag{
				Name:  "window",
				Usage: "Window for the skipgram model",
			},
			&cli.StringFlag{
				Name:  "lexicon",
				Usage: "TOML lexicon used by the wordnet model",
			},
			&cli.BoolFlag{
				Name:    "invertible",
				Aliases: []string{"i"},
				Usage:   "Record the words behind each stem and print the best interpretation",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Print debug information to stderr",
			},
			&cli.StringFlag{
				Name:  "debug-log",
				Usage: "Append debug information to a file instead of stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "features",
				Aliases:   []string{"f"},
				Usage:     "Print the features of each argument",
				ArgsUsage: "TEXT...",
				Action:    featuresCommand,
			},
			{
				Name:  "batch",
				Usage: "Score every pair of documents in a directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "root",
						Aliases: []string{"r"},
						Usage:   "Corpus root directory",
						Value:   ".",
					},
					&cli.StringSliceFlag{
						Name:    "glob",
						Aliases: []string{"g"},
						Usage:   "Files to load (doublestar pattern, repeatable; overrides config)",
					},
					&cli.StringSliceFlag{
						Name:  "exclude",
						Usage: "Files to skip (doublestar pattern, repeatable; added to config)",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "Print only the best N pairs (0 = all)",
					},
				},
				Action: batchCommand,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the word model as MCP tools over stdio",
				Action: mcpCommand,
			},
		},
		Before: func(c *cli.Context) error {
			if path := c.String("debug-log"); path != "" {
				if err := debug.OpenLogFile(path); err != nil {
					return err
				}
				debug.SetEnabled(true)
			} else if c.Bool("debug") || debug.IsDebugEnabled() {
				debug.SetDebugOutput(os.Stderr)
				debug.SetEnabled(true)
			}
			return nil
		},
		After: func(c *cli.Context) error {
			return debug.CloseLogFile()
		},
		Action: compareCommand,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
