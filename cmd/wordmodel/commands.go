package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/wordmodel/internal/config"
	"github.com/standardbeagle/wordmodel/internal/corpus"
	"github.com/standardbeagle/wordmodel/internal/debug"
	"github.com/standardbeagle/wordmodel/internal/mcp"
	"github.com/standardbeagle/wordmodel/internal/wordmodel"
)

// compareCommand prints the features, presence vectors and similarity of
// exactly two texts
func compareCommand(c *cli.Context) error {
	out := c.App.Writer
	if c.NArg() != 2 {
		fmt.Fprintln(out, usageLine)
		return nil
	}
	a, b := c.Args().Get(0), c.Args().Get(1)

	pipeline, _, err := newPipeline(c)
	if err != nil {
		return err
	}

	featuresA := pipeline.TextFeatures(a)
	featuresB := pipeline.TextFeatures(b)
	vectorA := pipeline.Vector(featuresA)
	vectorB := pipeline.Vector(featuresB)

	fmt.Fprintln(out, "----- Features")
	fmt.Fprintf(out, "%s --> %s\n", a, formatList(featuresA))
	fmt.Fprintf(out, "%s --> %s\n", b, formatList(featuresB))
	fmt.Fprintln(out, "----- Binary")
	fmt.Fprintln(out, formatVector(vectorA))
	fmt.Fprintln(out, formatVector(vectorB))
	fmt.Fprintln(out, "----- Similarity")
	fmt.Fprintln(out, strconv.FormatFloat(wordmodel.Cosine(vectorA, vectorB), 'g', -1, 64))

	wordsA, ok := pipeline.Interpret(featuresA)
	if !ok {
		return nil
	}
	wordsB, _ := pipeline.Interpret(featuresB)
	fmt.Fprintln(out, "----- Inverse Features")
	fmt.Fprintf(out, "%s --> %s\n", a, formatList(wordsA))
	fmt.Fprintf(out, "%s --> %s\n", b, formatList(wordsB))
	return nil
}

func featuresCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	pipeline, _, err := newPipeline(c)
	if err != nil {
		return err
	}

	out := c.App.Writer
	for _, text := range c.Args().Slice() {
		fmt.Fprintf(out, "%s --> %s\n", text, formatList(pipeline.TextFeatures(text)))
	}
	return nil
}

// corpusOptions combines the corpus config with --glob and --exclude.
// Globs replace the configured patterns; excludes add to them.
func corpusOptions(cfg *config.Config, globs, exclude []string) corpus.Options {
	opts := corpus.Options{
		Patterns: cfg.Corpus.Patterns,
		Exclude:  slices.Concat(cfg.Corpus.Exclude, exclude),
		Workers:  cfg.Corpus.Workers,

		MaxFileSize: cfg.Corpus.MaxFileSizeKB * 1024,
	}
	if len(globs) > 0 {
		opts.Patterns = globs
	}
	return opts
}

func batchCommand(c *cli.Context) error {
	pipeline, cfg, err := newPipeline(c)
	if err != nil {
		return err
	}

	opts := corpusOptions(cfg, c.StringSlice("glob"), c.StringSlice("exclude"))

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	docs, err := corpus.Load(ctx, c.String("root"), opts)
	if err != nil {
		return err
	}

	out := c.App.Writer
	for _, doc := range docs {
		for _, duplicate := range doc.Duplicates {
			fmt.Fprintf(out, "duplicate\t%s\t%s\n", doc.Path, duplicate)
		}
	}

	pairs := corpus.Score(pipeline, docs)
	if top := c.Int("top"); top > 0 && top < len(pairs) {
		pairs = pairs[:top]
	}
	for _, pair := range pairs {
		fmt.Fprintf(out, "%.4f\t%s\t%s\n", pair.Score, pair.A, pair.B)
	}
	debug.LogCorpus("scored %d documents, %d pairs printed", len(docs), len(pairs))
	return nil
}

func mcpCommand(c *cli.Context) error {
	// Nothing but protocol messages may reach stdout from here on
	debug.SetMCPMode(true)

	pipeline, _, err := newPipeline(c)
	if err != nil {
		return err
	}

	logger := mcp.NewDiagnosticLogger(true, "")
	server := mcp.NewServer(pipeline, logger)
	defer server.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}

func formatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

func formatVector(vector []float64) string {
	parts := make([]string, len(vector))
	for i, value := range vector {
		parts[i] = strconv.FormatFloat(value, 'f', 1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
