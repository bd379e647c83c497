// Package corpus loads a directory of text files and scores every pair of
// documents with a word model pipeline.
//
// Files are read concurrently; vectorization always runs on the calling
// goroutine because pipelines are not safe for concurrent use.
package corpus

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/wordmodel/internal/debug"
	wmerrors "github.com/standardbeagle/wordmodel/internal/errors"
)

// DefaultPattern matches every text file below the root
const DefaultPattern = "**/*.txt"

// Document is one distinct file of a corpus
type Document struct {
	Path string // slash separated, relative to the corpus root
	Text string
	Hash uint64 // xxhash of the content

	// Duplicates lists later paths whose content is identical
	Duplicates []string
}

// Options controls which files are loaded
type Options struct {
	Patterns []string // doublestar patterns, DefaultPattern when empty
	Exclude  []string // doublestar patterns of paths to skip
	Workers  int      // concurrent readers, 1 when zero

	// MaxFileSize is the largest file in bytes, DefaultMaxFileSize when zero.
	// Larger files and binary files are skipped.
	MaxFileSize int64
}

// Load reads every file below root that matches opts. Files with identical
// content are collapsed into the first one in path order.
func Load(ctx context.Context, root string, opts Options) ([]*Document, error) {
	fsys := os.DirFS(root)

	paths, err := match(fsys, opts)
	if err != nil {
		return nil, err
	}
	debug.LogCorpus("matched %d files under %s", len(paths), root)

	limit := opts.MaxFileSize
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}
	contents, err := readAll(ctx, fsys, paths, max(1, opts.Workers), limit)
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, 0, len(paths))
	byHash := make(map[uint64]*Document, len(paths))
	for i, path := range paths {
		if contents[i] == nil {
			continue
		}
		hash := xxhash.Sum64(contents[i])
		if first, ok := byHash[hash]; ok && first.Text == string(contents[i]) {
			first.Duplicates = append(first.Duplicates, path)
			debug.LogCorpus("%s duplicates %s", path, first.Path)
			continue
		}
		doc := &Document{Path: path, Text: string(contents[i]), Hash: hash}
		byHash[hash] = doc
		docs = append(docs, doc)
	}
	return docs, nil
}

// match returns the sorted, de-duplicated files matching the patterns
func match(fsys fs.FS, opts Options) ([]string, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}

	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, wmerrors.NewCorpusError("glob", pattern, err)
		}
		for _, path := range matches {
			if seen[path] || excluded(path, opts.Exclude) {
				continue
			}
			seen[path] = true
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func excluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}

// readAll reads paths with bounded parallelism, keeping results in path
// order. Skipped files are left nil.
func readAll(ctx context.Context, fsys fs.FS, paths []string, workers int, limit int64) ([][]byte, error) {
	contents := make([][]byte, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := checkSize(fsys, path, limit); err != nil {
				return skipOrFail(path, err)
			}
			data, err := fs.ReadFile(fsys, path)
			if err != nil {
				return wmerrors.NewCorpusError("read", path, err)
			}
			if err := checkText(data); err != nil {
				return skipOrFail(path, err)
			}
			// Empty files still count as documents
			if data == nil {
				data = []byte{}
			}
			contents[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	return contents, nil
}

func skipOrFail(path string, err error) error {
	if skippable(err) {
		debug.LogCorpus("skipping %s: %v", path, err)
		return nil
	}
	return wmerrors.NewCorpusError("read", path, err)
}
