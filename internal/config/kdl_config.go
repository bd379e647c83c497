package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// LoadFile parses the KDL configuration file at path. A relative lexicon path
// is resolved against the directory holding the file.
func LoadFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := parseKDL(string(content))
	if err != nil {
		return nil, err
	}

	if cfg.Lexicon.Path != "" && !filepath.IsAbs(cfg.Lexicon.Path) {
		cfg.Lexicon.Path = filepath.Clean(filepath.Join(filepath.Dir(path), cfg.Lexicon.Path))
	}
	return cfg, nil
}

// Simple KDL parser for wordmodel configuration
func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "model":
			if s, ok := firstStringArg(n); ok {
				cfg.Model = s
			}
		case "ngram":
			if v, ok := firstIntArg(n); ok {
				cfg.NGram = v
			}
		case "window":
			if v, ok := firstIntArg(n); ok {
				cfg.Window = v
			}
		case "tokenizer":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "min_token_length":
					if v, ok := firstIntArg(cn); ok {
						cfg.Tokenizer.MinTokenLength = v
					}
				case "prepare_acronyms":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Tokenizer.PrepareAcronyms = b
					}
				}
			}
		case "stemmer":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "algorithm":
					if s, ok := firstStringArg(cn); ok {
						cfg.Stemmer.Algorithm = s
					}
				case "iterated":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Stemmer.Iterated = b
					}
				case "invertible":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Stemmer.Invertible = b
					}
				case "remove_stopwords":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Stemmer.RemoveStopwords = b
					}
				case "min_length":
					if v, ok := firstIntArg(cn); ok {
						cfg.Stemmer.MinLength = v
					}
				case "cache_size":
					if v, ok := firstIntArg(cn); ok {
						cfg.Stemmer.CacheSize = v
					}
				case "exclusions":
					for _, word := range collectStringArgs(cn) {
						cfg.Stemmer.Exclusions[strings.ToLower(word)] = true
					}
				}
			}
		case "stopwords":
			for _, cn := range n.Children {
				if nodeName(cn) == "extra" {
					cfg.Stopwords.Extra = append(cfg.Stopwords.Extra, collectStringArgs(cn)...)
				}
			}
		case "lexicon":
			for _, cn := range n.Children {
				assignSimpleString(cn, "path", func(v string) { cfg.Lexicon.Path = v })
			}
		case "corpus":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "workers":
					if v, ok := firstIntArg(cn); ok {
						cfg.Corpus.Workers = v
					}
				case "patterns":
					if patterns := collectStringArgs(cn); len(patterns) > 0 {
						cfg.Corpus.Patterns = patterns
					}
				case "exclude":
					cfg.Corpus.Exclude = append(cfg.Corpus.Exclude, collectStringArgs(cn)...)
				case "max_file_size_kb":
					if v, ok := firstIntArg(cn); ok {
						cfg.Corpus.MaxFileSizeKB = int64(v)
					}
				}
			}
		}
	}

	return cfg, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	// Inline format: exclusions "api" "http"
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}

	// Block format: exclusions { "api"; "http" }
	if len(out) == 0 && len(n.Children) > 0 {
		out = make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}

	return out
}

func assignSimpleString(n *document.Node, target string, set func(string)) {
	if nodeName(n) == target {
		if s, ok := firstStringArg(n); ok {
			set(s)
		}
	}
}
