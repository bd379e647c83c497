// Package mcp serves a word model pipeline as Model Context Protocol tools
// over stdio.
package mcp

import (
	"context"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/wordmodel/internal/debug"
	"github.com/standardbeagle/wordmodel/internal/version"
	"github.com/standardbeagle/wordmodel/internal/wordmodel"
)

// Server exposes one Pipeline. Tool calls may arrive concurrently, so every
// pipeline access holds mu.
type Server struct {
	mu       sync.Mutex
	pipeline *wordmodel.Pipeline

	server           *mcp.Server
	diagnosticLogger *DiagnosticLogger
}

// NewServer creates a server around pipeline. A nil logger discards
// diagnostics.
func NewServer(pipeline *wordmodel.Pipeline, logger *DiagnosticLogger) *Server {
	if logger == nil {
		logger = NoOpLogger
	}

	s := &Server{
		pipeline:         pipeline,
		diagnosticLogger: logger,
	}
	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "wordmodel-mcp-server",
		Version: version.Info(),
	}, nil)
	s.registerTools()

	logger.Printf("MCP server initialized with %s extractor", pipeline.Extractor().Name())
	return s
}

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "features",
		Description: "Extract the feature keys of a text with the configured word model. Returns the keys in extraction order and, when the stemmer records words, their most likely unstemmed reading.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"text": {
					Type:        "string",
					Description: "Text to extract features from, may contain several sentences",
				},
			},
			Required: []string{"text"},
		},
	}, s.handleFeatures)

	s.server.AddTool(&mcp.Tool{
		Name:        "vector",
		Description: "Add the features of a text to the session vocabulary and return its binary presence vector. Vectors grow as the vocabulary grows.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"text": {
					Type:        "string",
					Description: "Text to vectorize",
				},
			},
			Required: []string{"text"},
		},
	}, s.handleVector)

	s.server.AddTool(&mcp.Tool{
		Name:        "similarity",
		Description: "Cosine similarity of two texts under the configured word model, between 0 and 1.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"a": {
					Type:        "string",
					Description: "First text",
				},
				"b": {
					Type:        "string",
					Description: "Second text",
				},
			},
			Required: []string{"a", "b"},
		},
	}, s.handleSimilarity)

	s.server.AddTool(&mcp.Tool{
		Name:        "reset",
		Description: "Clear the session vocabulary and recorded word interpretations.",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{},
		},
	}, s.handleReset)
}

// Start serves the tools over stdio until ctx is cancelled or the client
// disconnects
func (s *Server) Start(ctx context.Context) error {
	debug.SetMCPMode(true)
	defer debug.SetMCPMode(false)

	s.diagnosticLogger.Printf("Starting MCP server with stdio transport")
	err := s.server.Run(ctx, &mcp.StdioTransport{})
	if err != nil {
		s.diagnosticLogger.Errorf("server stopped: %v", err)
	}
	return err
}

// Shutdown releases the diagnostic log
func (s *Server) Shutdown() error {
	s.diagnosticLogger.Printf("Shutting down MCP server")
	return s.diagnosticLogger.Close()
}
