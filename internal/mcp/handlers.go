package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	wmerrors "github.com/standardbeagle/wordmodel/internal/errors"
	"github.com/standardbeagle/wordmodel/internal/wordmodel"
)

// TextParams is the input of the features and vector tools
type TextParams struct {
	Text *string `json:"text"`
}

// PairParams is the input of the similarity tool
type PairParams struct {
	A *string `json:"a"`
	B *string `json:"b"`
}

// FeaturesResponse is the output of the features tool
type FeaturesResponse struct {
	Extractor      string   `json:"extractor"`
	Features       []string `json:"features"`
	Interpretation []string `json:"interpretation,omitempty"`
}

// VectorResponse is the output of the vector tool
type VectorResponse struct {
	Features       []string  `json:"features"`
	Vector         []float64 `json:"vector"`
	VocabularySize int       `json:"vocabulary_size"`
}

// SimilarityResponse is the output of the similarity tool
type SimilarityResponse struct {
	Similarity     float64  `json:"similarity"`
	FeaturesA      []string `json:"features_a"`
	FeaturesB      []string `json:"features_b"`
	VocabularySize int      `json:"vocabulary_size"`
}

// ResetResponse is the output of the reset tool
type ResetResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body of a failed tool call
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Operation string `json:"operation"`
}

var errMissing = errors.New("required field is missing")

func decodeArguments(raw json.RawMessage, params interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, params); err != nil {
		return wmerrors.NewInputError("", fmt.Errorf("invalid parameters: %w", err))
	}
	return nil
}

func required(field string, value *string) (string, error) {
	if value == nil {
		return "", wmerrors.NewInputError(field, errMissing)
	}
	return *value, nil
}

func (s *Server) handleFeatures(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params TextParams
	if err := decodeArguments(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("features", err)
	}
	text, err := required("text", params.Text)
	if err != nil {
		return createErrorResponse("features", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	response := FeaturesResponse{
		Extractor: s.pipeline.Extractor().Name(),
		Features:  s.pipeline.TextFeatures(text),
	}
	if words, ok := s.pipeline.Interpret(response.Features); ok {
		response.Interpretation = words
	}
	return createJSONResponse(response)
}

func (s *Server) handleVector(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params TextParams
	if err := decodeArguments(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("vector", err)
	}
	text, err := required("text", params.Text)
	if err != nil {
		return createErrorResponse("vector", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	features := s.pipeline.TextFeatures(text)
	return createJSONResponse(VectorResponse{
		Features:       features,
		Vector:         s.pipeline.Vector(features),
		VocabularySize: s.pipeline.Len(),
	})
}

func (s *Server) handleSimilarity(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params PairParams
	if err := decodeArguments(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("similarity", err)
	}
	a, err := required("a", params.A)
	if err != nil {
		return createErrorResponse("similarity", err)
	}
	b, err := required("b", params.B)
	if err != nil {
		return createErrorResponse("similarity", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	featuresA := s.pipeline.TextFeatures(a)
	featuresB := s.pipeline.TextFeatures(b)
	va := s.pipeline.Vector(featuresA)
	vb := s.pipeline.Vector(featuresB)
	return createJSONResponse(SimilarityResponse{
		Similarity:     wordmodel.Cosine(va, vb),
		FeaturesA:      featuresA,
		FeaturesB:      featuresB,
		VocabularySize: s.pipeline.Len(),
	})
}

func (s *Server) handleReset(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pipeline.Reset()
	s.diagnosticLogger.Printf("session reset")
	return createJSONResponse(ResetResponse{Success: true})
}
