package mcp

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/standardbeagle/wordmodel/internal/semantic"
	"github.com/standardbeagle/wordmodel/internal/wordmodel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T, stemmer semantic.Stemmer) *Server {
	t.Helper()
	pipeline, err := wordmodel.New(wordmodel.Options{
		Model:   wordmodel.ModelBagOfWords,
		Stemmer: stemmer,
	})
	require.NoError(t, err)
	return NewServer(pipeline, nil)
}

func request(args string) *mcp.CallToolRequest {
	return &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(args)},
	}
}

func decode(t *testing.T, result *mcp.CallToolResult, out interface{}) {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content")
	require.NoError(t, json.Unmarshal([]byte(text.Text), out))
}

func TestNewServer(t *testing.T) {
	server := newTestServer(t, semantic.NoStemmer{})
	assert.NotNil(t, server.server)
	assert.NotNil(t, server.pipeline)
	assert.Equal(t, NoOpLogger, server.diagnosticLogger)
	assert.NoError(t, server.Shutdown())
}

func TestHandleFeatures(t *testing.T) {
	server := newTestServer(t, semantic.NoStemmer{})

	result, err := server.handleFeatures(context.Background(), request(`{"text": "getAction. Parse it"}`))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var response FeaturesResponse
	decode(t, result, &response)
	assert.Equal(t, wordmodel.ModelBagOfWords, response.Extractor)
	assert.Equal(t, []string{"get", "action", "parse", "it"}, response.Features)
	assert.Nil(t, response.Interpretation)
}

func TestHandleFeaturesInterpretation(t *testing.T) {
	base, err := semantic.NewStemmer(semantic.AlgorithmPorter2, 0, nil)
	require.NoError(t, err)
	server := newTestServer(t, semantic.NewInvertibleStemmer(base))

	result, err := server.handleFeatures(context.Background(), request(`{"text": "running runners"}`))
	require.NoError(t, err)

	var response FeaturesResponse
	decode(t, result, &response)
	assert.Equal(t, []string{"run", "runner"}, response.Features)
	assert.Equal(t, []string{"running", "runners"}, response.Interpretation)
}

func TestHandleFeaturesEmptyText(t *testing.T) {
	server := newTestServer(t, semantic.NoStemmer{})

	result, err := server.handleFeatures(context.Background(), request(`{"text": ""}`))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var response FeaturesResponse
	decode(t, result, &response)
	assert.NotNil(t, response.Features)
	assert.Empty(t, response.Features)
}

func TestHandleVector(t *testing.T) {
	server := newTestServer(t, semantic.NoStemmer{})

	result, err := server.handleVector(context.Background(), request(`{"text": "hello world"}`))
	require.NoError(t, err)
	var first VectorResponse
	decode(t, result, &first)
	assert.Equal(t, []float64{1, 1}, first.Vector)

	result, err = server.handleVector(context.Background(), request(`{"text": "world peace"}`))
	require.NoError(t, err)
	var second VectorResponse
	decode(t, result, &second)
	assert.Equal(t, []float64{0, 1, 1}, second.Vector)
	assert.Equal(t, 3, second.VocabularySize)
}

func TestHandleSimilarity(t *testing.T) {
	server := newTestServer(t, semantic.NoStemmer{})

	result, err := server.handleSimilarity(context.Background(), request(`{"a": "getAction", "b": "get all action"}`))
	require.NoError(t, err)

	var response SimilarityResponse
	decode(t, result, &response)
	assert.InDelta(t, 0.8165, response.Similarity, 1e-3)
	assert.Equal(t, []string{"get", "action"}, response.FeaturesA)
	assert.Equal(t, 3, response.VocabularySize)
}

func TestHandleReset(t *testing.T) {
	server := newTestServer(t, semantic.NoStemmer{})

	_, err := server.handleVector(context.Background(), request(`{"text": "hello world"}`))
	require.NoError(t, err)

	result, err := server.handleReset(context.Background(), request(`{}`))
	require.NoError(t, err)
	var response ResetResponse
	decode(t, result, &response)
	assert.True(t, response.Success)
	assert.Zero(t, server.pipeline.Len())
}

func TestHandlersRejectBadInput(t *testing.T) {
	server := newTestServer(t, semantic.NoStemmer{})
	ctx := context.Background()

	tests := []struct {
		name    string
		handler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error)
		args    string
		field   string
	}{
		{"features missing text", server.handleFeatures, `{}`, "text"},
		{"features no arguments", server.handleFeatures, ``, "text"},
		{"features malformed json", server.handleFeatures, `{"text": `, "invalid parameters"},
		{"features wrong type", server.handleFeatures, `{"text": 3}`, "invalid parameters"},
		{"vector missing text", server.handleVector, `{"txt": "hello"}`, "text"},
		{"similarity missing b", server.handleSimilarity, `{"a": "hello"}`, "for b"},
		{"similarity missing a", server.handleSimilarity, `{"b": "hello"}`, "for a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.handler(ctx, request(tt.args))
			require.NoError(t, err, "tool failures are reported in the result")
			assert.True(t, result.IsError)

			var response ErrorResponse
			decode(t, result, &response)
			assert.False(t, response.Success)
			assert.Contains(t, response.Error, tt.field)
		})
	}
	assert.Zero(t, server.pipeline.Len(), "rejected calls leave the vocabulary alone")
}

func TestConcurrentToolCalls(t *testing.T) {
	server := newTestServer(t, semantic.NoStemmer{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = server.handleSimilarity(ctx, request(`{"a": "parse the file", "b": "read the file"}`))
			_, _ = server.handleFeatures(ctx, request(`{"text": "write the log"}`))
		}()
	}
	wg.Wait()

	keys := server.pipeline.Keys()
	assert.ElementsMatch(t, []string{"parse", "the", "file", "read", "write", "log"}, keys)
}

func TestDiagnosticLoggerFile(t *testing.T) {
	logger := NewDiagnosticLogger(true, t.TempDir())
	require.NotEmpty(t, logger.LogPath())

	logger.Printf("hello %s", "log")
	logger.Errorf("broken %d", 1)
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(logger.LogPath())
	require.NoError(t, err)
	assert.Contains(t, string(content), "hello log")
	assert.True(t, strings.Contains(string(content), "ERROR: broken 1"))
}

func TestDiagnosticLoggerNil(t *testing.T) {
	var logger *DiagnosticLogger
	logger.Printf("ignored")
	assert.Empty(t, logger.LogPath())
	assert.NoError(t, logger.Close())
}
