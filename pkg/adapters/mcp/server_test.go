package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/aretw0/morse"
	"github.com/aretw0/morse/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpc sends one JSON-RPC request through the protocol server and returns the
// decoded "result" or "error" object.
func rpc(t *testing.T, s *Server, method string, params any) (result, rpcErr map[string]any) {
	t.Helper()
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	resp := s.MCPServer().HandleMessage(context.Background(), msg)
	require.NotNil(t, resp)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var envelope struct {
		Result map[string]any `json:"result"`
		Error  map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope.Result, envelope.Error
}

func newTestServer(t *testing.T, opts ...morse.Option) *Server {
	t.Helper()
	tc, err := morse.New(opts...)
	require.NoError(t, err)
	s := NewServer(tc)

	_, rpcErr := rpc(t, s, "initialize", map[string]any{
		"protocolVersion": "2025-03-26",
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "test", "version": "0.0.1"},
	})
	require.Nil(t, rpcErr)
	return s
}

// callTool returns the text content of a tool result and its isError flag.
func callTool(t *testing.T, s *Server, name string, args map[string]any) (string, bool) {
	t.Helper()
	result, rpcErr := rpc(t, s, "tools/call", map[string]any{"name": name, "arguments": args})
	require.Nil(t, rpcErr)

	content, ok := result["content"].([]any)
	require.True(t, ok, "result: %v", result)
	require.NotEmpty(t, content)
	first := content[0].(map[string]any)

	isError, _ := result["isError"].(bool)
	return fmt.Sprint(first["text"]), isError
}

func TestTools_List(t *testing.T) {
	s := newTestServer(t)
	result, rpcErr := rpc(t, s, "tools/list", map[string]any{})
	require.Nil(t, rpcErr)

	tools := result["tools"].([]any)
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.(map[string]any)["name"].(string))
	}
	assert.ElementsMatch(t, []string{"english_to_morse", "morse_to_english", "sanitize"}, names)
}

func TestTools_Translate(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		tool    string
		input   string
		want    string
		wantDir domain.Direction
	}{
		{"english_to_morse", "SOS", ". . .   --- --- ---   . . .", domain.ToMorse},
		{"english_to_morse", "?!", "", domain.ToMorse},
		{"morse_to_english", ". ---       --- .", "A N", domain.ToEnglish},
		{"morse_to_english", "garbage", "", domain.ToEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.tool+"/"+tt.input, func(t *testing.T) {
			text, isError := callTool(t, s, tt.tool, map[string]any{"text": tt.input})
			require.False(t, isError, text)

			var res domain.Translation
			require.NoError(t, json.Unmarshal([]byte(text), &res))
			assert.Equal(t, tt.want, res.Output)
			assert.Equal(t, tt.wantDir, res.Direction)
		})
	}
}

func TestTools_InputRejected(t *testing.T) {
	s := newTestServer(t, morse.WithMaxInputSize(2))

	text, isError := callTool(t, s, "english_to_morse", map[string]any{"text": "abc"})
	assert.True(t, isError)
	assert.Contains(t, text, "input exceeds maximum allowed size")
}

func TestTools_Sanitize(t *testing.T) {
	s := newTestServer(t)

	text, isError := callTool(t, s, "sanitize", map[string]any{"text": "  Hello,\tWorld!  "})
	require.False(t, isError, text)

	var res SanitizeResult
	require.NoError(t, json.Unmarshal([]byte(text), &res))
	assert.Equal(t, "hello world", res.Text)
}

func TestResource_Alphabet(t *testing.T) {
	s := newTestServer(t)

	result, rpcErr := rpc(t, s, "resources/read", map[string]any{"uri": AlphabetURI})
	require.Nil(t, rpcErr)

	contents := result["contents"].([]any)
	require.Len(t, contents, 1)
	first := contents[0].(map[string]any)
	assert.Equal(t, AlphabetURI, first["uri"])
	assert.Equal(t, "application/json", first["mimeType"])

	var doc alphabetDocument
	require.NoError(t, json.Unmarshal([]byte(first["text"].(string)), &doc))
	assert.Equal(t, "international", doc.Name)
	require.Len(t, doc.Entries, 36)
	assert.Equal(t, alphabetEntry{Symbol: "E", Code: ".", Pattern: "."}, doc.Entries[4])
}
