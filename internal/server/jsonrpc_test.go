package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"theologai/internal/fetch"
)

func testRegistry() *Registry {
	return NewToolRegistry(Deps{
		ESV: &fakePassages{passage: &fetch.Passage{
			Reference: "John 3:16", Text: "For God so loved the world", Translation: "ESV",
		}},
	})
}

func dispatch(t *testing.T, reg *Registry, raw string) rpcResponse {
	t.Helper()
	out := reg.Dispatch(context.Background(), []byte(raw))
	var resp rpcResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, out)
	}
	return resp
}

func TestDispatchToolsList(t *testing.T) {
	resp := dispatch(t, testRegistry(), `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	if resp.Error != nil {
		t.Fatalf("error = %+v", resp.Error)
	}

	data, _ := json.Marshal(resp.Result)
	var result listResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("result decode: %v", err)
	}
	if len(result.Tools) != 1 || result.Tools[0].Name != "bible_lookup" {
		t.Errorf("tools = %+v", result.Tools)
	}
	if result.Tools[0].InputSchema["type"] != "object" {
		t.Errorf("schema = %+v", result.Tools[0].InputSchema)
	}
}

func TestDispatchToolsCall(t *testing.T) {
	resp := dispatch(t, testRegistry(),
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"bible_lookup","arguments":{"reference":"John 3:16"}}}`)
	if resp.Error != nil {
		t.Fatalf("error = %+v", resp.Error)
	}

	data, _ := json.Marshal(resp.Result)
	var result callResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("result decode: %v", err)
	}
	if len(result.Content) != 1 || result.Content[0].Type != "text" {
		t.Fatalf("content = %+v", result.Content)
	}
	if !strings.Contains(result.Content[0].Text, "John 3:16 (ESV)") {
		t.Errorf("text = %q", result.Content[0].Text)
	}
}

func TestDispatchErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		code int
	}{
		{"parse error", `{not json`, codeParseError},
		{"wrong version", `{"jsonrpc":"1.0","id":1,"method":"tools/list"}`, codeInvalidRequest},
		{"unknown method", `{"jsonrpc":"2.0","id":1,"method":"resources/list"}`, codeMethodNotFound},
		{"missing tool name", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{}}`, codeInvalidParams},
		{"failing tool", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"bible_lookup","arguments":{"reference":"junk"}}}`, codeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := dispatch(t, testRegistry(), tt.raw)
			if resp.Error == nil {
				t.Fatal("expected error response")
			}
			if resp.Error.Code != tt.code {
				t.Errorf("code = %d; want %d", resp.Error.Code, tt.code)
			}
		})
	}
}

func TestServeStdio(t *testing.T) {
	in := strings.NewReader(
		`{"jsonrpc":"2.0","id":1,"method":"tools/list"}` + "\n" +
			"\n" +
			`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"bible_lookup","arguments":{"reference":"John 3:16"}}}` + "\n")
	var out bytes.Buffer

	if err := ServeStdio(context.Background(), testRegistry(), in, &out); err != nil {
		t.Fatalf("ServeStdio error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("responses = %d; want 2 (blank input lines are skipped)", len(lines))
	}
	for i, line := range lines {
		var resp rpcResponse
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
	if !strings.Contains(lines[1], "John 3:16") {
		t.Errorf("second response = %q", lines[1])
	}
}

func TestWSHandler(t *testing.T) {
	srv := httptest.NewServer(WSHandler(testRegistry()))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	req := `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"bible_lookup","arguments":{"reference":"John 3:16"}}}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(req)); err != nil {
		t.Fatalf("write error: %v", err)
	}

	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	var resp rpcResponse
	if err := json.Unmarshal(msg, &resp); err != nil {
		t.Fatalf("response decode: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("error = %+v", resp.Error)
	}
	if !strings.Contains(string(msg), "John 3:16 (ESV)") {
		t.Errorf("response = %s", msg)
	}
}
