package server

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"theologai/internal/logging"
)

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type toolInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type listResult struct {
	Tools []toolInfo `json:"tools"`
}

type contentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type callResult struct {
	Content []contentItem `json:"content"`
}

type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

func errorResponse(id json.RawMessage, code int, msg string) rpcResponse {
	return rpcResponse{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: msg}}
}

func resultResponse(id json.RawMessage, result any) rpcResponse {
	return rpcResponse{JSONRPC: "2.0", ID: id, Result: result}
}

// Dispatch handles one JSON-RPC request and returns the encoded response.
func (r *Registry) Dispatch(ctx context.Context, raw []byte) []byte {
	ctx = logging.WithRequestID(ctx, uuid.NewString())

	var req rpcRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return encode(errorResponse(nil, codeParseError, "parse error: "+err.Error()))
	}
	if req.JSONRPC != "2.0" {
		return encode(errorResponse(req.ID, codeInvalidRequest, "jsonrpc must be \"2.0\""))
	}

	switch req.Method {
	case "tools/list":
		tools := r.List()
		infos := make([]toolInfo, len(tools))
		for i, t := range tools {
			infos[i] = toolInfo{Name: t.Name, Description: t.Description, InputSchema: t.InputSchema}
		}
		return encode(resultResponse(req.ID, listResult{Tools: infos}))

	case "tools/call":
		var params callParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return encode(errorResponse(req.ID, codeInvalidParams, "invalid params: "+err.Error()))
		}
		if params.Name == "" {
			return encode(errorResponse(req.ID, codeInvalidParams, "missing tool name"))
		}
		args := params.Arguments
		if len(args) == 0 {
			args = json.RawMessage("{}")
		}
		text, err := r.Call(ctx, params.Name, args)
		if err != nil {
			return encode(errorResponse(req.ID, codeInternalError, err.Error()))
		}
		return encode(resultResponse(req.ID, callResult{
			Content: []contentItem{{Type: "text", Text: text}},
		}))

	default:
		return encode(errorResponse(req.ID, codeMethodNotFound, "unknown method "+req.Method))
	}
}

func encode(resp rpcResponse) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		// Only reachable if a result is unmarshalable, which the fixed
		// result shapes above rule out.
		return []byte(`{"jsonrpc":"2.0","id":null,"error":{"code":-32603,"message":"encoding failure"}}`)
	}
	return data
}
