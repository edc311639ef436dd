package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
)

const protocolVersion = "2024-11-05"

// Server runs the MCP stdio transport: newline-delimited JSON-RPC 2.0
// requests on in, responses on out.
type Server struct {
	provider *Provider
	in       io.Reader
	out      io.Writer
}

// NewServer creates a Server reading requests from in and writing
// responses to out (normally os.Stdin and os.Stdout).
func NewServer(provider *Provider, in io.Reader, out io.Writer) *Server {
	return &Server{provider: provider, in: in, out: out}
}

type rpcRequest struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Result  interface{}      `json:"result,omitempty"`
	Error   *rpcError        `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type callParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// content is one MCP tool-result block.
type content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type callResult struct {
	Content []content `json:"content"`
	IsError bool      `json:"isError"`
}

// Run processes requests until EOF or context cancellation.
func (s *Server) Run(ctx context.Context) error {
	dec := json.NewDecoder(s.in)
	enc := json.NewEncoder(s.out)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var req rpcRequest
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode request: %w", err)
		}

		resp := s.handle(ctx, req)
		if resp == nil {
			continue // notification, no response
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
	}
}

func (s *Server) handle(ctx context.Context, req rpcRequest) *rpcResponse {
	if req.ID == nil {
		// Notifications (e.g. notifications/initialized) need no reply.
		return nil
	}

	resp := &rpcResponse{JSONRPC: "2.0", ID: req.ID}

	switch req.Method {
	case "initialize":
		resp.Result = map[string]interface{}{
			"protocolVersion": protocolVersion,
			"serverInfo": map[string]interface{}{
				"name":    "smhi-weather-forecast",
				"version": "1.0.0",
			},
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
		}
	case "tools/list":
		resp.Result = map[string]interface{}{
			"tools": s.provider.Tools(),
		}
	case "tools/call":
		resp.Result = s.callTool(ctx, req.Params)
	case "ping":
		resp.Result = map[string]interface{}{}
	default:
		resp.Error = &rpcError{Code: -32601, Message: fmt.Sprintf("method not found: %s", req.Method)}
	}

	return resp
}

func (s *Server) callTool(ctx context.Context, params json.RawMessage) callResult {
	var call callParams
	if err := json.Unmarshal(params, &call); err != nil {
		return errorResult(fmt.Sprintf("invalid tool call params: %v", err))
	}

	if !s.provider.HasTool(call.Name) {
		return errorResult(fmt.Sprintf("unknown tool: %s", call.Name))
	}

	result, err := s.provider.Call(ctx, call.Name, call.Arguments)
	if err != nil {
		log.Printf("ERROR: tool %s failed: %v", call.Name, err)
		return errorResult(err.Error())
	}

	text, err := json.Marshal(result)
	if err != nil {
		return errorResult(fmt.Sprintf("marshal tool result: %v", err))
	}

	return callResult{
		Content: []content{{Type: "text", Text: string(text)}},
	}
}

func errorResult(message string) callResult {
	return callResult{
		Content: []content{{Type: "text", Text: message}},
		IsError: true,
	}
}
