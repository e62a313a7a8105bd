package kit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestContextAccessors(t *testing.T) {
	ctx := context.Background()

	if got := GetRequestID(ctx); got != "" {
		t.Errorf("request id on empty ctx = %q", got)
	}
	if got := GetTransport(ctx); got != "http" {
		t.Errorf("default transport = %q, want http", got)
	}

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithTransport(ctx, "mcp")
	if got := GetRequestID(ctx); got != "req-1" {
		t.Errorf("request id = %q", got)
	}
	if got := GetTransport(ctx); got != "mcp" {
		t.Errorf("transport = %q", got)
	}
}

var testImpl = &mcp.Implementation{Name: "kit-test", Version: "0.1.0"}

type echoReq struct {
	Msg string `json:"msg"`
}

func toolSession(t *testing.T, endpoint Endpoint) *mcp.ClientSession {
	t.Helper()
	srv := mcp.NewServer(testImpl, nil)
	tool := &mcp.Tool{
		Name:        "echo",
		Description: "test tool",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"msg": map[string]any{"type": "string"},
			},
		},
	}
	decode := func(req *mcp.CallToolRequest) (*MCPDecodeResult, error) {
		var r echoReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &MCPDecodeResult{Request: &r}, nil
	}
	RegisterMCPTool(srv, tool, endpoint, decode)

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = srv.Run(ctx, serverT) }()

	client := mcp.NewClient(testImpl, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func TestRegisterMCPToolSuccess(t *testing.T) {
	endpoint := func(ctx context.Context, req any) (any, error) {
		if got := GetTransport(ctx); got != "mcp" {
			t.Errorf("transport in endpoint = %q, want mcp", got)
		}
		r := req.(*echoReq)
		return map[string]string{"echo": r.Msg}, nil
	}
	session := toolSession(t, endpoint)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "echo",
		Arguments: map[string]any{"msg": "hello"},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %v", result.Content)
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatal("expected TextContent")
	}
	var resp map[string]string
	if err := json.Unmarshal([]byte(tc.Text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["echo"] != "hello" {
		t.Errorf("echo = %q", resp["echo"])
	}
}

func TestRegisterMCPToolEndpointError(t *testing.T) {
	endpoint := func(context.Context, any) (any, error) {
		return nil, errors.New("boom")
	}
	session := toolSession(t, endpoint)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "echo",
		Arguments: map[string]any{"msg": "x"},
	})
	if err != nil {
		t.Fatalf("CallTool transport error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error in result")
	}
}

func TestRegisterMCPToolDecodeError(t *testing.T) {
	endpoint := func(context.Context, any) (any, error) {
		t.Error("endpoint must not run when decode fails")
		return nil, nil
	}
	srv := mcp.NewServer(testImpl, nil)
	tool := &mcp.Tool{
		Name:        "fail",
		Description: "test tool",
		InputSchema: map[string]any{"type": "object"},
	}
	decode := func(*mcp.CallToolRequest) (*MCPDecodeResult, error) {
		return nil, fmt.Errorf("bad arguments")
	}
	RegisterMCPTool(srv, tool, endpoint, decode)

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = srv.Run(ctx, serverT) }()
	client := mcp.NewClient(testImpl, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })

	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "fail", Arguments: map[string]any{}})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected decode error in result")
	}
}
