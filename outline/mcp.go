package outline

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docsift/docsift/kit"
	"github.com/docsift/docsift/pdfspan"
)

// RegisterMCP registers outline tools on an MCP server.
func (e *Engine) RegisterMCP(srv *mcp.Server) {
	e.registerExtractTool(srv)
	e.registerSpansTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// --- extract ---

type extractReq struct {
	Path string `json:"path"`
}

func (e *Engine) registerExtractTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "outline_extract",
		Description: "Extract the title and leveled heading outline from a PDF file.",
		InputSchema: inputSchema(map[string]any{
			"path": map[string]any{"type": "string", "description": "PDF file path"},
		}, []string{"path"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*extractReq)
		return e.ExtractFile(ctx, r.Path)
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r extractReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- spans ---

type spansReq struct {
	Path string `json:"path"`
}

type spanDump struct {
	Text string  `json:"text"`
	Size float64 `json:"size"`
	Page int     `json:"page"`
	Y    float64 `json:"y"`
}

func (e *Engine) registerSpansTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "outline_spans",
		Description: "Dump the normalized text spans of a PDF file (debugging aid).",
		InputSchema: inputSchema(map[string]any{
			"path": map[string]any{"type": "string", "description": "PDF file path"},
		}, []string{"path"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		r := req.(*spansReq)
		frags, err := pdfspan.Extract(r.Path)
		if err != nil {
			return nil, err
		}
		spans := Normalize(frags)
		dump := make([]spanDump, 0, len(spans))
		for _, s := range spans {
			dump = append(dump, spanDump{Text: s.Text, Size: s.Size, Page: s.Page, Y: s.Y})
		}
		return map[string]any{"spans": dump}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r spansReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}
