package api

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/server"
)

// callTool drives one tools/call message through the MCP server and
// returns the serialized JSON-RPC response.
func callTool(t *testing.T, srv *server.MCPServer, name string, args map[string]any) string {
	t.Helper()
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params":  map[string]any{"name": name, "arguments": args},
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp := srv.HandleMessage(context.Background(), msg)
	out, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	return string(out)
}

func newMCPServer(t *testing.T) (*server.MCPServer, Deps) {
	t.Helper()
	deps, _ := newTestDeps(t)
	srv := server.NewMCPServer("wordfam-registry", "test")
	RegisterMCPTools(srv, deps)
	return srv, deps
}

func TestMCPSearchWord(t *testing.T) {
	srv, _ := newMCPServer(t)

	out := callTool(t, srv, "search_word", map[string]any{"word": "act"})
	if strings.Contains(out, `"isError":true`) {
		t.Fatalf("search_word errored: %s", out)
	}
	for _, want := range []string{"act", "acting", "forward"} {
		if !strings.Contains(out, want) {
			t.Errorf("search_word response missing %q: %s", want, out)
		}
	}

	// A bad direction comes back as a tool error, not a protocol error.
	out = callTool(t, srv, "search_word", map[string]any{"word": "act", "type": "sideways"})
	if !strings.Contains(out, `"isError":true`) {
		t.Errorf("search_word with bad type = %s, want tool error", out)
	}
}

func TestMCPPopulateFamilies(t *testing.T) {
	srv, deps := newMCPServer(t)

	out := callTool(t, srv, "populate_families", nil)
	if strings.Contains(out, `"isError":true`) {
		t.Fatalf("populate_families errored: %s", out)
	}

	labeled, err := deps.Store.LabeledRecords(context.Background())
	if err != nil {
		t.Fatalf("LabeledRecords: %v", err)
	}
	if len(labeled) != 3 {
		t.Errorf("labeled records after populate = %d, want 3", len(labeled))
	}
}

func TestMCPAssignFamily(t *testing.T) {
	srv, deps := newMCPServer(t)

	// The words argument is a comma-separated string; blanks and
	// surrounding spaces are dropped.
	out := callTool(t, srv, "assign_family", map[string]any{
		"words":    " acting , acts ,, ",
		"headword": "action",
	})
	if strings.Contains(out, `"isError":true`) {
		t.Fatalf("assign_family errored: %s", out)
	}

	mappings, err := deps.Store.ListMappings(context.Background())
	if err != nil {
		t.Fatalf("ListMappings: %v", err)
	}
	if len(mappings) != 2 {
		t.Fatalf("mappings = %+v, want 2", mappings)
	}
	for i, want := range []string{"acting", "acts"} {
		if mappings[i].Word != want || mappings[i].Headword != "action" {
			t.Errorf("mappings[%d] = %+v, want %s -> action", i, mappings[i], want)
		}
	}

	// An empty words list is refused.
	out = callTool(t, srv, "assign_family", map[string]any{
		"words":    " , ",
		"headword": "action",
	})
	if !strings.Contains(out, `"isError":true`) {
		t.Errorf("assign_family with blank words = %s, want tool error", out)
	}
}
