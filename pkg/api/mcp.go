package api

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hazyhaar/wordfam-registry/pkg/family"
	"github.com/hazyhaar/wordfam-registry/pkg/kit"
	"github.com/hazyhaar/wordfam-registry/pkg/store"
	"github.com/hazyhaar/wordfam-registry/pkg/vocab"
)

// RegisterMCPTools registers the registry's MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, d Deps) {
	registerSearchWord(srv, d.Index)
	registerFamilyStats(srv, d.Aggregator)
	registerPopulate(srv, d.Populator, d.Aggregator)
	registerAssignFamily(srv, d.Store)
}

func registerSearchWord(srv *server.MCPServer, idx vocab.Index) {
	tool := mcp.NewTool("search_word",
		mcp.WithDescription("Look up a word in the vocabulary: forward (headword to derivatives) or reverse (derivative to headwords)."),
		mcp.WithString("word", mcp.Required(), mcp.Description("The word to look up (letters and hyphens only)")),
		mcp.WithString("type", mcp.Description("Lookup direction: forward (default) or reverse")),
	)

	kit.RegisterMCPTool(srv, tool, searchEndpoint(idx),
		func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
			args := req.GetArguments()
			word, _ := args["word"].(string)
			typ, _ := args["type"].(string)
			if typ == "" {
				typ = "forward"
			}
			return &kit.MCPDecodeResult{Request: &searchReq{Word: word, Type: typ}}, nil
		})
}

func registerFamilyStats(srv *server.MCPServer, agg *family.Aggregator) {
	tool := mcp.NewTool("family_stats",
		mcp.WithDescription("Grouped word-family statistics: per-headword totals with a per-derivative breakdown, or the records of one family."),
		mcp.WithString("family", mcp.Description("Optional family label to drill down into")),
	)

	kit.RegisterMCPTool(srv, tool, familyStatsEndpoint(agg),
		func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
			args := req.GetArguments()
			fam, _ := args["family"].(string)
			return &kit.MCPDecodeResult{Request: &familyStatsReq{Family: fam}}, nil
		})
}

func registerPopulate(srv *server.MCPServer, p *family.Populator, agg *family.Aggregator) {
	tool := mcp.NewTool("populate_families",
		mcp.WithDescription("Resolve a family label for every word record that lacks one. Returns updated/notFound/total counts; safe to re-run."),
	)

	kit.RegisterMCPTool(srv, tool, populateEndpoint(p, agg),
		func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
			return &kit.MCPDecodeResult{Request: nil}, nil
		})
}

func registerAssignFamily(srv *server.MCPServer, s *store.Store) {
	tool := mcp.NewTool("assign_family",
		mcp.WithDescription("Curate the family of one or more words by mapping them to a headword, overriding the vocabulary index."),
		mcp.WithString("words", mcp.Required(), mcp.Description("Comma-separated words to reassign")),
		mcp.WithString("headword", mcp.Required(), mcp.Description("Target headword")),
	)

	kit.RegisterMCPTool(srv, tool, bulkMappingEndpoint(s),
		func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
			args := req.GetArguments()
			wordsStr, _ := args["words"].(string)
			headword, _ := args["headword"].(string)
			var words []string
			for _, w := range strings.Split(wordsStr, ",") {
				if w = strings.TrimSpace(w); w != "" {
					words = append(words, w)
				}
			}
			return &kit.MCPDecodeResult{Request: &bulkMappingReq{Words: words, Headword: headword}}, nil
		})
}
