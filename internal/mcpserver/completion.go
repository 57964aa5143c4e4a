package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxCompletionValues caps the completion response, per the MCP spec.
const maxCompletionValues = 100

// handleComplete serves completion/complete for the resource templates. The
// completer computes the full candidate set for the variable; prefix
// filtering against the typed value and the size cap happen here.
func (s *Server) handleComplete(_ context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	arg := req.Params.Argument
	var bindings map[string]string
	if req.Params.Context != nil {
		bindings = req.Params.Context.Arguments
	}

	candidates := s.comp.Complete(arg.Name, bindings)
	matched := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, arg.Value) {
			matched = append(matched, candidate)
		}
	}

	total := len(matched)
	hasMore := false
	if len(matched) > maxCompletionValues {
		matched = matched[:maxCompletionValues]
		hasMore = true
	}
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values:  matched,
			Total:   total,
			HasMore: hasMore,
		},
	}, nil
}
