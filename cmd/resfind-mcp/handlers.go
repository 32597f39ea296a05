package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/resfind/resfind-mcp/internal/types"
)

func handleFindResources(ctx context.Context, req *mcp.CallToolRequest, input FindResourcesInput) (*mcp.CallToolResult, FindResourcesOutput, error) {
	criteria := types.SearchCriteria{
		ContentPattern:  strings.TrimSpace(input.ContentPattern),
		CaseSensitive:   input.CaseSensitive,
		ResourcePattern: strings.TrimSpace(input.ResourcePattern),
		SizeMin:         input.SizeMin,
		SizeMax:         input.SizeMax,
	}

	if input.DateAfter != "" {
		t, err := types.ParseDate(input.DateAfter)
		if err != nil {
			return &mcp.CallToolResult{IsError: true}, FindResourcesOutput{}, fmt.Errorf("dateAfter: %w", err)
		}
		criteria.DateAfter = &t
	}
	if input.DateBefore != "" {
		t, err := types.ParseDate(input.DateBefore)
		if err != nil {
			return &mcp.CallToolResult{IsError: true}, FindResourcesOutput{}, fmt.Errorf("dateBefore: %w", err)
		}
		criteria.DateBefore = &t
	}

	result, err := searchService.FindResources(criteria)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FindResourcesOutput{}, err
	}

	return nil, FindResourcesOutput{
		Count:       result.Count,
		Paths:       result.Paths,
		Description: result.Description,
		Summary:     renderSummary(result),
		Error:       result.ErrorNote,
	}, nil
}

// renderSummary wraps the result in the sentence-and-block envelope
// consumed by LLM harnesses.
func renderSummary(result types.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d resources matching the search criteria: %s", result.Count, result.Description)
	if result.ErrorNote != "" {
		b.WriteString("\n")
		b.WriteString(result.ErrorNote)
	}
	b.WriteString("\n<resources>\n")
	for _, p := range result.Paths {
		b.WriteString(p)
		b.WriteString("\n")
	}
	b.WriteString("</resources>")
	return b.String()
}

func handleStatResource(ctx context.Context, req *mcp.CallToolRequest, input StatResourceInput) (*mcp.CallToolResult, StatResourceOutput, error) {
	path := strings.TrimSpace(input.Path)

	fullPath, err := projectWalker.ResolvePath(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, StatResourceOutput{}, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, StatResourceOutput{},
			fmt.Errorf("resource not found: %s", path)
	}

	return nil, StatResourceOutput{
		Path:     path,
		Size:     info.Size(),
		Modified: info.ModTime().UTC().Format(time.RFC3339),
		IsDir:    info.IsDir(),
	}, nil
}
