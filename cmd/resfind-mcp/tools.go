package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// FindResourcesInput contains parameters for discovering resources.
	FindResourcesInput struct {
		ContentPattern  string `json:"contentPattern,omitempty" jsonschema:"Regular expression to match against file contents"`
		CaseSensitive   bool   `json:"caseSensitive,omitempty" jsonschema:"Case sensitive content matching (default: false)"`
		ResourcePattern string `json:"resourcePattern,omitempty" jsonschema:"Path glob supporting *, ** and |-separated alternatives (e.g. '*.js|*.ts')"`
		DateAfter       string `json:"dateAfter,omitempty" jsonschema:"Only include files modified after this date (YYYY-MM-DD)"`
		DateBefore      string `json:"dateBefore,omitempty" jsonschema:"Only include files modified before this date (YYYY-MM-DD)"`
		SizeMin         *int64 `json:"sizeMin,omitempty" jsonschema:"Minimum file size in bytes (inclusive)"`
		SizeMax         *int64 `json:"sizeMax,omitempty" jsonschema:"Maximum file size in bytes (inclusive)"`
	}

	// FindResourcesOutput contains the result of a discovery call.
	FindResourcesOutput struct {
		Count       int      `json:"count"`
		Paths       []string `json:"paths"`
		Description string   `json:"description"`
		Summary     string   `json:"summary"`
		Error       string   `json:"error,omitempty"`
	}

	// StatResourceInput contains parameters for inspecting one resource.
	StatResourceInput struct {
		Path string `json:"path" jsonschema:"Path of the resource relative to the project root"`
	}

	// StatResourceOutput contains stat fields for one resource.
	StatResourceOutput struct {
		Path     string `json:"path"`
		Size     int64  `json:"size"`
		Modified string `json:"modified"`
		IsDir    bool   `json:"isDir,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_resources",
		Description: "Find files in the project by combining a path glob, a content regex, a modification-date range and a size range. Every supplied criterion must hold. Paths are returned relative to the project root.",
	}, handleFindResources)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stat_resource",
		Description: "Report size and modification time for a single path inside the project root.",
	}, handleStatResource)
}
