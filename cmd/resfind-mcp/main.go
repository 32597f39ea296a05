// Package main implements the MCP server for project resource discovery.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/resfind/resfind-mcp/internal/config"
	"github.com/resfind/resfind-mcp/internal/glob"
	"github.com/resfind/resfind-mcp/internal/search"
	"github.com/resfind/resfind-mcp/internal/walker"
)

var (
	searchService *search.Service
	projectWalker *walker.Walker
)

var configPath string

func main() {
	cmd := &cobra.Command{
		Use:   "resfind-mcp [project-root]",
		Short: "MCP resource discovery for project trees",
		Long: `resfind-mcp is a Model Context Protocol (MCP) server that lets any
MCP-compatible AI harness discover files in a project tree by
combining a path glob, a content regular expression, a
modification-date range and a byte-size range in one query.`,
		Example: `resfind-mcp ~/src/myproject`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runServer,
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	var rootPath string
	if len(args) > 0 {
		rootPath = args[0]
	} else {
		var err error
		rootPath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Logs go to stderr; stdout belongs to the MCP transport.
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Sync()

	projectWalker, err = walker.New(rootPath, logger)
	if err != nil {
		return err
	}

	searchService = search.New(rootPath, logger)
	searchService.SetWorkers(cfg.Workers)
	searchService.SetWindow(cfg.ChunkSizeKiB*1024, cfg.CarryOverKiB*1024)
	if len(cfg.Ignore) > 0 {
		searchService.SetIgnore(glob.Compile(strings.Join(cfg.Ignore, "|")))
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "resfind-mcp",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
