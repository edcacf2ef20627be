package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"catalogsite/internal/catalog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with read-only catalog tools
func NewServer(svc *catalog.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Catalog",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.AddTool(
		mcp.NewTool("list_software",
			mcp.WithDescription("List active software products. Use filter to narrow to free downloads or paid products."),
			mcp.WithString("filter",
				mcp.Description("One of 'all', 'free' or 'paid' (default: all)"),
				mcp.Enum("all", "free", "paid"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of products to return (default: 50, max: 200)"),
			),
		),
		handleListSoftware(svc),
	)

	s.AddTool(
		mcp.NewTool("get_featured",
			mcp.WithDescription("Get the featured products shown in the site's hero slider, in display order."),
		),
		handleGetFeatured(svc),
	)

	s.AddTool(
		mcp.NewTool("list_clients",
			mcp.WithDescription("List active clients in display order."),
		),
		handleList(svc.Clients, "clients"),
	)

	s.AddTool(
		mcp.NewTool("list_known_issues",
			mcp.WithDescription("List active known issues with their status (Open, Fixed, ...)."),
			mcp.WithString("status",
				mcp.Description("Optional: only return issues with this status"),
			),
		),
		handleListIssues(svc),
	)

	s.AddTool(
		mcp.NewTool("list_releases",
			mcp.WithDescription("List published release notes, newest first."),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of releases to return (default: 20, max: 100)"),
			),
		),
		handleListReleases(svc),
	)

	return s
}

func handleListSoftware(svc *catalog.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		items, err := svc.Software(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list software: %v", err)), nil
		}

		switch filter := req.GetString("filter", "all"); filter {
		case "all":
			items = catalog.Active(items)
		case "free":
			items = catalog.Free(items)
		case "paid":
			items = catalog.Paid(items)
		default:
			return mcp.NewToolResultError(fmt.Sprintf("unknown filter %q: use all, free or paid", filter)), nil
		}

		return jsonResult(limitItems(items, req.GetInt("limit", 50), 200))
	}
}

func handleGetFeatured(svc *catalog.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		items, err := svc.Featured(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get featured products: %v", err)), nil
		}
		return jsonResult(items)
	}
}

func handleListIssues(svc *catalog.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		issues, err := svc.Issues(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list known issues: %v", err)), nil
		}

		if status := req.GetString("status", ""); status != "" {
			matched := make([]catalog.IssueItem, 0, len(issues))
			for _, it := range issues {
				if it.Status == status {
					matched = append(matched, it)
				}
			}
			issues = matched
		}
		return jsonResult(issues)
	}
}

func handleListReleases(svc *catalog.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		releases, err := svc.Releases(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list releases: %v", err)), nil
		}
		return jsonResult(limitItems(releases, req.GetInt("limit", 20), 100))
	}
}

func handleList[T any](list func(context.Context) ([]T, error), name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		items, err := list(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list %s: %v", name, err)), nil
		}
		return jsonResult(items)
	}
}

// Helper functions

func limitItems[T any](items []T, limit, max int) []T {
	if limit <= 0 {
		limit = 1
	}
	if limit > max {
		limit = max
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func jsonResult[T any](items []T) (*mcp.CallToolResult, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
