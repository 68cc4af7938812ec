/*
resources.go - MCP resources for the leave engine

PURPOSE:
  Read-only context documents an agent can load without calling tools.

RESOURCES:
  hr://employees       Employee directory as JSON
  hr://leave-policies  Leave policy handbook as markdown
  hr://snapshot        Raw persisted document, byte for byte

SEE ALSO:
  - server.go: Resource registration
*/
package api

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	employeesURI = "hr://employees"
	policiesURI  = "hr://leave-policies"
	snapshotURI  = "hr://snapshot"
)

// EmployeeDirectory serves the current employee roster as indented JSON.
func (h *Handler) EmployeeDirectory(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	employees, err := h.Service.Employees(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(employees, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      employeesURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// LeavePolicies serves the policy handbook derived from the policy table.
func (h *Handler) LeavePolicies(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      policiesURI,
			MIMEType: "text/markdown",
			Text:     renderPolicies(),
		},
	}, nil
}

// Snapshot serves the persisted document exactly as it sits on disk,
// useful when an agent wants to reason over the full dataset at once.
func (h *Handler) Snapshot(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	raw, err := h.Store.Raw(ctx)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      snapshotURI,
			MIMEType: "application/json",
			Text:     string(raw),
		},
	}, nil
}
