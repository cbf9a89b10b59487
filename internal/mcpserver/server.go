// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Mannaz portfolio tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/mannaz/internal/models"
	"github.com/starford/mannaz/internal/portfolioservice"
)

// Sections a tool call may replace on the portfolio document.
var portfolioSections = map[string]bool{
	"personal":       true,
	"socialLinks":    true,
	"skills":         true,
	"projects":       true,
	"experience":     true,
	"certifications": true,
	"achievements":   true,
	"codingProfiles": true,
}

// Server wraps the MCP server with Mannaz tools.
type Server struct {
	mcp *server.MCPServer
	svc *portfolioservice.Service
}

// New creates a new MCP server with all Mannaz tools registered.
func New(svc *portfolioservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Mannaz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_portfolio",
		mcp.WithDescription("Read the current portfolio document as JSON."),
	), s.getPortfolio)

	s.mcp.AddTool(mcp.NewTool("update_portfolio_section",
		mcp.WithDescription("Replace one top-level section of the portfolio document. "+
			"The section content MUST follow the portfolio document format; read it first "+
			"via the get_portfolio_format tool or the mannaz://portfolio-format resource. "+
			"The section is replaced wholesale, so always send the complete section."),
		mcp.WithString("section", mcp.Required(), mcp.Description("Section name (e.g. personal, skills, projects)")),
		mcp.WithString("content", mcp.Required(), mcp.Description("JSON value for the section")),
	), s.updatePortfolioSection)

	s.mcp.AddTool(mcp.NewTool("get_portfolio_format",
		mcp.WithDescription("Returns the canonical portfolio document format. "+
			"Call this before updating portfolio sections to ensure correct structure."),
	), s.getPortfolioFormat)

	s.mcp.AddTool(mcp.NewTool("list_contact_submissions",
		mcp.WithDescription("List contact-form submissions, newest first."),
		mcp.WithString("status", mcp.Description("Optional status filter (new, read, responded)")),
	), s.listContactSubmissions)

	s.mcp.AddTool(mcp.NewTool("update_submission_status",
		mcp.WithDescription("Set the status of a contact submission."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Submission id")),
		mcp.WithString("status", mcp.Required(), mcp.Description("New status (conventionally new, read or responded)")),
	), s.updateSubmissionStatus)

	// Resource: portfolio document format contract.
	s.mcp.AddResource(
		mcp.NewResource("mannaz://portfolio-format", "Portfolio Document Format",
			mcp.WithResourceDescription("Canonical JSON shape of the portfolio document."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readPortfolioFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) getPortfolio(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := s.svc.GetPortfolio(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(p, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) updatePortfolioSection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section, err := req.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !portfolioSections[section] {
		return mcp.NewToolResultError(fmt.Sprintf("unknown section: %s", section)), nil
	}

	payload, err := json.Marshal(map[string]json.RawMessage{section: json.RawMessage(content)})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid JSON content: %v", err)), nil
	}
	var update models.PortfolioUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("content does not match section shape: %v", err)), nil
	}
	if err := update.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := s.svc.UpdatePortfolio(ctx, update)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("updated section %s of portfolio %s", section, p.ID)), nil
}

func (s *Server) listContactSubmissions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := ""
	if v, err := req.RequireString("status"); err == nil {
		status = v
	}
	subs, err := s.svc.ListContacts(ctx, status, 0, 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(subs, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) updateSubmissionStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	status, err := req.RequireString("status")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.svc.UpdateContactStatus(ctx, id, status); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("submission %s marked %s", id, status)), nil
}

func (s *Server) getPortfolioFormat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(PortfolioFormatContract), nil
}

func (s *Server) readPortfolioFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "mannaz://portfolio-format",
			MIMEType: "text/markdown",
			Text:     PortfolioFormatContract,
		},
	}, nil
}
