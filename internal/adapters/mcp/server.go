package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/dial"
	"github.com/aretw0/dial/pkg/domain"
	"github.com/aretw0/dial/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SimulateResponse is the structured result of the simulate tool.
type SimulateResponse struct {
	*runner.Report
	Steps []domain.Step `json:"steps" jsonschema_description:"Outcome of every applied command, in order"`
}

// ParseResponse is the structured result of the parse_command tool.
type ParseResponse struct {
	Direction string `json:"direction" jsonschema_description:"L (backward) or R (forward)"`
	Magnitude int    `json:"magnitude" jsonschema_description:"Number of steps"`
}

// Server exposes dial simulations as MCP tools.
type Server struct {
	perimeter int
	start     int
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	mcpServer *server.MCPServer
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithLifecycleHooks registers hooks fired by every simulate call.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.hooks = hooks
	}
}

// NewServer creates a new MCP Server whose simulations default to the given dial.
func NewServer(perimeter, start int, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		perimeter: perimeter,
		start:     start,
		logger:    logger,
		mcpServer: server.NewMCPServer("dial-mcp", strings.TrimSpace(dial.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	simulateTool := mcp.NewTool("simulate",
		mcp.WithDescription("Apply rotation commands (e.g. L68, R48) to a circular dial and report positions and zero crossings."),
		mcp.WithString("commands", mcp.Required(), mcp.Description("Newline or whitespace separated command tokens")),
		mcp.WithNumber("perimeter", mcp.Description("Number of positions on the dial (optional)")),
		mcp.WithNumber("start", mcp.Description("Initial pointer position (optional)")),
		mcp.WithOutputSchema[SimulateResponse](),
	)
	s.mcpServer.AddTool(simulateTool, mcp.NewStructuredToolHandler(s.handleSimulate))

	parseTool := mcp.NewTool("parse_command",
		mcp.WithDescription("Parse a single command token into its direction and magnitude."),
		mcp.WithString("token", mcp.Required(), mcp.Description("Command token such as L68")),
		mcp.WithOutputSchema[ParseResponse](),
	)
	s.mcpServer.AddTool(parseTool, mcp.NewStructuredToolHandler(s.handleParse))
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SimulateResponse, error) {
	commands, _ := args["commands"].(string)

	perimeter, err := intArg(args, "perimeter", s.perimeter)
	if err != nil {
		return SimulateResponse{}, err
	}
	start, err := intArg(args, "start", s.start)
	if err != nil {
		return SimulateResponse{}, err
	}

	d, err := domain.NewDial(perimeter, start)
	if err != nil {
		return SimulateResponse{}, err
	}

	var steps []domain.Step
	collect := domain.LifecycleHooks{
		OnApply: func(_ context.Context, e *domain.ApplyEvent) {
			steps = append(steps, e.Step)
		},
	}
	run := runner.NewRunner(
		runner.WithLogger(s.logger),
		runner.WithLifecycleHooks(collect.Merge(s.hooks)),
	)

	report, err := run.RunTokens(ctx, d, strings.Fields(commands))
	if err != nil {
		s.logger.Warn("MCP simulate: rejected input", "error", err)
		return SimulateResponse{}, fmt.Errorf("simulate failed: %w", err)
	}
	return SimulateResponse{Report: report, Steps: steps}, nil
}

func (s *Server) handleParse(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ParseResponse, error) {
	token, _ := args["token"].(string)
	cmd, err := domain.ParseCommand(strings.TrimSpace(token))
	if err != nil {
		return ParseResponse{}, err
	}
	return ParseResponse{Direction: cmd.Direction.String(), Magnitude: cmd.Magnitude}, nil
}

// intArg reads an optional integral JSON number.
func intArg(args map[string]interface{}, key string, def int) (int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return def, nil
	}
	f, ok := raw.(float64)
	if !ok || f != float64(int(f)) {
		return 0, fmt.Errorf("%s must be an integer, got %v", key, raw)
	}
	return int(f), nil
}
