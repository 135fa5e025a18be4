package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/labyrinth"
	"github.com/aretw0/labyrinth/internal/presentation/graph"
	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/aretw0/labyrinth/pkg/ports"
	"github.com/aretw0/labyrinth/pkg/schema"
	"github.com/aretw0/labyrinth/pkg/word"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const automatonURI = "labyrinth://automaton"

// RunResponse is the structured result of run_word.
type RunResponse struct {
	Run     *domain.RunRecord `json:"run" jsonschema_description:"The classified run"`
	Message string            `json:"message" jsonschema_description:"Human readable verdict"`
}

// Server wraps a Simulator and exposes it as an MCP Server.
type Server struct {
	engine    ports.Simulator
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Simulator) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("labyrinth-mcp", strings.TrimSpace(labyrinth.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server, mainly for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: run_word
	runTool := mcp.NewTool("run_word",
		mcp.WithDescription("Run a word through the automaton and classify it (idle, accepted, returned, trapped)."),
		mcp.WithString("word", mcp.Required(),
			mcp.Description("Tokens separated by spaces or commas, e.g. \"cima direita pegar baixo esquerda\"")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRunWord))

	// TOOL: describe_automaton
	s.mcpServer.AddTool(mcp.NewTool("describe_automaton",
		mcp.WithDescription("Get the automaton definition: alphabet, states, initial and accepting states, transitions."),
	), s.handleDescribe)

	// TOOL: get_graph
	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get a Mermaid flowchart of the automaton, optionally highlighting a stored run."),
		mcp.WithString("run_id", mcp.Description("ID of a stored run to highlight (optional)")),
	), s.handleGraph)
}

func (s *Server) handleRunWord(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	text, _ := args["word"].(string)

	run, err := s.engine.Simulate(ctx, word.Split(text))
	if err != nil {
		return RunResponse{}, fmt.Errorf("run failed: %w", err)
	}
	return RunResponse{Run: run, Message: run.Outcome.Message()}, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := s.definitionJSON()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("describe failed: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var overlay *graph.GraphOverlay
	if id := request.GetString("run_id", ""); id != "" {
		run, err := s.engine.GetRun(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("run lookup failed: %v", err)), nil
		}
		overlay = graph.OverlayFromTrace(run.Trace)
	}
	return mcp.NewToolResultText(graph.GenerateMermaid(s.engine.Automaton(), overlay)), nil
}

func (s *Server) definitionJSON() (string, error) {
	def, err := schema.FromAutomaton(s.engine.Automaton())
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(def)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Server) registerResources() {
	// EXPOSE: labyrinth://automaton
	s.mcpServer.AddResource(mcp.NewResource(automatonURI, "Automaton Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := s.definitionJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to describe automaton: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      automatonURI,
				MIMEType: "application/json",
				Text:     text,
			},
		}, nil
	})
}
