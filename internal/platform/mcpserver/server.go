// Package mcpserver exposes a single Tower of Hanoi game as MCP tools over
// stdio, so an assistant can play, inspect and auto-solve the puzzle.
package mcpserver

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// LockedMessage is returned when a peg is activated during auto-solve.
const LockedMessage = "Auto-solve is running; manual moves are locked."

// maxListedMoves caps hanoi_solution output.
const maxListedMoves = 1023

// headless is large enough that no disk count pauses the game for a small
// window; nothing is ever drawn.
var headless = core.RuntimeConfig{ScreenW: 200, ScreenH: 40, TickRate: 60}

// Server owns one game and serializes every tool call against it.
type Server struct {
	mu        sync.Mutex
	game      *hanoi.Game
	store     *storage.Store
	saved     *core.Outcome
	logger    *log.Logger
	mcpServer *server.MCPServer
}

// New creates a server around a fresh game built from cfg. store may be nil.
func New(cfg config.HanoiConfig, store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		game:   hanoi.New(cfg, hanoi.WithLogger(logger)),
		store:  store,
		logger: logger,
	}
	s.game.Reset(headless)

	s.initMCPServer()
	return s
}

func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		"Tower of Hanoi",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Tower of Hanoi - MCP Interface

Move every disk from peg 1 to peg 3. Only the top disk of a peg can move,
and a disk may never sit on a smaller one. Pegs are numbered 1 to 3.

AVAILABLE TOOLS:
- hanoi_new_game: start a new puzzle with a given number of disks
- hanoi_state: show the pegs, move count and last message
- hanoi_activate_peg: click a peg (first click selects, second click moves)
- hanoi_move: move the top disk from one peg to another
- hanoi_solution: list the optimal moves for a disk count
- hanoi_auto_solve: let the solver play a number of moves
- hanoi_stop: stop a running auto-solve`),
	)

	s.registerTools()
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "hanoi_new_game",
		Description: "Start a new puzzle. Stops any running auto-solve.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"disks": map[string]interface{}{
					"type":        "integer",
					"description": fmt.Sprintf("Number of disks (%d-%d)", config.MinDisks, config.MaxDisks),
				},
			},
		},
	}, s.handleNewGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "hanoi_state",
		Description: "Get the current puzzle state",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "hanoi_activate_peg",
		Description: "Activate a peg as if it was clicked: select a source, or move the selected disk onto it",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"peg": map[string]interface{}{
					"type":        "integer",
					"description": "Peg number (1-3)",
				},
			},
			Required: []string{"peg"},
		},
	}, s.handleActivatePeg)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "hanoi_move",
		Description: "Move the top disk from one peg to another",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"from": map[string]interface{}{
					"type":        "integer",
					"description": "Source peg (1-3)",
				},
				"to": map[string]interface{}{
					"type":        "integer",
					"description": "Destination peg (1-3)",
				},
			},
			Required: []string{"from", "to"},
		},
	}, s.handleMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "hanoi_solution",
		Description: "List the optimal solution for a disk count without touching the game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"disks": map[string]interface{}{
					"type":        "integer",
					"description": "Number of disks (defaults to the current game)",
				},
			},
		},
	}, s.handleSolution)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "hanoi_auto_solve",
		Description: "Start auto-solve if idle, then play the given number of solver ticks (0 plays to the end)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"steps": map[string]interface{}{
					"type":        "integer",
					"description": "Playback ticks to advance; 0 or missing runs to completion",
				},
			},
		},
	}, s.handleAutoSolve)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "hanoi_stop",
		Description: "Stop a running auto-solve and unlock manual moves",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleStop)
}

func (s *Server) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	disks, ok := intArg(request, "disks")
	if !ok {
		disks = s.game.Puzzle().DiskCount()
	}
	s.game.NewGame(disks)
	return s.stateResult(), nil
}

func (s *Server) handleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateResult(), nil
}

func (s *Server) handleActivatePeg(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	peg, ok := intArg(request, "peg")
	if !ok {
		return mcp.NewToolResultError("peg is required"), nil
	}
	if s.game.ControlsLocked() {
		return s.lockedResult(), nil
	}

	s.game.ActivatePeg(peg - 1)
	return s.stateResult(), nil
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, okFrom := intArg(request, "from")
	to, okTo := intArg(request, "to")
	if !okFrom || !okTo {
		return mcp.NewToolResultError("from and to are required"), nil
	}
	if s.game.ControlsLocked() {
		return s.lockedResult(), nil
	}

	s.game.Move(from-1, to-1)
	return s.stateResult(), nil
}

func (s *Server) handleSolution(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	disks, ok := intArg(request, "disks")
	if !ok {
		disks = s.game.Puzzle().DiskCount()
	}
	s.mu.Unlock()

	disks = config.ClampDisks(disks)
	plan := hanoi.Solve(disks)

	var b strings.Builder
	fmt.Fprintf(&b, "Optimal solution for %d disks: %d moves\n", disks, len(plan))
	for i, m := range plan {
		if i == maxListedMoves {
			fmt.Fprintf(&b, "... %d more\n", len(plan)-i)
			break
		}
		fmt.Fprintf(&b, "%4d. %s\n", i+1, m)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleAutoSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.game.Puzzle().AutoPlaying() {
		s.game.StartAutoSolve()
	}

	// One extra tick lets playback notice the plan is exhausted. Capping
	// there also keeps the duration below from overflowing.
	limit := s.game.Remaining() + 1
	steps, _ := intArg(request, "steps")
	if steps <= 0 || steps > limit {
		steps = limit
	}
	s.game.Advance(s.game.Interval() * time.Duration(steps))

	s.saveOutcome()
	return s.stateResult(), nil
}

func (s *Server) handleStop(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Puzzle().AutoPlaying() {
		s.game.StopAutoSolve(true)
	}
	return s.stateResult(), nil
}

// stateResult saves a fresh outcome and renders the current snapshot.
func (s *Server) stateResult() *mcp.CallToolResult {
	s.saveOutcome()
	return mcp.NewToolResultText(s.game.Snapshot().String())
}

func (s *Server) lockedResult() *mcp.CallToolResult {
	return mcp.NewToolResultText(s.game.Snapshot().String() + LockedMessage + "\n")
}

// saveOutcome stores a newly finished round exactly once.
func (s *Server) saveOutcome() {
	outcome := s.game.State().Outcome
	if outcome == nil || outcome == s.saved {
		return
	}
	s.saved = outcome
	if s.store == nil {
		return
	}
	if _, err := s.store.SaveOutcome(*outcome); err != nil {
		s.logger.Warn("could not save result", "error", err)
	}
}

// Snapshot returns the current game snapshot.
func (s *Server) Snapshot() hanoi.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// GetMCPServer returns the underlying MCP server.
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// Run serves MCP over stdin/stdout until the client disconnects.
func (s *Server) Run() error {
	s.logger.Info("starting MCP server on stdio")
	return server.ServeStdio(s.mcpServer)
}

// intArg reads a numeric argument. JSON numbers arrive as float64.
func intArg(request mcp.CallToolRequest, name string) (int, bool) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return 0, false
	}
	switch v := args[name].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n, true
		}
	}
	return 0, false
}
