package repl

import (
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/wisp-lang/wisp/pkg/eval"
	"github.com/wisp-lang/wisp/pkg/printer"
	"github.com/wisp-lang/wisp/pkg/reader"
	"github.com/wisp-lang/wisp/pkg/value"
)

// Request is one evaluation request sent over a websocket connection.
type Request struct {
	Input string `json:"input"`
}

// Response is the reply to a Request: at most one of Result or Error is set.
// Both are empty when the input held no forms to evaluate.
type Response struct {
	SessionID string `json:"session_id"`
	Result    string `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Server is a network REPL: each websocket connection is a session that
// evaluates forms sent as Requests and writes back Responses.
type Server struct {
	upgrader websocket.Upgrader

	// SharedEnv, when set, is used by every connection instead of giving
	// each its own global environment — definitions made by one session
	// become visible to every other, guarded by mu.
	SharedEnv *value.Environment
	mu        sync.Mutex
}

// NewServer creates a Server. When shared is non-nil every connection
// evaluates against it under a shared lock; when nil, each connection gets
// its own fresh global environment from eval.MakeGlobalEnvironment.
func NewServer(shared *value.Environment) *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		SharedEnv: shared,
	}
}

// ServeHTTP upgrades the connection to a websocket and runs one session on
// it until the client disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("wisp repl: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	env := s.SharedEnv
	if env == nil {
		env = eval.MakeGlobalEnvironment()
	}

	log.Printf("wisp repl: session %s connected", sessionID)
	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			log.Printf("wisp repl: session %s closed: %v", sessionID, err)
			return
		}
		resp := s.evaluate(sessionID, req.Input, env)
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("wisp repl: session %s write failed: %v", sessionID, err)
			return
		}
	}
}

func (s *Server) evaluate(sessionID, input string, env *value.Environment) Response {
	if s.SharedEnv != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	forms, err := reader.ReadAll(sessionID, strings.NewReader(input))
	if err != nil {
		return Response{SessionID: sessionID, Error: err.Error()}
	}

	var last *value.Value
	for _, form := range forms {
		last, err = eval.Evaluate(form, env)
		if err != nil {
			return Response{SessionID: sessionID, Error: err.Error()}
		}
	}
	if last == nil {
		return Response{SessionID: sessionID, Result: ""}
	}
	return Response{SessionID: sessionID, Result: printer.Write(last)}
}
