package remotedom

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ServerConfig configures the WebSocket endpoint.
type ServerConfig struct {
	// ReadBufferSize is the WebSocket read buffer size.
	// Default: 4096.
	ReadBufferSize int

	// WriteBufferSize is the WebSocket write buffer size.
	// Default: 4096.
	WriteBufferSize int

	// CheckOrigin is called to validate the request origin.
	// Default: allows all origins (not recommended for production).
	CheckOrigin func(r *http.Request) bool

	// Logger is the server's logger. Default: slog.Default().
	Logger *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*ServerConfig)

// WithCheckOrigin sets the origin check for the WebSocket upgrade.
func WithCheckOrigin(fn func(r *http.Request) bool) ServerOption {
	return func(c *ServerConfig) {
		c.CheckOrigin = fn
	}
}

// WithLogger sets the server's logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(c *ServerConfig) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// Server upgrades HTTP requests to WebSocket sessions, each with its
// own remote Document. The connect callback builds the session's
// initial tree (and typically creates a toast.Notifier around the
// document); after it returns, the buffered ops flush to the client
// in one burst and the event loop starts.
type Server struct {
	onConnect func(doc *Document)
	upgrader  websocket.Upgrader
	logger    *slog.Logger
}

// NewServer creates a WebSocket server driving one remote Document
// per connection.
func NewServer(onConnect func(doc *Document), opts ...ServerOption) *Server {
	cfg := ServerConfig{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		Logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}

	return &Server{
		onConnect: onConnect,
		logger:    cfg.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     checkOrigin,
		},
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("remotedom: upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	doc := NewDocument(s.logger)
	if s.onConnect != nil {
		s.onConnect(doc)
	}
	doc.SetSink(&wsSink{conn: conn})
	// Detach on exit so late timer callbacks buffer instead of
	// writing to a dead connection.
	defer doc.SetSink(nil)

	s.readLoop(conn, doc)
}

// readLoop decodes inbound frames and dispatches client events until
// the connection closes.
func (s *Server) readLoop(conn *websocket.Conn, doc *Document) {
	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("remotedom: read error", "error", err)
			}
			return
		}

		switch frame.Type {
		case "event":
			doc.DispatchEvent(frame.ID, frame.Event)
		default:
			s.logger.Warn("remotedom: unknown frame type", "type", frame.Type)
		}
	}
}

// wsSink writes op frames to one WebSocket connection. gorilla
// connections allow one concurrent writer, so writes serialize on a
// mutex.
type wsSink struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *wsSink) WriteOps(ops []Op) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(Frame{Type: "ops", Ops: ops})
}
