// Package server exposes the hand scorer over HTTP and websockets. The
// service is stateless: every request carries a full hand listing and gets
// back the totals, nothing is retained between requests.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/cameldeck/camelcards/camel"
	"github.com/cameldeck/camelcards/internal/handfile"
)

// Server scores hand listings over HTTP POST and a websocket stream
type Server struct {
	cfg      Config
	upgrader websocket.Upgrader
	logger   *log.Logger
	clock    quartz.Clock
}

// New creates a new scoring server
func New(cfg Config, logger *log.Logger, clock quartz.Clock) *Server {
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Scoring is stateless and read-only, any origin may connect
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("server"),
		clock:  clock,
	}
}

// Handler returns the HTTP handler serving /score, /ws and /health
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/score", s.handleScore)
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start runs the HTTP server until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting scoring server", "addr", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// scoreResponse is the JSON body returned by /score and per websocket batch
type scoreResponse struct {
	Totals camel.Totals `json:"totals"`
	Hands  []scoredHand `json:"hands,omitempty"`
}

// scoredHand describes one hand's placement under both rule variants
type scoredHand struct {
	Cards            string `json:"cards"`
	Stake            int64  `json:"stake"`
	StandardRank     int    `json:"standard_rank"`
	StandardCategory string `json:"standard_category"`
	WildcardRank     int    `json:"wildcard_rank"`
	WildcardCategory string `json:"wildcard_category"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleScore scores a hand listing sent as the request body. The optional
// mode query parameter restricts the response to one variant.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	hands, err := handfile.Read(http.MaxBytesReader(w, r.Body, s.cfg.Server.ReadLimit))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	var totals camel.Totals
	switch mode := r.URL.Query().Get("mode"); mode {
	case "":
		totals, err = camel.ScoreBoth(hands)
	default:
		m, perr := camel.ParseMode(mode)
		if perr != nil {
			s.writeError(w, http.StatusBadRequest, perr)
			return
		}
		var total int64
		total, err = camel.Score(hands, m)
		if m == camel.Standard {
			totals.Standard = total
		} else {
			totals.Wildcard = total
		}
	}
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	s.logger.Info("Scored listing", "hands", len(hands), "remote", r.RemoteAddr)
	s.writeJSON(w, http.StatusOK, scoreResponse{Totals: totals})
}

// handleWebSocket upgrades the connection and scores each text message as a
// complete hand listing, replying with the per-hand breakdown and totals.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.cfg.Server.ReadLimit)

	s.logger.Info("Client connected", "remote", conn.RemoteAddr())

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Writes come from both the read loop and the ping loop
	var writeMu sync.Mutex

	go s.pingLoop(ctx, conn, &writeMu)

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("Connection closed unexpectedly", "error", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		resp, err := scoreListing(string(payload))
		writeMu.Lock()
		if err != nil {
			err = conn.WriteJSON(errorResponse{Error: err.Error()})
		} else {
			err = conn.WriteJSON(resp)
		}
		writeMu.Unlock()
		if err != nil {
			s.logger.Error("Failed to write response", "error", err)
			return
		}
	}
}

// pingLoop sends keepalive pings until the connection context ends.
func (s *Server) pingLoop(ctx context.Context, conn *websocket.Conn, writeMu *sync.Mutex) {
	interval := time.Duration(s.cfg.Server.PingInterval) * time.Second
	ticker := s.clock.NewTicker(interval, "ping")
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			writeMu.Lock()
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
			writeMu.Unlock()
			if err != nil {
				s.logger.Debug("Keepalive ping failed", "error", err)
				return
			}
		}
	}
}

// scoreListing parses and ranks a listing under both variants.
func scoreListing(listing string) (scoreResponse, error) {
	hands, err := handfile.Read(strings.NewReader(listing))
	if err != nil {
		return scoreResponse{}, err
	}
	if len(hands) == 0 {
		return scoreResponse{}, fmt.Errorf("empty hand listing")
	}

	standard, err := camel.Rank(hands, camel.Standard)
	if err != nil {
		return scoreResponse{}, err
	}
	wildcard, err := camel.Rank(hands, camel.Wildcard)
	if err != nil {
		return scoreResponse{}, err
	}

	resp := scoreResponse{Hands: make([]scoredHand, len(hands))}
	placement := make(map[string]*scoredHand, len(hands))
	for i, h := range hands {
		resp.Hands[i] = scoredHand{Cards: h.String(), Stake: h.Stake()}
		placement[h.String()] = &resp.Hands[i]
	}
	for i, r := range standard {
		sh := placement[r.Hand.String()]
		sh.StandardRank = i + 1
		sh.StandardCategory = r.Category.String()
		resp.Totals.Standard += int64(i+1) * r.Hand.Stake()
	}
	for i, r := range wildcard {
		sh := placement[r.Hand.String()]
		sh.WildcardRank = i + 1
		sh.WildcardCategory = r.Category.String()
		resp.Totals.Wildcard += int64(i+1) * r.Hand.Stake()
	}
	return resp, nil
}

// handleHealth is a liveness endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Warn("Request rejected", "status", status, "error", err)
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
