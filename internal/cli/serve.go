package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/den3110/pulsemap/pkg/buildinfo"
	pkgerrors "github.com/den3110/pulsemap/pkg/errors"
	"github.com/den3110/pulsemap/pkg/pipeline"
	"github.com/den3110/pulsemap/pkg/topology"
)

// serveCommand creates the serve command running the layout HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout HTTP API",
		Long: `Run the layout HTTP API.

The server exposes the layout engine to the control panel:

  POST /api/v1/layout   compute a layout for a posted topology
  GET  /healthz         liveness probe
  GET  /version         build information

The layout endpoint is stateless: every request carries the full topology
and receives a complete positioned snapshot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("layout API listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// =============================================================================
// Router
// =============================================================================

// newRouter builds the chi router with all API routes registered.
func (c *CLI) newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(c.requestIDMiddleware)

	r.Post("/api/v1/layout", c.handleLayout)
	r.Get("/healthz", handleHealth)
	r.Get("/version", handleVersion)

	return r
}

// requestIDMiddleware assigns each request a UUID, echoes it in the
// X-Request-ID header, and attaches a request-scoped logger.
func (c *CLI) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		logger := c.Logger.With("request_id", id)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), logger)))
	})
}

// =============================================================================
// Handlers
// =============================================================================

// layoutRequest is the body of POST /api/v1/layout: the raw topology plus
// optional canvas and simulation overrides.
type layoutRequest struct {
	Topology topology.Topology `json:"topology"`
	Options  pipeline.Options  `json:"options"`
}

// layoutResponse wraps the snapshot with computation statistics.
type layoutResponse struct {
	Layout       topology.Layout `json:"layout"`
	DroppedEdges int             `json:"dropped_edges"`
	LayoutTimeMS int64           `json:"layout_time_ms"`
}

// handleLayout computes a layout for the posted topology.
func (c *CLI) handleLayout(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidInput, err, "malformed request body"))
		return
	}

	opts := req.Options
	opts.Logger = logger

	snapshot, stats, err := pipeline.GenerateLayout(r.Context(), req.Topology, opts)
	if err != nil {
		logger.Error("layout failed", "error", err)
		writeError(w, err)
		return
	}

	logger.Info("layout computed",
		"nodes", stats.NodeCount,
		"edges", stats.EdgeCount,
		"dropped_edges", stats.DroppedEdges,
		"duration", stats.LayoutTime)

	writeJSON(w, http.StatusOK, layoutResponse{
		Layout:       snapshot,
		DroppedEdges: stats.DroppedEdges,
		LayoutTimeMS: stats.LayoutTime.Milliseconds(),
	})
}

// handleHealth is the liveness probe.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion reports build information.
func handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"date":    buildinfo.Date,
	})
}

// =============================================================================
// Response Helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the JSON error body for all API failures.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: pkgerrors.UserMessage(err)}
	if code := pkgerrors.GetCode(err); code != "" {
		resp.Code = string(code)
	}
	writeJSON(w, pkgerrors.HTTPStatus(err), resp)
}
