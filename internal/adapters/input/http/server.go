package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"assistant-client/internal/domain/model"
	"assistant-client/internal/infrastructure/metrics"
	"assistant-client/internal/ports"
	"github.com/amimof/huego"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// HeaderStale marks responses served from the local cache after the
// upstream call failed.
const HeaderStale = "X-Assistant-Stale"

// Server is the local gateway: it exposes the repository over HTTP so LAN
// dashboards can show rooms and things, even while the assistant is offline.
type Server struct {
	repo    ports.RepositoryPort
	control ports.ThingControlPort
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewServer(repo ports.RepositoryPort, control ports.ThingControlPort, m *metrics.Metrics, log *zap.Logger) *Server {
	return &Server{
		repo:    repo,
		control: control,
		metrics: m,
		log:     log.Named("gateway"),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	if s.metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/rooms", s.handleRooms)
		r.Route("/rooms/{roomID}/things", func(r chi.Router) {
			r.Get("/", s.handleThings)
			r.Get("/{thingID}/hue", s.handleThingHue)
			r.Put("/{thingID}/state", s.handleSetThingState)
		})
		r.Post("/actions", s.handleAction)
	})
	return r
}

// ListenAndServe runs until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("gateway listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.repo.Rooms(r.Context())
	if rooms == nil {
		rooms = []model.Room{}
	}
	s.writeResult(w, model.RoomList{Rooms: rooms}, len(rooms) > 0, err)
}

func (s *Server) handleThings(w http.ResponseWriter, r *http.Request) {
	things, err := s.repo.Things(r.Context(), chi.URLParam(r, "roomID"))
	if things == nil {
		things = []model.Thing{}
	}
	s.writeResult(w, model.ThingList{Things: things}, len(things) > 0, err)
}

func (s *Server) handleThingHue(w http.ResponseWriter, r *http.Request) {
	thing, stale, err := s.findThing(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if stale {
		w.Header().Set(HeaderStale, "true")
	}
	writeJSON(w, http.StatusOK, s.control.Display(thing))
}

// stateUpdate is the Hue-style body accepted by the state endpoint.
type stateUpdate struct {
	On  *bool  `json:"on"`
	Bri *uint8 `json:"bri"`
}

func (s *Server) handleSetThingState(w http.ResponseWriter, r *http.Request) {
	var update stateUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorBody{Status: "ERROR", Message: "malformed state"})
		return
	}

	thing, _, err := s.findThing(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	// Start from the current state so partial updates keep the rest.
	target := s.control.Display(thing)
	if target == nil {
		target = &huego.State{}
	}
	if update.On != nil {
		target.On = *update.On
	}
	if update.Bri != nil {
		target.Bri = *update.Bri
		if update.On == nil {
			target.On = *update.Bri > 0
		}
	}

	echo, err := s.control.SetState(r.Context(), thing, target)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, echo)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var msg model.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorBody{Status: "ERROR", Message: "malformed message"})
		return
	}
	echo, err := s.repo.Action(r.Context(), msg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, echo)
}

// findThing looks the thing up through the repository, so a cached copy is
// used when the assistant cannot be reached.
func (s *Server) findThing(r *http.Request) (*model.Thing, bool, error) {
	roomID := chi.URLParam(r, "roomID")
	thingID := chi.URLParam(r, "thingID")

	things, err := s.repo.Things(r.Context(), roomID)
	for i := range things {
		if things[i].ID == thingID {
			return &things[i], err != nil, nil
		}
	}
	if err != nil {
		return nil, false, err
	}
	return nil, false, &model.APIError{Status: http.StatusNotFound, Code: model.CodeNotFound, Message: "no thing " + thingID + " in room " + roomID}
}

func (s *Server) writeResult(w http.ResponseWriter, body interface{}, hasData bool, err error) {
	if err != nil && !hasData {
		s.writeError(w, err)
		return
	}
	if err != nil {
		w.Header().Set(HeaderStale, "true")
		s.log.Info("serving stale data", zap.Error(err))
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	message := err.Error()
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == http.StatusUnauthorized, apiErr.Status == http.StatusNotFound:
			status = apiErr.Status
		case apiErr.Code == model.CodeInvalidRequest:
			status = http.StatusBadRequest
		}
		if apiErr.Message != "" {
			message = apiErr.Message
		}
	}
	writeJSON(w, status, model.ErrorBody{Status: "ERROR", Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
