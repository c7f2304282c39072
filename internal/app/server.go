package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/render"
)

const shutdownTimeout = 10 * time.Second

// Server serves the calendar pages and API
type Server struct {
	Config *Config
	Log    *logrus.Entry
	Store  PreferenceStore
	Fonts  *render.Fonts

	// Now is the clock used for default dates
	Now func() time.Time
}

// NewServer wires a server from its collaborators
func NewServer(cfg *Config, log *logrus.Entry, store PreferenceStore) (*Server, error) {
	fonts, err := render.LoadFonts()
	if err != nil {
		return nil, err
	}
	return &Server{
		Config: cfg,
		Log:    log,
		Store:  store,
		Fonts:  fonts,
		Now:    time.Now,
	}, nil
}

// Router returns the HTTP routes
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/", s.ServeIndex).Methods(http.MethodGet)
	r.HandleFunc("/poster.png", s.HandlePoster).Methods(http.MethodGet)

	// API routes stay on the root router so a method mismatch answers 405
	r.HandleFunc("/api/month", s.HandleMonth).Methods(http.MethodGet)
	r.HandleFunc("/api/year", s.HandleYear).Methods(http.MethodGet)
	r.HandleFunc("/api/kerning", s.HandleKerning).Methods(http.MethodGet)
	r.HandleFunc("/api/navigate", s.HandleNavigate).Methods(http.MethodGet)
	r.HandleFunc("/api/theme", s.GetTheme).Methods(http.MethodGet)
	r.HandleFunc("/api/theme", s.SetTheme).Methods(http.MethodPost)
	r.HandleFunc("/api/export", s.HandleExport).Methods(http.MethodGet)

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Config.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Log.WithField("addr", srv.Addr).Infof("listening on http://localhost:%d", s.Config.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.Log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Debug("request")
	})
}
