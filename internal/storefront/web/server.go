package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/storefront"
	"github.com/dwikikusuma/storefront/internal/storefront/page"
	"github.com/dwikikusuma/storefront/internal/storefront/session"
)

const cookieName = "storefront_session"

type Server struct {
	screen   *storefront.Screen
	catalog  *catalogapp.Service
	sessions *session.Store
	log      *slog.Logger
}

func NewServer(screen *storefront.Screen, sessions *session.Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		screen:   screen,
		catalog:  screen.Catalog,
		sessions: sessions,
		log:      log,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/", s.handleIndex)
	r.Post("/cart/add", s.handleAdd)
	r.Post("/cart/remove", s.handleRemove)
	r.Post("/checkout", s.handleCheckout)
	r.Post("/checkout/close", s.handleClose)
	return r
}

// view resolves the caller's storefront view, starting a new one (and
// setting the cookie) when the session is missing or expired.
func (s *Server) view(w http.ResponseWriter, r *http.Request) *cartapp.Service {
	var id string
	if c, err := r.Cookie(cookieName); err == nil {
		id = c.Value
	}

	view, sessionID, created := s.sessions.View(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return view
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := s.view(w, r)

	p, err := s.screen.Page(r.Context(), view.Snapshot())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := page.RenderHTML(&buf, p); err != nil {
		s.writeError(w, r, fmt.Errorf("render: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	view := s.view(w, r)
	if err := r.ParseForm(); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", catalogapp.ErrInvalidInput, err))
		return
	}

	product, err := s.catalog.GetProduct(r.Context(), r.PostForm.Get("product_id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view.AddToCart(product)
	redirectHome(w, r)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	view := s.view(w, r)
	if err := r.ParseForm(); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", catalogapp.ErrInvalidInput, err))
		return
	}

	view.RemoveFromCart(r.PostForm.Get("product_id"))
	redirectHome(w, r)
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	s.view(w, r).HandleCheckout()
	redirectHome(w, r)
}

func (s *Server) handleClose(w http.ResponseWriter, r *http.Request) {
	s.view(w, r).DismissCheckoutDialog()
	redirectHome(w, r)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := httpStatusFromError(err)

	attrs := []any{
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("code", code),
		slog.Any("err", err),
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", attrs...)
	} else {
		s.log.Debug("request rejected", attrs...)
	}

	http.Error(w, code+": "+msg, status)
}

func httpStatusFromError(err error) (int, string, string) {
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT", err.Error()
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "UNAVAILABLE", "request cancelled"
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
