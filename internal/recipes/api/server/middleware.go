package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/Leopold1975/recipes/internal/recipes/api/oapi"
	"github.com/Leopold1975/recipes/internal/recipes/domain/models"
	"github.com/Leopold1975/recipes/internal/recipes/services/authservice"
	"github.com/Leopold1975/recipes/pkg/logger"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

type userCtxKey struct{}

func withUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

func userFromContext(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(models.User)

	return u, ok
}

func loggingMiddleware(logg logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rr := httptest.NewRecorder()

			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			defer func() {
				latency := time.Since(start).String()

				logg.Infof("REQUEST %s METHOD %s URI %s %s STATUS %d Latency %s Client IP %s User Agent %s",
					reqID,
					r.Method,
					r.URL.RequestURI(),
					r.Proto,
					rr.Code,
					latency,
					r.RemoteAddr,
					r.UserAgent(),
				)
			}()

			next.ServeHTTP(rr, r)

			for k, v := range rr.Header() {
				w.Header()[k] = v
			}

			w.Header().Set(requestIDHeader, reqID)
			w.WriteHeader(rr.Code)

			if rr.Code >= 400 && rr.Body.Len() != 0 {
				logg.Errorf("request %s error: %s", reqID, rr.Body)
			}

			_, err := rr.Body.WriteTo(w)
			if err != nil {
				logg.Errorf("middleware write error: %s", err.Error())
			}
		})
	}
}

// authMiddleware resolves the Authorization header of operations guarded by
// bearerAuth and stores the user in the request context.
func authMiddleware(auth AuthService) oapi.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !secured(r) {
				next.ServeHTTP(w, r)

				return
			}

			u, err := authenticate(r, auth)
			if err != nil {
				writeAuthError(w, err)

				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), u)))
		})
	}
}

// secured reports whether the operation was declared with bearer security.
func secured(r *http.Request) bool {
	_, ok := r.Context().Value(oapi.BearerAuthScopes).([]string)

	return ok
}

func authenticate(r *http.Request, auth AuthService) (models.User, error) {
	token, ok := tokenFromHeader(r.Header.Get("Authorization"))
	if !ok {
		return models.User{}, authservice.ErrUnauthenticated
	}

	u, err := auth.Authenticate(r.Context(), token)
	if err != nil {
		return models.User{}, fmt.Errorf("authenticate error: %w", err)
	}

	return u, nil
}

func writeAuthError(w http.ResponseWriter, err error) {
	if errors.Is(err, authservice.ErrUnauthenticated) {
		handleError(w, authservice.ErrUnauthenticated, http.StatusUnauthorized)

		return
	}

	handleError(w, ErrInternal, http.StatusInternalServerError)
}

// tokenFromHeader accepts both "Bearer <token>" and "Token <token>".
func tokenFromHeader(h string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok {
		return "", false
	}

	if !strings.EqualFold(scheme, "Bearer") && !strings.EqualFold(scheme, "Token") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

// clientIP is the peer address without its port. Behind a trusted proxy the
// RealIP middleware has already replaced it with the forwarded client.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
