// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"log/slog"
	"net/http"

	"tasktrack/internal/app"
	"tasktrack/internal/token"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth   *app.AuthService
	tasks  *app.TaskService
	users  *app.UserService
	tokens *token.Issuer
	log    *slog.Logger
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, tasks *app.TaskService, users *app.UserService, tokens *token.Issuer, log *slog.Logger) *Server {
	return &Server{auth: auth, tasks: tasks, users: users, tokens: tokens, log: log}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/register", s.handleRegister)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/exists/", s.handleUserExists)

	api.Handle("/tasks", s.requireAuth(http.HandlerFunc(s.handleTasks)))
	api.Handle("/tasks/", s.requireAuth(http.HandlerFunc(s.handleTaskByID)))
	api.Handle("/users/", s.requireAuth(http.HandlerFunc(s.handleUserByID)))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(root)
}
