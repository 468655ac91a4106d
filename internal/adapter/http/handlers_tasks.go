package adapthttp

import (
	"net/http"
	"strconv"
	"strings"

	"tasktrack/internal/domain"
)

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	owner, err := subjectID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		var completed *bool
		if v := r.URL.Query().Get("completed"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, domain.ErrInvalidInput)
				return
			}
			completed = &b
		}
		items, err := s.tasks.List(r.Context(), owner, completed)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		// The owner comes from the token, never from the payload.
		task, err := s.tasks.Create(r.Context(), owner, body.Title, body.Description)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, task)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleTaskByID(w http.ResponseWriter, r *http.Request) {
	owner, err := subjectID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err)
		return
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/tasks/"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidInput)
		return
	}

	switch r.Method {
	case http.MethodGet:
		task, err := s.tasks.Get(r.Context(), owner, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, task)

	case http.MethodPut:
		var body struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			IsCompleted bool   `json:"isCompleted"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		task, err := s.tasks.Update(r.Context(), owner, id, body.Title, body.Description, body.IsCompleted)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, task)

	case http.MethodDelete:
		if err := s.tasks.Delete(r.Context(), owner, id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
