package adapthttp

import (
	"net/http"
	"strconv"
	"strings"

	"tasktrack/internal/domain"
)

func (s *Server) handleUserByID(w http.ResponseWriter, r *http.Request) {
	subject, err := subjectID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err)
		return
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/users/"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidInput)
		return
	}

	switch r.Method {
	case http.MethodGet:
		user, err := s.users.Get(r.Context(), subject, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)

	case http.MethodPut:
		var body struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		user, err := s.users.Update(r.Context(), subject, id, body.FirstName, body.LastName)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)

	case http.MethodDelete:
		if err := s.users.Delete(r.Context(), subject, id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
