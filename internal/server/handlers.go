package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/Belphemur/ShowBrowser/v2/internal/apperrors"
	"github.com/Belphemur/ShowBrowser/v2/internal/models"
	"github.com/Belphemur/ShowBrowser/v2/internal/panel"
	"github.com/Belphemur/ShowBrowser/v2/internal/view"
)

// toggleResponse is the JSON body of a panel toggle
type toggleResponse struct {
	Panel  models.PanelKind `json:"panel"`
	Open   bool             `json:"open"`
	ShowID int              `json:"showId"`
	HTML   string           `json:"html"`

	// Stale marks the answer to an open that was superseded while its content
	// was loading. The page leaves the panel as it is.
	Stale bool `json:"stale"`
}

// handlePage renders the full page. Every page load starts a new session,
// so both panels start closed.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sid := newSession(w)
	data := view.PageData{SessionID: sid, Query: r.URL.Query().Get("q")}

	if strings.TrimSpace(data.Query) != "" {
		s.panels.CloseAll(r.Context(), sid)
		data.Shows = view.NewShowCards(s.catalog.SearchShows(r.Context(), data.Query))
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, data); err != nil {
		renderFailed(w, r, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

// handleShows returns the show-list fragment for a search. A new search
// closes both panels first.
func (s *Server) handleShows(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)
	s.panels.CloseAll(r.Context(), sid)

	shows := s.catalog.SearchShows(r.Context(), r.URL.Query().Get("q"))

	var buf bytes.Buffer
	if err := s.renderer.RenderShowList(&buf, shows); err != nil {
		renderFailed(w, r, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	kind, err := models.ParsePanelKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	showID, err := strconv.Atoi(r.FormValue("show_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("show_id must be an integer"))
		return
	}

	sid := sessionID(w, r)
	result := s.panels.Toggle(r.Context(), sid, kind, showID)

	resp := toggleResponse{Panel: kind, Open: result.Open, ShowID: result.ShowID, Stale: result.Stale}
	if result.Open {
		html, err := s.renderPanel(result)
		if err != nil {
			renderFailed(w, r, err)
			return
		}
		resp.HTML = html
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) renderPanel(result panel.Result) (string, error) {
	var buf bytes.Buffer
	var err error
	switch result.Kind {
	case models.PanelEpisodes:
		err = s.renderer.RenderEpisodes(&buf, result.Episodes)
	case models.PanelGenres:
		err = s.renderer.RenderGenres(&buf, result.Genres)
	default:
		err = &apperrors.ErrInvalidPanel{Name: result.Kind.String()}
	}
	return buf.String(), err
}

func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.SearchShows(r.Context(), r.URL.Query().Get("q")))
}

func (s *Server) handleAPIEpisodes(w http.ResponseWriter, r *http.Request) {
	id, ok := showIDParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.GetEpisodes(r.Context(), id))
}

func (s *Server) handleAPIGenres(w http.ResponseWriter, r *http.Request) {
	id, ok := showIDParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.GetGenres(r.Context(), id))
}

func showIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("show id must be an integer"))
		return 0, false
	}
	return id, true
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	hlog.FromRequest(r).Error().Err(err).Msg("Failed to render template")
	writeError(w, http.StatusInternalServerError, errors.New("render failed"))
}
