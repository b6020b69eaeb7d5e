package web

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Rollerskates/internal/store"
	"github.com/MikeSquared-Agency/Rollerskates/internal/survey"
	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

const (
	msgListFailed   = "An error occurred while loading the survey list"
	msgDeleteFailed = "An error occurred while deleting the survey"
)

// List handles GET /surveys
func (s *Server) List(w http.ResponseWriter, r *http.Request) {
	models, err := s.client.ListModels(r.Context())
	if err != nil {
		s.logger.Error("list surveys", "error", err)
		s.renderError(w, r, err, "Survey list", msgListFailed)
		return
	}
	s.render(w, r, http.StatusOK, "list.html", "Survey list", "list", survey.NewModelList(models))
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// Delete handles POST /surveys/{id}/delete and DELETE /surveys/{id}.
//
// htmx requests get a fragment that replaces the deleted row, so the list
// on screen drops the survey without being fetched again. Plain form posts
// redirect back to the list.
func (s *Server) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	m, err := s.client.DeleteModel(r.Context(), id)
	if err != nil {
		s.logger.Error("delete survey", "model_id", id, "error", err)
		if isHTMX(r) {
			w.Header().Set("HX-Reswap", "none")
			s.renderFragment(w, "delete_result", errorFlash(msgDeleteFailed))
			return
		}
		s.redirect(w, r, "/surveys", errorFlash(msgDeleteFailed))
		return
	}

	s.record(r.Context(), store.ActivityDeleted, m)
	s.notifier.SurveyDeleted(m)

	done := successFlash(`Survey "` + m.Name + `" was deleted`)
	if isHTMX(r) {
		s.renderFragment(w, "delete_result", done)
		return
	}
	s.redirect(w, r, "/surveys", done)
}

func modelURL(m *topsis.Model) string {
	return "/surveys/" + url.PathEscape(m.ModelID)
}
