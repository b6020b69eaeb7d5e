package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Rollerskates/internal/store"
	"github.com/MikeSquared-Agency/Rollerskates/internal/survey"
	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

const (
	msgProfileFailed = "An error occurred while fetching survey data."
	msgSaveFailed    = "An error occurred while saving data."
	msgExportFailed  = "An error occurred while exporting the survey."
	msgSaved         = "Answers saved successfully."
)

type profileData struct {
	Model *topsis.Model
	Form  *survey.ExpertForm
}

// Profile handles GET /surveys/{id}
func (s *Server) Profile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := s.client.GetModel(r.Context(), id)
	if err != nil {
		s.logger.Error("get survey", "model_id", id, "error", err)
		s.renderError(w, r, err, "Survey", msgProfileFailed)
		return
	}
	s.render(w, r, http.StatusOK, "profile.html", m.Name, "list", profileData{
		Model: m,
		Form:  survey.NewExpertForm(m),
	})
}

// SubmitExpert handles POST /surveys/{id}/experts. On failure the form is
// shown again with the entered values.
func (s *Server) SubmitExpert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := s.client.GetModel(r.Context(), id)
	if err != nil {
		s.logger.Error("get survey", "model_id", id, "error", err)
		s.renderError(w, r, err, "Survey", msgProfileFailed)
		return
	}

	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "profile.html", m.Name, "list",
			profileData{Model: m, Form: survey.NewExpertForm(m)}, errorFlash(msgSaveFailed))
		return
	}
	form, err := survey.ParseExpertForm(m, r.PostForm)
	if err != nil {
		s.render(w, r, http.StatusUnprocessableEntity, "profile.html", m.Name, "list",
			profileData{Model: m, Form: form}, errorFlash(err.Error()))
		return
	}

	input := form.Payload()
	updated, err := s.client.SubmitExpertInput(r.Context(), id, input)
	if err != nil {
		s.logger.Error("submit expert input", "model_id", id, "error", err)
		s.render(w, r, http.StatusOK, "profile.html", m.Name, "list",
			profileData{Model: m, Form: form}, keyedError(topsis.ErrorMessage(err, msgSaveFailed)))
		return
	}

	s.record(r.Context(), store.ActivityExpertSubmitted, updated)
	s.notifier.ExpertSubmitted(updated, input.ExpertID)
	s.redirect(w, r, modelURL(updated), successFlash(msgSaved))
}

// Export handles GET /surveys/{id}/export
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := s.client.ExportModel(r.Context(), id)
	if err == nil {
		var body []byte
		body, err = survey.MarshalExport(m)
		if err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Content-Disposition", `attachment; filename="`+survey.ExportFilename(s.now())+`"`)
			_, _ = w.Write(body)
			return
		}
	}

	s.logger.Error("export survey", "model_id", id, "error", err)
	s.redirect(w, r, modelURL(&topsis.Model{ModelID: id}), keyedError(topsis.ErrorMessage(err, msgExportFailed)))
}
