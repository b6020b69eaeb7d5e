package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/MikeSquared-Agency/Rollerskates/internal/store"
	"github.com/MikeSquared-Agency/Rollerskates/internal/survey"
)

const msgCreateFailed = "Survey creation failed"

// CreateForm handles GET /surveys/create
func (s *Server) CreateForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "create.html", "Create survey", "create", survey.NewCreateForm())
}

// Create handles POST /surveys/create. The action field either edits the
// dynamic field lists or, when empty, submits the survey.
func (s *Server) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "create.html", "Create survey", "create", survey.NewCreateForm(), errorFlash(msgCreateFailed))
		return
	}
	form := survey.ParseCreateForm(r.PostForm)

	if action := r.PostForm.Get("action"); action != "" {
		applyAction(form, action)
		s.render(w, r, http.StatusOK, "create.html", "Create survey", "create", form)
		return
	}

	req, err := form.Request()
	if err != nil {
		msg := msgCreateFailed
		if errors.Is(err, survey.ErrEmptyName) {
			msg = "Enter a survey name"
		}
		s.render(w, r, http.StatusUnprocessableEntity, "create.html", "Create survey", "create", form, errorFlash(msg))
		return
	}

	m, err := s.client.CreateModel(r.Context(), req)
	if err != nil {
		s.logger.Error("create survey", "name", req.Name, "error", err)
		s.render(w, r, http.StatusOK, "create.html", "Create survey", "create", form, errorFlash(msgCreateFailed))
		return
	}

	s.record(r.Context(), store.ActivityCreated, m)
	s.notifier.SurveyCreated(m)
	s.redirect(w, r, modelURL(m))
}

// applyAction handles add-criterion, add-alternative, remove-criterion:N and
// remove-alternative:N. Unknown actions leave the form unchanged.
func applyAction(form *survey.CreateForm, action string) {
	verb, arg, _ := strings.Cut(action, ":")
	switch verb {
	case "add-criterion":
		form.Add(survey.KindCriterion)
	case "add-alternative":
		form.Add(survey.KindAlternative)
	case "remove-criterion", "remove-alternative":
		i, err := strconv.Atoi(arg)
		if err != nil {
			return
		}
		kind := survey.KindCriterion
		if verb == "remove-alternative" {
			kind = survey.KindAlternative
		}
		form.Remove(kind, i)
	}
}
