package web

import (
	"context"
	"net/http"

	"github.com/MikeSquared-Agency/Rollerskates/internal/store"
	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

type homeData struct {
	Intro    interface{}
	Activity []*store.Activity
}

// Home handles GET /
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	activity, err := s.store.Recent(r.Context(), s.activityLim)
	if err != nil {
		s.logger.Warn("failed to load recent activity", "error", err)
	}
	s.render(w, r, http.StatusOK, "home.html", "TOPSIS surveys", "home", homeData{
		Intro:    s.intro,
		Activity: activity,
	})
}

// NotFound sends unknown paths back to the home page.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	s.redirect(w, r, "/", errorFlash("Page not found, redirecting to the home page"))
}

func (s *Server) record(ctx context.Context, kind store.ActivityKind, m *topsis.Model) {
	err := s.store.Record(ctx, &store.Activity{
		Kind:      kind,
		ModelID:   m.ModelID,
		ModelName: m.Name,
	})
	if err != nil {
		s.logger.Warn("failed to record activity", "kind", kind, "model_id", m.ModelID, "error", err)
	}
}
