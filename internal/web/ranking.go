package web

import (
	"bytes"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/MikeSquared-Agency/Rollerskates/internal/ranking"
	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

const msgRankingFailed = "An error occurred while fetching ranking results."

type rankingData struct {
	Model        *topsis.Model
	Alternatives []ranking.Row
	Criteria     []ranking.Row
	Matrix       ranking.Matrix
	Summary      ranking.Summary
}

// fetchRanking loads the model and its ranking concurrently and returns
// once both have resolved.
func (s *Server) fetchRanking(ctx context.Context, id string) (*topsis.Model, *topsis.Ranking, error) {
	var (
		m   *topsis.Model
		rnk *topsis.Ranking
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		m, err = s.client.GetModel(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		rnk, err = s.client.GetRanking(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return m, rnk, nil
}

// Ranking handles GET /surveys/{id}/ranking
func (s *Server) Ranking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, rnk, err := s.fetchRanking(r.Context(), id)
	if err != nil {
		s.logger.Error("fetch ranking", "model_id", id, "error", err)
		s.renderError(w, r, err, "Ranking", msgRankingFailed)
		return
	}

	alts := ranking.Alternatives(m, rnk)
	summary, err := ranking.Summarize(alts)
	if err != nil {
		s.logger.Warn("summarize ranking", "model_id", id, "error", err)
	}
	s.render(w, r, http.StatusOK, "ranking.html", m.Name+" ranking", "list", rankingData{
		Model:        m,
		Alternatives: alts,
		Criteria:     ranking.Criteria(m, rnk),
		Matrix:       ranking.BuildMatrix(m, rnk),
		Summary:      summary,
	})
}

// RankingXLSX handles GET /surveys/{id}/ranking.xlsx
func (s *Server) RankingXLSX(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, rnk, err := s.fetchRanking(r.Context(), id)
	if err != nil {
		s.logger.Error("fetch ranking", "model_id", id, "error", err)
		s.redirect(w, r, modelURL(&topsis.Model{ModelID: id}), keyedError(topsis.ErrorMessage(err, msgRankingFailed)))
		return
	}

	var buf bytes.Buffer
	if err := ranking.WriteXLSX(&buf, m, rnk); err != nil {
		s.logger.Error("write workbook", "model_id", id, "error", err)
		s.redirect(w, r, modelURL(m)+"/ranking", errorFlash("An error occurred while building the workbook."))
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="ranking_`+s.now().Format("2006-01-02")+`.xlsx"`)
	_, _ = buf.WriteTo(w)
}
