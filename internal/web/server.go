package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/MikeSquared-Agency/Rollerskates/internal/hermes"
	"github.com/MikeSquared-Agency/Rollerskates/internal/ranking"
	"github.com/MikeSquared-Agency/Rollerskates/internal/store"
	"github.com/MikeSquared-Agency/Rollerskates/internal/survey"
	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

//go:embed templates/*.html content/*.md
var assets embed.FS

var pages = []string{
	"home.html",
	"list.html",
	"create.html",
	"import.html",
	"profile.html",
	"ranking.html",
	"error.html",
}

type Options struct {
	DocsURL       string
	ActivityLimit int
	CookieSecure  bool
}

// Server renders the survey pages on top of the TOPSIS API client.
type Server struct {
	client       topsis.Client
	store        store.Store
	notifier     *hermes.Notifier
	logger       *slog.Logger
	templates    map[string]*template.Template
	intro        template.HTML
	docsURL      string
	activityLim  int
	cookieSecure bool
	now          func() time.Time
}

func NewServer(c topsis.Client, s store.Store, n *hermes.Notifier, opts Options, logger *slog.Logger) (*Server, error) {
	tmpls, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	intro, err := renderIntro()
	if err != nil {
		return nil, err
	}
	if opts.ActivityLimit <= 0 {
		opts.ActivityLimit = 20
	}
	return &Server{
		client:       c,
		store:        s,
		notifier:     n,
		logger:       logger,
		templates:    tmpls,
		intro:        intro,
		docsURL:      opts.DocsURL,
		activityLim:  opts.ActivityLimit,
		cookieSecure: opts.CookieSecure,
		now:          time.Now,
	}, nil
}

var funcs = template.FuncMap{
	"percent":      ranking.Percent,
	"decimal":      ranking.Decimal,
	"placeColor":   ranking.PlaceColor,
	"color":        ranking.Color,
	"initial":      survey.Initial,
	"scoreOptions": survey.ScoreOptions,
	"weightField":  survey.WeightField,
	"scoreField":   survey.ScoreField,
	"add":          func(a, b int) int { return a + b },
	"since": func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	},
}

func parseTemplates() (map[string]*template.Template, error) {
	out := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		t, err := template.New(p).Funcs(funcs).ParseFS(assets,
			"templates/layout.html",
			"templates/fragments.html",
			"templates/"+p,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", p, err)
		}
		out[p] = t
	}
	return out, nil
}

func renderIntro() (template.HTML, error) {
	md, err := assets.ReadFile("content/home.md")
	if err != nil {
		return "", fmt.Errorf("read intro: %w", err)
	}
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return template.HTML(markdown.ToHTML(md, p, r)), nil
}

// view is the data every page template receives.
type view struct {
	Title   string
	Active  string
	DocsURL string
	Flashes []Flash
	Data    interface{}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page, title, active string, data interface{}, flashes ...Flash) {
	t, ok := s.templates[page]
	if !ok {
		s.logger.Error("unknown template", "template", page)
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	v := view{
		Title:   title,
		Active:  active,
		DocsURL: s.docsURL,
		Flashes: s.popFlashes(w, r, flashes...),
		Data:    data,
	}

	// render to a buffer so template errors don't leave half a page behind
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		s.logger.Error("template error", "template", page, "error", err)
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderFragment(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates["list.html"].ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("fragment error", "fragment", name, "error", err)
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// renderError shows the generic server error page with a notification.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error, title, fallback string) {
	status := http.StatusBadGateway
	if topsis.IsNotFound(err) {
		status = http.StatusNotFound
	}
	s.render(w, r, status, "error.html", title, "", nil, keyedError(topsis.ErrorMessage(err, fallback)))
}
