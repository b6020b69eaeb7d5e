package web

import (
	"errors"
	"net/http"

	"github.com/MikeSquared-Agency/Rollerskates/internal/store"
	"github.com/MikeSquared-Agency/Rollerskates/internal/survey"
)

const (
	maxUploadBytes = 10 << 20

	msgImportFailed = "Survey import failed"
	msgNoFile       = "Upload a file first!"
	msgNotJSON      = "Invalid file type! JSON is required"
)

// ImportForm handles GET /surveys/import
func (s *Server) ImportForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "import.html", "Import survey", "import", nil)
}

// Import handles POST /surveys/import. The file type is checked before
// anything is sent to the API.
func (s *Server) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		s.logger.Warn("parse upload", "error", err)
		s.render(w, r, http.StatusBadRequest, "import.html", "Import survey", "import", nil, errorFlash(msgImportFailed))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.render(w, r, http.StatusUnprocessableEntity, "import.html", "Import survey", "import", nil, warnFlash(msgNoFile))
		return
	}
	defer file.Close()

	if err := survey.CheckImport(header.Filename, header.Header.Get("Content-Type")); err != nil {
		msg := msgNotJSON
		if errors.Is(err, survey.ErrNoFile) {
			msg = msgNoFile
		}
		s.render(w, r, http.StatusUnprocessableEntity, "import.html", "Import survey", "import", nil, warnFlash(msg))
		return
	}

	m, err := s.client.ImportModel(r.Context(), header.Filename, file)
	if err != nil {
		s.logger.Error("import survey", "filename", header.Filename, "error", err)
		s.render(w, r, http.StatusOK, "import.html", "Import survey", "import", nil, errorFlash(msgImportFailed))
		return
	}

	s.record(r.Context(), store.ActivityImported, m)
	s.notifier.SurveyImported(m)
	s.redirect(w, r, modelURL(m), successFlash(`Survey "`+m.Name+`" was imported`))
}
