package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookie = "rollerskates_flash"

type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashError   FlashLevel = "error"
	FlashWarning FlashLevel = "warning"
)

// Flash is a transient notification shown on the next rendered page.
// Flashes sharing a non-empty Key are shown once.
type Flash struct {
	Level   FlashLevel `json:"level"`
	Message string     `json:"message"`
	Key     string     `json:"key,omitempty"`
}

func successFlash(msg string) Flash { return Flash{Level: FlashSuccess, Message: msg} }
func errorFlash(msg string) Flash   { return Flash{Level: FlashError, Message: msg} }
func warnFlash(msg string) Flash    { return Flash{Level: FlashWarning, Message: msg} }

// keyedError is an error notification that is not repeated while one with
// the same key is pending.
func keyedError(msg string) Flash {
	return Flash{Level: FlashError, Message: msg, Key: "toast"}
}

func dedupFlashes(in []Flash) []Flash {
	seen := make(map[string]bool)
	out := make([]Flash, 0, len(in))
	for _, f := range in {
		if f.Key != "" {
			if seen[f.Key] {
				continue
			}
			seen[f.Key] = true
		}
		out = append(out, f)
	}
	return out
}

func readFlashes(r *http.Request) []Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}

func (s *Server) setFlashes(w http.ResponseWriter, flashes []Flash) {
	raw, err := json.Marshal(dedupFlashes(flashes))
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearFlashes(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlashes returns the pending flashes followed by extra, and clears the
// cookie if anything was pending.
func (s *Server) popFlashes(w http.ResponseWriter, r *http.Request, extra ...Flash) []Flash {
	pending := readFlashes(r)
	if len(pending) > 0 {
		s.clearFlashes(w)
	}
	return dedupFlashes(append(pending, extra...))
}

// redirect sends the browser to url and carries flashes to the next page.
func (s *Server) redirect(w http.ResponseWriter, r *http.Request, url string, flashes ...Flash) {
	if len(flashes) > 0 {
		s.setFlashes(w, append(readFlashes(r), flashes...))
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}
