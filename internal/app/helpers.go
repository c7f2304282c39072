package app

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/calendar"
)

// parseYear reads an optional year query parameter
func parseYear(q url.Values, fallback int) (int, bool) {
	s := q.Get("year")
	if s == "" {
		return fallback, true
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < MinYear || year > MaxYear {
		return 0, false
	}
	return year, true
}

// parseMonth reads an optional 0-based month query parameter
func parseMonth(q url.Values, fallback int) (int, bool) {
	s := q.Get("month")
	if s == "" {
		return fallback, true
	}
	month, err := strconv.Atoi(s)
	if err != nil || calendar.ValidateMonth(month) != nil {
		return 0, false
	}
	return month, true
}

// stateURL is the page address of a navigation state
func stateURL(s calendar.State) string {
	q := url.Values{}
	q.Set("view", string(s.View))
	q.Set("year", strconv.Itoa(s.Year))
	if s.View == calendar.ViewMonth {
		q.Set("month", strconv.Itoa(s.Month))
	}
	return "/?" + q.Encode()
}

// safeReturnURL only allows local paths as redirect targets
func safeReturnURL(s string) string {
	if !strings.HasPrefix(s, "/") || strings.HasPrefix(s, "//") || strings.Contains(s, "\\") {
		return "/"
	}
	return s
}

// ETag derives a strong validator from a response body
func ETag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// writeCached writes a deterministic body with an ETag, answering
// If-None-Match with 304
func writeCached(w http.ResponseWriter, r *http.Request, contentType string, body []byte) error {
	tag := ETag(body)
	w.Header().Set("ETag", tag)
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if match := r.Header.Get("If-None-Match"); match != "" {
		for _, candidate := range strings.Split(match, ",") {
			if c := strings.TrimSpace(candidate); c == tag || c == "*" {
				w.WriteHeader(http.StatusNotModified)
				return nil
			}
		}
	}

	w.Header().Set("Content-Type", contentType)
	_, err := w.Write(body)
	return err
}

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// newSessionID returns a random 128-bit hex identifier
func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
