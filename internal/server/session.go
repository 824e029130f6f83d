package server

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	// sessionHeader carries the page session rendered into the page. Each tab
	// sends its own, so tabs do not share panel state.
	sessionHeader = "X-Session-ID"

	// sessionCookie carries the session of the most recent page load. It is
	// only read when the header is absent, i.e. without the page script.
	sessionCookie = "sb_session"
)

// newSession mints a page session and sets its cookie on the response
func newSession(w http.ResponseWriter) string {
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// sessionID returns the page session of the request: the session header
// first, then the cookie. One is minted when neither holds a valid id.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if id := r.Header.Get(sessionHeader); validSessionID(id) {
		return id
	}
	if c, err := r.Cookie(sessionCookie); err == nil && validSessionID(c.Value) {
		return c.Value
	}
	return newSession(w)
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return id != "" && err == nil
}
