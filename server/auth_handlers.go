package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/umputun/hnscope/pkg/auth"
)

// loginPreset is a helper link prefilling the login form
type loginPreset struct {
	Label    string
	Username string
	Password string
}

type loginPage struct {
	pageView
	Username string
	Password string
	Error    string
	Presets  []loginPreset
}

func (s *Server) newLoginPage(r *http.Request) loginPage {
	data := loginPage{pageView: s.newPageView(r, "Login", "")}
	for _, a := range s.deps.Users.Accounts() {
		label := "Normal user"
		if a.Beta {
			label = "Beta user"
		}
		data.Presets = append(data.Presets, loginPreset{Label: label, Username: a.Username, Password: a.Password})
	}
	return data
}

// loginPageHandler renders the login form, ?preset=name fills it with the account credentials
func (s *Server) loginPageHandler(w http.ResponseWriter, r *http.Request) {
	data := s.newLoginPage(r)
	if preset := r.URL.Query().Get("preset"); preset != "" {
		if a, ok := s.deps.Users.Lookup(preset); ok {
			data.Username, data.Password = a.Username, a.Password
		}
	}
	s.renderPage(w, "login", http.StatusOK, data)
}

// loginHandler checks credentials and starts a session
func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	username := r.FormValue("username")

	user, err := s.deps.Users.Authenticate(username, r.FormValue("password"))
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			log.Printf("[WARN] login failed for %q: %v", username, err)
		}
		data := s.newLoginPage(r)
		data.Username = username
		data.Error = "Invalid username or password"
		s.renderPage(w, "login", http.StatusUnauthorized, data)
		return
	}

	// flag targeting is registered once at startup and is not updated here
	token := s.deps.Sessions.Create(user)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	log.Printf("[INFO] user %s logged in, beta: %v", user.Username, user.Beta)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// logoutHandler drops the session
func (s *Server) logoutHandler(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.deps.Sessions.Delete(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
