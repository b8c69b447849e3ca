package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/invoice-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/invoice-dashboard-api/pkg/log"
	"github.com/vfg2006/invoice-dashboard-api/pkg/middleware"
)

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

type LoginFailure struct {
	Message string `json:"message"`
}

// Login aceita as credenciais em JSON ou formulário e grava o cookie de sessão
func Login(service authenticating.Authenticator, secureCookies bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials domain.Credentials

		if isJSON(r) {
			if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário inválido", nil)
				return
			}
			credentials.Email = r.PostForm.Get("email")
			credentials.Password = r.PostForm.Get("password")
		}

		message, session, err := service.Authenticate(r.Context(), r.PostForm.Get("prevState"), credentials)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no login")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
			return
		}

		if message != "" {
			respondJSON(w, http.StatusUnauthorized, LoginFailure{Message: message})
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    session.Token,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HttpOnly: true,
			Secure:   secureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		respondJSON(w, http.StatusOK, LoginResponse{
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt,
			User:      session.User,
		})
	}
}

// Logout apaga o cookie de sessão
func Logout(secureCookies bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}
