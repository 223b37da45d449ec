package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
	"github.com/wagnerjunior3121/pc-backend/internal/usecases/authenticating"
	"github.com/wagnerjunior3121/pc-backend/pkg/apiErrors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.CreateUser(&domain.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: req.Password,
		})
		if err != nil {
			handleAuthError(w, err)
			return
		}

		user.PasswordHash = ""

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}
}

// handleAuthError traduz erros do serviço de autenticação para a resposta
// padronizada da API.
func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details any
		if authErr.UserID != 0 {
			details = map[string]any{"user_id": authErr.UserID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao autenticar", nil)
}
