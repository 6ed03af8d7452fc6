package auth

import (
	"errors"
	"net/http"

	"github.com/devbhoomi/tourism-api/internal/middleware"
	"github.com/devbhoomi/tourism-api/internal/pkg/errorhandler"
	"github.com/devbhoomi/tourism-api/internal/pkg/request"
	"github.com/devbhoomi/tourism-api/internal/pkg/response"
)

// Handler handles auth HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates auth handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if _, err := request.Bind(r, &req); err != nil {
		request.WriteBindError(w, err)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid email or password")
			return
		}
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	response.OK(w, result)
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	if principal == nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	admin, err := h.service.Me(r.Context(), principal.AdminID)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			response.Unauthorized(w, "Account no longer exists")
			return
		}
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	response.OK(w, AdminResponseFromEntity(admin))
}
