package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	usersvc "userservice/internal/application/user"
	"userservice/internal/domain"
	"userservice/internal/metrics"
	"userservice/internal/transport/http/dto"
	"userservice/internal/transport/http/middleware"
	"userservice/internal/transport/http/response"
)

const (
	defaultListLimit = 20
)

type UserHandler struct {
	svc *usersvc.Service
}

func NewUserHandler(svc *usersvc.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register handles POST /auth/register and POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := dto.Validate(&req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	metrics.RecordRegistration()
	response.Created(w, dto.NewUserResponse(created))
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := dto.Validate(&req); err != nil {
		// Shape of the email or password must not leak here either.
		metrics.RecordLoginFailed()
		response.WriteError(w, r, domain.ErrInvalidCredentials())
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		metrics.RecordLoginFailed()
		response.WriteError(w, r, err)
		return
	}

	metrics.RecordLogin()
	response.OK(w, dto.NewAuthResponse(res))
}

// ValidateToken handles GET /auth/validate. Reaching it at all means the
// gate accepted the token; the body just echoes the principal.
func (h *UserHandler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrUnauthenticated())
		return
	}
	email, _ := middleware.EmailFromContext(r.Context())

	response.OK(w, dto.TokenValidationResponse{
		Valid:  true,
		UserID: userID,
		Email:  email,
	})
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrUnauthenticated())
		return
	}

	u, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewUserResponse(u))
}

// GetByID handles GET /users/{id}.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requesterID, _ := middleware.UserIDFromContext(r.Context())
	targetID := chi.URLParam(r, "id")

	u, err := h.svc.GetByID(r.Context(), targetID, requesterID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewUserResponse(u))
}

// List handles GET /users with skip/limit query parameters.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	requesterID, _ := middleware.UserIDFromContext(r.Context())

	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", defaultListLimit)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.List(r.Context(), requesterID, skip, limit)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewListUsersResponse(res, skip, limit))
}

// Update handles PUT /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	requesterID, _ := middleware.UserIDFromContext(r.Context())
	targetID := chi.URLParam(r, "id")

	var req dto.UpdateUserRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := dto.Validate(&req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), targetID, requesterID, usersvc.UpdateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewUserResponse(updated))
}

// Delete handles DELETE /users/{id}. Soft delete by default; ?hard=true
// removes the record permanently.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requesterID, _ := middleware.UserIDFromContext(r.Context())
	targetID := chi.URLParam(r, "id")

	if r.URL.Query().Get("hard") == "true" {
		id, err := h.svc.HardDelete(r.Context(), targetID, requesterID)
		if err != nil {
			response.WriteError(w, r, err)
			return
		}
		response.OK(w, dto.DeleteResponse{ID: id, Hard: true})
		return
	}

	u, err := h.svc.Deactivate(r.Context(), targetID, requesterID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.DeleteResponse{ID: u.ID, Hard: false})
}

// Reactivate handles POST /users/{id}/reactivate.
func (h *UserHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	requesterID, _ := middleware.UserIDFromContext(r.Context())
	targetID := chi.URLParam(r, "id")

	u, err := h.svc.Reactivate(r.Context(), targetID, requesterID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewUserResponse(u))
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.ErrInvalidPagination(key + " must be an integer")
	}
	return n, nil
}
