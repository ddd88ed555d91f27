package handler

import (
	"net/http"

	"accounts_backend/internal/auth/repository"
	"accounts_backend/internal/auth/service"
	"accounts_backend/internal/auth/transport"
	"accounts_backend/platform/httpkit"
	"accounts_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest     = "invalid request"
	msgRegistrationFailed = "Registration unsuccessful"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
}

func (h *Handler) Register(c *gin.Context) {
	var req transport.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgRegistrationFailed, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgRegistrationFailed, fieldErrors(err))
		return
	}

	result, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Success(c, http.StatusCreated, "Registration successful", transport.AuthData{
		AccessToken: result.AccessToken,
		User:        userPayload(result.User),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, fieldErrors(err))
		return
	}

	user, accessToken, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, "Login successful", transport.AuthData{
		AccessToken: accessToken,
		User:        userPayload(user),
	})
}

// GetUser serves GET /users/:id for the authenticated caller.
func (h *Handler) GetUser(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	user, err := h.svc.GetUser(c.Request.Context(), identity.UserID(), targetID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, "User details retrieved successfully", userPayload(user))
}

func userPayload(user repository.User) transport.UserPayload {
	return transport.UserPayload{
		UserID:    user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
	}
}
