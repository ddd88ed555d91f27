package handler

import (
	"net/http"

	"accounts_backend/internal/identity/repository"
	"accounts_backend/internal/identity/service"
	"accounts_backend/internal/identity/transport"
	"accounts_backend/platform/httpkit"
	"accounts_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/organisations", h.ListOrganisations)
	rg.GET("/organisations/:orgId", h.GetOrganisation)
	rg.POST("/organisations", h.CreateOrganisation)
	rg.POST("/organisations/:orgId/users", h.AddMember)
	rg.GET("/organisations/:orgId/users", h.ListMembers)
}

func (h *Handler) ListOrganisations(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	orgs, err := h.svc.ListOrganizations(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}

	payload := make([]transport.OrganisationPayload, 0, len(orgs))
	for _, org := range orgs {
		payload = append(payload, organisationPayload(org))
	}

	httpkit.OK(c, "Organisations retrieved successfully", transport.OrganisationListData{
		Organisations: payload,
	})
}

func (h *Handler) GetOrganisation(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	org, err := h.svc.GetOrganization(c.Request.Context(), identity.UserID(), orgID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, "Organisation retrieved successfully", organisationPayload(org))
}

func (h *Handler) CreateOrganisation(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.CreateOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	org, err := h.svc.CreateOrganization(c.Request.Context(), identity.UserID(), req.Name, req.Description)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Success(c, http.StatusCreated, "Organisation created successfully", organisationPayload(org))
}

func (h *Handler) AddMember(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	var req transport.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	newUserID, err := uuid.Parse(req.UserID)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	if err := h.svc.AddMember(c.Request.Context(), identity.UserID(), orgID, newUserID); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, "User added to organisation successfully", nil)
}

func (h *Handler) ListMembers(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	members, err := h.svc.ListMembers(c.Request.Context(), identity.UserID(), orgID)
	if httpkit.HandleError(c, err) {
		return
	}

	payload := make([]transport.MemberPayload, 0, len(members))
	for _, member := range members {
		payload = append(payload, transport.MemberPayload{
			UserID:    member.UserID.String(),
			FirstName: member.FirstName,
			LastName:  member.LastName,
			Email:     member.Email,
		})
	}

	httpkit.OK(c, "Organisation members retrieved successfully", transport.MemberListData{
		Members: payload,
	})
}

func organisationPayload(org repository.Organization) transport.OrganisationPayload {
	return transport.OrganisationPayload{
		OrgID:       org.ID.String(),
		Name:        org.Name,
		Description: org.Description,
	}
}
