package organization

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal/transport"
)

type ServiceAPI interface {
	Create(params CreateParams) (*Organization, error)
	Get(id uuid.UUID) (*Organization, error)
	List() ([]*Organization, error)
	Update(id uuid.UUID, params UpdateParams) (*Organization, error)
	Delete(id uuid.UUID) (bool, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	org, err := h.Service.Create(req.ToParams())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToResponse(org))
}

func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	organizations, err := h.Service.List()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponses(organizations))
}

func (h *Handler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}

	org, err := h.Service.Get(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if org == nil {
		h.WriteError(w, http.StatusNotFound, "organization not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponse(org))
}

func (h *Handler) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}

	var req UpdateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	org, err := h.Service.Update(id, req.ToParams())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if org == nil {
		h.WriteError(w, http.StatusNotFound, "organization not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponse(org))
}

func (h *Handler) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}

	removed, err := h.Service.Delete(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if !removed {
		h.WriteError(w, http.StatusNotFound, "organization not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
