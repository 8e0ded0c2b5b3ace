package division

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal/transport"
)

type ServiceAPI interface {
	Create(organizationID, payrollID uuid.UUID, params CreateParams) (*Division, error)
	Get(organizationID, payrollID, divisionID uuid.UUID) (*Division, error)
	List(organizationID, payrollID uuid.UUID) ([]*Division, error)
	Update(organizationID, payrollID, divisionID uuid.UUID, params UpdateParams) (*Division, error)
	Delete(organizationID, payrollID, divisionID uuid.UUID) (bool, error)
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

func (h *Handler) scope(w http.ResponseWriter, r *http.Request) (organizationID, payrollID uuid.UUID, ok bool) {
	organizationID, ok = h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}
	payrollID, ok = h.PathUUID(w, r, "payrollID")
	return
}

func (h *Handler) CreateDivision(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, ok := h.scope(w, r)
	if !ok {
		return
	}

	var req CreateDivisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.Service.Create(organizationID, payrollID, req.ToParams())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToResponse(d))
}

func (h *Handler) ListDivisions(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, ok := h.scope(w, r)
	if !ok {
		return
	}

	divisions, err := h.Service.List(organizationID, payrollID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponses(divisions))
}

func (h *Handler) GetDivision(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, ok := h.scope(w, r)
	if !ok {
		return
	}
	divisionID, ok := h.PathUUID(w, r, "divisionID")
	if !ok {
		return
	}

	d, err := h.Service.Get(organizationID, payrollID, divisionID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if d == nil {
		h.WriteError(w, http.StatusNotFound, "division not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponse(d))
}

func (h *Handler) UpdateDivision(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, ok := h.scope(w, r)
	if !ok {
		return
	}
	divisionID, ok := h.PathUUID(w, r, "divisionID")
	if !ok {
		return
	}

	var req UpdateDivisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.Service.Update(organizationID, payrollID, divisionID, req.ToParams())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if d == nil {
		h.WriteError(w, http.StatusNotFound, "division not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponse(d))
}

func (h *Handler) DeleteDivision(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, ok := h.scope(w, r)
	if !ok {
		return
	}
	divisionID, ok := h.PathUUID(w, r, "divisionID")
	if !ok {
		return
	}

	removed, err := h.Service.Delete(organizationID, payrollID, divisionID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if !removed {
		h.WriteError(w, http.StatusNotFound, "division not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
