package payroll

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal/transport"
)

type ServiceAPI interface {
	Create(organizationID uuid.UUID, params CreateParams) (*Payroll, error)
	Get(organizationID, payrollID uuid.UUID) (*Payroll, error)
	List(organizationID uuid.UUID) ([]*Payroll, error)
	Update(organizationID, payrollID uuid.UUID, params UpdateParams) (*Payroll, error)
	Delete(organizationID, payrollID uuid.UUID) (bool, error)
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

func (h *Handler) CreatePayroll(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}

	var req CreatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.Create(organizationID, req.ToParams())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToResponse(p))
}

func (h *Handler) ListPayrolls(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}

	payrolls, err := h.Service.List(organizationID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponses(payrolls))
}

func (h *Handler) GetPayroll(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}
	payrollID, ok := h.PathUUID(w, r, "payrollID")
	if !ok {
		return
	}

	p, err := h.Service.Get(organizationID, payrollID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if p == nil {
		h.WriteError(w, http.StatusNotFound, "payroll not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponse(p))
}

func (h *Handler) UpdatePayroll(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}
	payrollID, ok := h.PathUUID(w, r, "payrollID")
	if !ok {
		return
	}

	var req UpdatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.Update(organizationID, payrollID, req.ToParams())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if p == nil {
		h.WriteError(w, http.StatusNotFound, "payroll not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponse(p))
}

func (h *Handler) DeletePayroll(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}
	payrollID, ok := h.PathUUID(w, r, "payrollID")
	if !ok {
		return
	}

	removed, err := h.Service.Delete(organizationID, payrollID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if !removed {
		h.WriteError(w, http.StatusNotFound, "payroll not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
