package employee

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal/transport"
)

type ServiceAPI interface {
	Create(organizationID, payrollID, divisionID uuid.UUID, params CreateParams) (*Employee, error)
	Get(organizationID, payrollID, divisionID, employeeID uuid.UUID) (*Employee, error)
	List(organizationID, payrollID, divisionID uuid.UUID) ([]*Employee, error)
	Update(organizationID, payrollID, divisionID, employeeID uuid.UUID, params UpdateParams) (*Employee, error)
	Delete(organizationID, payrollID, divisionID, employeeID uuid.UUID) (bool, error)
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

func (h *Handler) scope(w http.ResponseWriter, r *http.Request) (organizationID, payrollID, divisionID uuid.UUID, ok bool) {
	organizationID, ok = h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}
	payrollID, ok = h.PathUUID(w, r, "payrollID")
	if !ok {
		return
	}
	divisionID, ok = h.PathUUID(w, r, "divisionID")
	return
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, divisionID, ok := h.scope(w, r)
	if !ok {
		return
	}

	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.Create(organizationID, payrollID, divisionID, req.ToParams())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToResponse(e))
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, divisionID, ok := h.scope(w, r)
	if !ok {
		return
	}

	employees, err := h.Service.List(organizationID, payrollID, divisionID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponses(employees))
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, divisionID, ok := h.scope(w, r)
	if !ok {
		return
	}
	employeeID, ok := h.PathUUID(w, r, "employeeID")
	if !ok {
		return
	}

	e, err := h.Service.Get(organizationID, payrollID, divisionID, employeeID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if e == nil {
		h.WriteError(w, http.StatusNotFound, "employee not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponse(e))
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, divisionID, ok := h.scope(w, r)
	if !ok {
		return
	}
	employeeID, ok := h.PathUUID(w, r, "employeeID")
	if !ok {
		return
	}

	var req UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.Update(organizationID, payrollID, divisionID, employeeID, req.ToParams())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if e == nil {
		h.WriteError(w, http.StatusNotFound, "employee not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponse(e))
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, divisionID, ok := h.scope(w, r)
	if !ok {
		return
	}
	employeeID, ok := h.PathUUID(w, r, "employeeID")
	if !ok {
		return
	}

	removed, err := h.Service.Delete(organizationID, payrollID, divisionID, employeeID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if !removed {
		h.WriteError(w, http.StatusNotFound, "employee not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
