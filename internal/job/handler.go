package job

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal/transport"
)

type ServiceAPI interface {
	Create(organizationID, payrollID uuid.UUID, params CreateParams) (*Job, error)
	Get(organizationID, payrollID, jobID uuid.UUID) (*Job, error)
	List(organizationID, payrollID uuid.UUID) ([]*Job, error)
	Update(organizationID, payrollID, jobID uuid.UUID, params UpdateParams) (*Job, error)
	Delete(organizationID, payrollID, jobID uuid.UUID) (bool, error)
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

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, ok := h.scope(w, r)
	if !ok {
		return
	}

	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	j, err := h.Service.Create(organizationID, payrollID, req.ToParams())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToResponse(j))
}

func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, ok := h.scope(w, r)
	if !ok {
		return
	}

	jobs, err := h.Service.List(organizationID, payrollID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponses(jobs))
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, ok := h.scope(w, r)
	if !ok {
		return
	}
	jobID, ok := h.PathUUID(w, r, "jobID")
	if !ok {
		return
	}

	j, err := h.Service.Get(organizationID, payrollID, jobID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if j == nil {
		h.WriteError(w, http.StatusNotFound, "job not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponse(j))
}

func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, ok := h.scope(w, r)
	if !ok {
		return
	}
	jobID, ok := h.PathUUID(w, r, "jobID")
	if !ok {
		return
	}

	var req UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	j, err := h.Service.Update(organizationID, payrollID, jobID, req.ToParams())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if j == nil {
		h.WriteError(w, http.StatusNotFound, "job not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponse(j))
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	organizationID, payrollID, ok := h.scope(w, r)
	if !ok {
		return
	}
	jobID, ok := h.PathUUID(w, r, "jobID")
	if !ok {
		return
	}

	removed, err := h.Service.Delete(organizationID, payrollID, jobID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if !removed {
		h.WriteError(w, http.StatusNotFound, "job not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
