package bank

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal/transport"
)

type ServiceAPI interface {
	Create(organizationID uuid.UUID, params CreateParams) (*Bank, error)
	Get(organizationID, bankID uuid.UUID) (*Bank, error)
	List(organizationID uuid.UUID) ([]*Bank, error)
	Update(organizationID, bankID uuid.UUID, params UpdateParams) (*Bank, error)
	Delete(organizationID, bankID uuid.UUID) (bool, error)
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

func (h *Handler) CreateBank(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}

	var req CreateBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.Create(organizationID, req.ToParams())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToResponse(b))
}

func (h *Handler) ListBanks(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}

	banks, err := h.Service.List(organizationID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponses(banks))
}

func (h *Handler) GetBank(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}
	bankID, ok := h.PathUUID(w, r, "bankID")
	if !ok {
		return
	}

	b, err := h.Service.Get(organizationID, bankID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if b == nil {
		h.WriteError(w, http.StatusNotFound, "bank not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponse(b))
}

func (h *Handler) UpdateBank(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}
	bankID, ok := h.PathUUID(w, r, "bankID")
	if !ok {
		return
	}

	var req UpdateBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.Update(organizationID, bankID, req.ToParams())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if b == nil {
		h.WriteError(w, http.StatusNotFound, "bank not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponse(b))
}

func (h *Handler) DeleteBank(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := h.PathUUID(w, r, "organizationID")
	if !ok {
		return
	}
	bankID, ok := h.PathUUID(w, r, "bankID")
	if !ok {
		return
	}

	removed, err := h.Service.Delete(organizationID, bankID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if !removed {
		h.WriteError(w, http.StatusNotFound, "bank not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
