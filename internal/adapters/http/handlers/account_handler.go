package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

// AccountHandler handles student registration.
type AccountHandler struct {
	svc ports.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc ports.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// Register handles POST /api/v1/accounts/register. Registering again
// updates the profile.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	acc, err := h.svc.Register(r.Context(), req.ToRegistration())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAccountResponse(acc))
}

// GetAccount handles GET /api/v1/accounts/{accountId}.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "accountId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	acc, err := h.svc.GetAccount(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAccountResponse(acc))
}
