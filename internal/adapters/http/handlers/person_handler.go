package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

// PersonHandler handles HTTP requests for person CRUD.
type PersonHandler struct {
	svc ports.PersonService
}

// NewPersonHandler creates a new PersonHandler with the given service port.
func NewPersonHandler(svc ports.PersonService) *PersonHandler {
	return &PersonHandler{svc: svc}
}

// ListPeople handles GET /api/v1/people.
func (h *PersonHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.svc.ListPeople(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToPersonListResponse(people))
}

// CreatePerson handles POST /api/v1/people.
func (h *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req dto.PersonRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreatePerson(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeCreated(w, r, created.ID, dto.ToPersonResponse(created))
}

// GetPerson handles GET /api/v1/people/{id}.
func (h *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetPerson(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToPersonResponse(p))
}

// UpdatePerson handles PUT /api/v1/people/{id}.
func (h *PersonHandler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	var req dto.PersonRequest
	id, ok := decodeReplacement(w, r, &req)
	if !ok {
		return
	}

	updated, err := h.svc.UpdatePerson(r.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToPersonResponse(updated))
}

// DeletePerson handles DELETE /api/v1/people/{id}.
func (h *PersonHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeletePerson(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
