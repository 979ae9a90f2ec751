package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/avaldezp/pizzeria-be/internal/apperror"
	"github.com/avaldezp/pizzeria-be/internal/services"
)

// CrudHandler serves the uniform CRUD contract for one entity type. Every
// entity route set is an instance of this factory rather than a copied
// per-entity handler.
type CrudHandler[T any] struct {
	service  services.CrudProvider[T]
	validate *validator.Validate
}

// NewCrudHandler creates a CrudHandler for an entity service. The validator
// enforces the entity's required-field tags on creation.
func NewCrudHandler[T any](service services.CrudProvider[T], validate *validator.Validate) *CrudHandler[T] {
	return &CrudHandler[T]{service: service, validate: validate}
}

// GetAll handles listing every record of the entity.
func (h *CrudHandler[T]) GetAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetAll()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// Get handles retrieving a record by id.
func (h *CrudHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	item, err := h.service.GetByID(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// Create handles inserting a new record after required-field validation.
func (h *CrudHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var entity T
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		respondError(w, apperror.NewValidation("Cuerpo de la solicitud inválido."))
		return
	}
	if err := h.checkRequired(entity); err != nil {
		respondError(w, err)
		return
	}

	created, err := h.service.Create(entity)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Update handles a partial update: present fields overwrite, absent fields
// keep their stored values, and the merged record is returned.
func (h *CrudHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var patch T
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, apperror.NewValidation("Cuerpo de la solicitud inválido."))
		return
	}

	updated, err := h.service.Update(id, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Delete handles removing a record by id.
func (h *CrudHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// checkRequired turns validator failures into a 400 naming the missing fields.
func (h *CrudHandler[T]) checkRequired(entity T) error {
	err := h.validate.Struct(entity)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewValidation("Cuerpo de la solicitud inválido.")
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return apperror.NewValidation(fmt.Sprintf("Campos obligatorios: %s.", strings.Join(fields, ", ")))
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperror.NewNotFound("Recurso no encontrado.")
	}
	return id, nil
}
