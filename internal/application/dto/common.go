package dto

import "github.com/jhoicas/Procurement-api/internal/domain/repository"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// ErrorResponse cuerpo de error HTTP. Details lleva el detalle por campo en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// StatusRequest cambio de estado genérico (vendors, rfx, auctions, purchase orders).
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CountResponse respuesta con un único conteo.
type CountResponse struct {
	Count int64 `json:"count"`
}

// ListResponse listado paginado.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// NewListResponse arma la respuesta con la página pedida y la cantidad devuelta.
func NewListResponse[T any](items []T, p PageRequest) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Page: PageResponse{Limit: p.Limit, Offset: p.Offset, Count: len(items)}}
}

// Repo traduce la página a la del repositorio.
func (p PageRequest) Repo() repository.Page {
	return repository.Page{Limit: p.Limit, Offset: p.Offset}
}
