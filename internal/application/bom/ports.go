package bom

import (
	"context"

	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

// TxRunner ejecuta cabecera + ítems de una BOM en una sola transacción.
type TxRunner interface {
	RunBOM(ctx context.Context, fn func(boms repository.BOMRepository) error) error
}
