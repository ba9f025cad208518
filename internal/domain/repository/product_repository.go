package repository

import (
	"context"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	SetActive(ctx context.Context, id string, active bool) error
}

// ProductListCache caché de listados del catálogo. Invalidate debe dejar obsoletas todas las entradas.
//
// GetList devuelve también la versión del catálogo leída; en un miss el llamador pasa esa misma
// versión a SetList, así un listado leído antes de un Invalidate nunca queda bajo la versión nueva.
// Una versión negativa significa desconocida y SetList no guarda nada.
type ProductListCache interface {
	GetList(ctx context.Context, f ProductFilter) (list []*entity.Product, version int64, hit bool)
	SetList(ctx context.Context, f ProductFilter, version int64, list []*entity.Product)
	Invalidate(ctx context.Context) error
}
