package client

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/multierr"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain/bom"
)

// CreateBOM crea la cabecera (y las líneas si header.Items no está vacío).
func (c *Client) CreateBOM(ctx context.Context, header dto.CreateBOMRequest) (*dto.BOMDetailResponse, error) {
	var out dto.BOMDetailResponse
	if err := c.do(ctx, "POST", "/api/boms", header, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBOM cabecera con líneas y total.
func (c *Client) GetBOM(ctx context.Context, id string) (*dto.BOMDetailResponse, error) {
	var out dto.BOMDetailResponse
	if err := c.do(ctx, "GET", "/api/boms/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddBOMItem agrega una línea a una BOM existente.
func (c *Client) AddBOMItem(ctx context.Context, bomID string, item dto.BOMItemRequest) (*dto.BOMItemResponse, error) {
	var out dto.BOMItemResponse
	if err := c.do(ctx, "POST", "/api/boms/"+url.PathEscape(bomID)+"/items", item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBOM borra la BOM y, en cascada, sus líneas.
func (c *Client) DeleteBOM(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/api/boms/"+url.PathEscape(id), nil, nil)
}

// ListProducts catálogo paginado para alimentar el builder.
func (c *Client) ListProducts(ctx context.Context, q dto.ProductListQuery) (*dto.ListResponse[dto.ProductResponse], error) {
	v := url.Values{}
	if q.Active != nil {
		v.Set("active", fmt.Sprint(*q.Active))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Limit > 0 {
		v.Set("limit", fmt.Sprint(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", fmt.Sprint(q.Offset))
	}
	path := "/api/products"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}
	var out dto.ListResponse[dto.ProductResponse]
	if err := c.do(ctx, "GET", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BomCommitter persiste una BOM armada en memoria.
type BomCommitter struct {
	c *Client
}

// NewBomCommitter crea un committer sobre el cliente.
func NewBomCommitter(c *Client) *BomCommitter {
	return &BomCommitter{c: c}
}

// Commit crea la cabecera y luego cada línea en orden, una petición por línea.
// Si una línea falla se borra la BOM una sola vez; el error combina la falla de la
// línea y la de la compensación. Una BOM vacía no genera peticiones.
func (bc *BomCommitter) Commit(ctx context.Context, header dto.CreateBOMRequest, b *bom.Builder) (*dto.BOMDetailResponse, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	header.Items = nil
	created, err := bc.c.CreateBOM(ctx, header)
	if err != nil {
		return nil, fmt.Errorf("crear cabecera: %w", err)
	}

	items := make([]dto.BOMItemResponse, 0, len(b.Items()))
	for i, line := range b.Items() {
		it, err := bc.c.AddBOMItem(ctx, created.ID, itemRequest(line))
		if err != nil {
			err = fmt.Errorf("línea %d (%s): %w", i, line.ProductID, err)
			if derr := bc.c.DeleteBOM(ctx, created.ID); derr != nil {
				err = multierr.Append(err, fmt.Errorf("compensar BOM %s: %w", created.ID, derr))
			}
			return nil, err
		}
		items = append(items, *it)
	}

	created.Items = items
	created.TotalValue = b.Total()
	return created, nil
}

// CommitAtomic envía cabecera y líneas en una sola petición; el servidor usa una transacción.
func (bc *BomCommitter) CommitAtomic(ctx context.Context, header dto.CreateBOMRequest, b *bom.Builder) (*dto.BOMDetailResponse, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	lines := b.Items()
	header.Items = make([]dto.BOMItemRequest, 0, len(lines))
	for _, line := range lines {
		header.Items = append(header.Items, itemRequest(line))
	}
	return bc.c.CreateBOM(ctx, header)
}

func itemRequest(l bom.Line) dto.BOMItemRequest {
	total := l.TotalPrice
	return dto.BOMItemRequest{
		ProductID:  l.ProductID,
		Quantity:   l.Quantity,
		UOM:        l.UOM,
		UnitPrice:  l.UnitPrice,
		TotalPrice: &total,
	}
}
