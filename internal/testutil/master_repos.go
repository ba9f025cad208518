package testutil

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

// page aplica limit/offset sobre un slice ya ordenado.
func page[T any](list []T, p repository.Page) []T {
	if p.Offset >= len(list) {
		return []T{}
	}
	list = list[p.Offset:]
	if p.Limit > 0 && p.Limit < len(list) {
		list = list[:p.Limit]
	}
	return list
}

// ── Organizations ───────────────────────────────────────────────────────────

// OrganizationRepo fake de repository.OrganizationRepository.
type OrganizationRepo struct {
	mu   sync.Mutex
	rows map[string]entity.Organization
}

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

func NewOrganizationRepo() *OrganizationRepo {
	return &OrganizationRepo{rows: map[string]entity.Organization{}}
}

func (r *OrganizationRepo) Create(_ context.Context, o *entity.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[o.ID]; ok {
		return domain.ErrDuplicate
	}
	r.rows[o.ID] = *o
	return nil
}

func (r *OrganizationRepo) GetByID(_ context.Context, id string) (*entity.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *OrganizationRepo) Update(_ context.Context, o *entity.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[o.ID]; !ok {
		return domain.ErrNotFound
	}
	r.rows[o.ID] = *o
	return nil
}

func (r *OrganizationRepo) List(_ context.Context, p repository.Page) ([]*entity.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Organization, 0, len(r.rows))
	for _, o := range r.rows {
		o := o
		out = append(out, &o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, p), nil
}

// ── Users & sessions ────────────────────────────────────────────────────────

// UserRepo fake de repository.UserRepository. El email es único.
type UserRepo struct {
	mu   sync.Mutex
	rows map[string]entity.User
}

var _ repository.UserRepository = (*UserRepo)(nil)

func NewUserRepo() *UserRepo {
	return &UserRepo{rows: map[string]entity.User{}}
}

func (r *UserRepo) emailTaken(email, exceptID string) bool {
	if email == "" {
		return false
	}
	for id, u := range r.rows {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *UserRepo) Upsert(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(u.Email, u.ID) {
		return domain.ErrDuplicate
	}
	if prev, ok := r.rows[u.ID]; ok {
		if u.PasswordHash == "" {
			u.PasswordHash = prev.PasswordHash
		}
		u.CreatedAt = prev.CreatedAt
	}
	r.rows[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if email != "" && strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[u.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.emailTaken(u.Email, u.ID) {
		return domain.ErrDuplicate
	}
	r.rows[u.ID] = *u
	return nil
}

func (r *UserRepo) ListByOrganization(_ context.Context, orgID string, p repository.Page) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.User{}
	for _, u := range r.rows {
		if u.OrganizationID != nil && *u.OrganizationID == orgID {
			u := u
			out = append(out, &u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, p), nil
}

// SessionRepo fake de repository.SessionRepository. Now decide qué sesiones vencieron.
type SessionRepo struct {
	mu   sync.Mutex
	rows map[string]entity.Session
	Now  func() time.Time
}

var _ repository.SessionRepository = (*SessionRepo)(nil)

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{rows: map[string]entity.Session{}, Now: time.Now}
}

func (r *SessionRepo) Create(_ context.Context, s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[s.SID] = *s
	return nil
}

func (r *SessionRepo) Get(_ context.Context, sid string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[sid]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SessionRepo) Delete(_ context.Context, sid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, sid)
	return nil
}

func (r *SessionRepo) DeleteExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	now := r.Now()
	for sid, s := range r.rows {
		if s.Expired(now) {
			delete(r.rows, sid)
			n++
		}
	}
	return n, nil
}

// Len cantidad de sesiones guardadas.
func (r *SessionRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// ── Vendors ─────────────────────────────────────────────────────────────────

// VendorRepo fake de repository.VendorRepository.
type VendorRepo struct {
	mu   sync.Mutex
	rows map[string]entity.Vendor
}

var _ repository.VendorRepository = (*VendorRepo)(nil)

func NewVendorRepo() *VendorRepo {
	return &VendorRepo{rows: map[string]entity.Vendor{}}
}

func (r *VendorRepo) clone() *VendorRepo {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := NewVendorRepo()
	for k, v := range r.rows {
		c.rows[k] = v
	}
	return c
}

func (r *VendorRepo) restore(from *VendorRepo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = from.rows
}

func (r *VendorRepo) Create(_ context.Context, v *entity.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[v.ID]; ok {
		return domain.ErrDuplicate
	}
	r.rows[v.ID] = *v
	return nil
}

func (r *VendorRepo) GetByID(_ context.Context, id string) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *VendorRepo) GetByUserID(_ context.Context, userID string) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.rows {
		if v.UserID != nil && *v.UserID == userID {
			return &v, nil
		}
	}
	return nil, nil
}

func (r *VendorRepo) List(_ context.Context, f repository.VendorFilter) ([]*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Vendor{}
	for _, v := range r.rows {
		if f.Status != "" && v.Status != f.Status {
			continue
		}
		if f.Category != "" && !contains(v.Categories, f.Category) {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(v.CompanyName), strings.ToLower(f.Search)) {
			continue
		}
		v := v
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, f.Page), nil
}

func (r *VendorRepo) Update(_ context.Context, v *entity.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[v.ID]; !ok {
		return domain.ErrNotFound
	}
	r.rows[v.ID] = *v
	return nil
}

func (r *VendorRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Status = status
	r.rows[id] = v
	return nil
}

func (r *VendorRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// ── Products ────────────────────────────────────────────────────────────────

// ProductRepo fake de repository.ProductRepository. ListCalls cuenta las lecturas de listados.
type ProductRepo struct {
	mu        sync.Mutex
	rows      map[string]entity.Product
	ListCalls int
	// AfterList corre tras cada List, fuera del lock; simula escrituras concurrentes.
	AfterList func()
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

func NewProductRepo(seed ...*entity.Product) *ProductRepo {
	r := &ProductRepo{rows: map[string]entity.Product{}}
	for _, p := range seed {
		r.rows[p.ID] = *p
	}
	return r
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.rows[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	out := r.list(f)
	if hook := r.AfterList; hook != nil {
		r.AfterList = nil
		hook()
	}
	return out, nil
}

func (r *ProductRepo) list(f repository.ProductFilter) []*entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ListCalls++
	out := []*entity.Product{}
	for _, p := range r.rows {
		if f.Active != nil && p.IsActive != *f.Active {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Search != "" {
			s := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.ItemName), s) &&
				!strings.Contains(strings.ToLower(p.InternalCode), s) &&
				!strings.Contains(strings.ToLower(p.ExternalCode), s) {
				continue
			}
		}
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemName < out[j].ItemName })
	return page(out, f.Page)
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.rows[p.ID] = *p
	return nil
}

func (r *ProductRepo) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.IsActive = active
	r.rows[id] = p
	return nil
}

// ProductCache fake de repository.ProductListCache con versión, igual que el de Redis.
type ProductCache struct {
	mu      sync.Mutex
	version int64
	entries map[string][]*entity.Product
}

var _ repository.ProductListCache = (*ProductCache)(nil)

func NewProductCache() *ProductCache {
	return &ProductCache{entries: map[string][]*entity.Product{}}
}

func productCacheKey(version int64, f repository.ProductFilter) string {
	active := "-"
	if f.Active != nil {
		active = strconv.FormatBool(*f.Active)
	}
	return fmt.Sprintf("%d|%s|%s|%s|%d|%d", version, active, f.Category, f.Search, f.Limit, f.Offset)
}

func (c *ProductCache) GetList(_ context.Context, f repository.ProductFilter) ([]*entity.Product, int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list, ok := c.entries[productCacheKey(c.version, f)]
	return list, c.version, ok
}

func (c *ProductCache) SetList(_ context.Context, f repository.ProductFilter, version int64, list []*entity.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version < 0 {
		return
	}
	c.entries[productCacheKey(version, f)] = list
}

func (c *ProductCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
