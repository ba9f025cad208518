package cache

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

type mockCmdable struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	default:
		m.data[key] = fmt.Sprint(v)
	}
	m.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Incr(_ context.Context, key string) *redis.IntCmd {
	n, _ := strconv.ParseInt(m.data[key], 10, 64)
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func TestProductCache_HitHastaInvalidar(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	c := newProductCache(mock, time.Minute, nil)
	f := repository.ProductFilter{Category: "IT", Page: repository.Page{Limit: 20}}

	_, version, ok := c.GetList(ctx, f)
	assert.False(t, ok, "caché vacía es miss")
	assert.Equal(t, int64(0), version)

	list := []*entity.Product{{ID: "p1", ItemName: "Laptop", BasePrice: decimal.NewNullDecimal(decimal.RequireFromString("999.99"))}}
	c.SetList(ctx, f, version, list)

	got, _, ok := c.GetList(ctx, f)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "Laptop", got[0].ItemName)
	assert.True(t, got[0].BasePrice.Decimal.Equal(decimal.RequireFromString("999.99")))

	require.NoError(t, c.Invalidate(ctx))
	_, version, ok = c.GetList(ctx, f)
	assert.False(t, ok, "tras invalidar la versión cambia y la entrada anterior no se usa")
	assert.Equal(t, int64(1), version)
}

// ─── Invalidate entre el miss y el SetList ────────────────────────────────────

func TestProductCache_SetListConVersionViejaNoQuedaVisible(t *testing.T) {
	ctx := context.Background()
	c := newProductCache(newMockCmdable(), time.Minute, nil)
	f := repository.ProductFilter{Category: "IT"}

	_, staleVersion, ok := c.GetList(ctx, f)
	require.False(t, ok)

	// una escritura invalida mientras el listado viejo aún se está leyendo de la base
	require.NoError(t, c.Invalidate(ctx))
	c.SetList(ctx, f, staleVersion, []*entity.Product{{ID: "viejo"}})

	got, version, ok := c.GetList(ctx, f)
	assert.False(t, ok, "el listado leído antes del Invalidate no debe servirse")
	assert.Nil(t, got)
	assert.Equal(t, staleVersion+1, version)
}

func TestProductCache_VersionDesconocidaNoGuarda(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	c := newProductCache(mock, time.Minute, nil)

	c.SetList(ctx, repository.ProductFilter{}, -1, []*entity.Product{{ID: "a"}})
	assert.Empty(t, mock.data)
}

func TestProductCache_FiltrosDistintosNoComparten(t *testing.T) {
	ctx := context.Background()
	c := newProductCache(newMockCmdable(), time.Minute, nil)
	active := true

	c.SetList(ctx, repository.ProductFilter{Category: "IT"}, 0, []*entity.Product{{ID: "a"}})
	_, _, ok := c.GetList(ctx, repository.ProductFilter{Category: "IT", Active: &active})
	assert.False(t, ok)
}

func TestProductCache_UsaTTL(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	c := newProductCache(mock, 42*time.Second, nil)
	f := repository.ProductFilter{}
	c.SetList(ctx, f, 0, nil)
	assert.Equal(t, 42*time.Second, mock.ttls[listKey(0, f)])
}

func TestNoop_SiempreMiss(t *testing.T) {
	var c Noop
	c.SetList(context.Background(), repository.ProductFilter{}, 0, []*entity.Product{{ID: "a"}})
	_, version, ok := c.GetList(context.Background(), repository.ProductFilter{})
	assert.False(t, ok)
	assert.Equal(t, int64(-1), version)
	assert.NoError(t, c.Invalidate(context.Background()))
}
