// Package cache guarda listados del catálogo en Redis. Sin REDIS_URL se usa Noop.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
	"github.com/jhoicas/Procurement-api/pkg/config"
	"github.com/jhoicas/Procurement-api/pkg/logger"
)

const (
	keyNamespace = "procurement"
	versionKey   = keyNamespace + ":products:version"
)

var (
	_ repository.ProductListCache = (*ProductCache)(nil)
	_ repository.ProductListCache = Noop{}
)

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Incr(context.Context, string) *redis.IntCmd
}

// ProductCache caché de listados de productos. Las entradas quedan obsoletas al subir
// la versión (Invalidate) y expiran solas por TTL.
type ProductCache struct {
	store cmdable
	ttl   time.Duration
	log   *logger.Logger
}

// NewClient abre la conexión a Redis y verifica con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewProductCache construye la caché sobre un cliente ya conectado.
func NewProductCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *ProductCache {
	return newProductCache(client, ttl, log)
}

func newProductCache(store cmdable, ttl time.Duration, log *logger.Logger) *ProductCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ProductCache{store: store, ttl: ttl, log: log}
}

// GetList devuelve el listado cacheado y la versión con la que se buscó.
// Cualquier error de Redis se trata como miss; si la versión no se pudo leer devuelve -1.
func (c *ProductCache) GetList(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, int64, bool) {
	version, err := c.version(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("cache: no se pudo leer la versión del catálogo")
		return nil, -1, false
	}
	raw, err := c.store.Get(ctx, listKey(version, f)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Msg("cache: error leyendo listado")
		}
		return nil, version, false
	}
	var list []*entity.Product
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		c.log.Warn().Err(err).Msg("cache: entrada corrupta")
		return nil, version, false
	}
	return list, version, true
}

// SetList guarda el listado bajo la versión leída en el miss, no la actual: si hubo un
// Invalidate entre medio la entrada queda bajo una versión que ya no se consulta.
func (c *ProductCache) SetList(ctx context.Context, f repository.ProductFilter, version int64, list []*entity.Product) {
	if version < 0 {
		return
	}
	data, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, listKey(version, f), data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache: error guardando listado")
	}
}

// Invalidate sube la versión; las claves anteriores dejan de consultarse y expiran por TTL.
func (c *ProductCache) Invalidate(ctx context.Context) error {
	if err := c.store.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("cache: invalidar catálogo: %w", err)
	}
	return nil
}

func (c *ProductCache) version(ctx context.Context) (int64, error) {
	v, err := c.store.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func listKey(version int64, f repository.ProductFilter) string {
	q := url.Values{}
	if f.Active != nil {
		q.Set("active", strconv.FormatBool(*f.Active))
	}
	q.Set("category", f.Category)
	q.Set("q", f.Search)
	q.Set("limit", strconv.Itoa(f.Limit))
	q.Set("offset", strconv.Itoa(f.Offset))
	return fmt.Sprintf("%s:products:v%d:%s", keyNamespace, version, q.Encode())
}

// Noop caché deshabilitada.
type Noop struct{}

// GetList siempre es miss.
func (Noop) GetList(context.Context, repository.ProductFilter) ([]*entity.Product, int64, bool) {
	return nil, -1, false
}

// SetList no guarda nada.
func (Noop) SetList(context.Context, repository.ProductFilter, int64, []*entity.Product) {}

// Invalidate no hace nada.
func (Noop) Invalidate(context.Context) error { return nil }
