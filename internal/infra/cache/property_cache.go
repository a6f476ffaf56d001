// Package cache implements the property read cache: an in-process ccache tier
// in front of an optional shared memcached tier.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"stayscape/config"
	"stayscape/internal/domain/entity"
	"stayscape/internal/domain/service"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	keyPrefix           = "stayscape:property:"
	fencePrefix         = "stayscape:property-fence:"
	defaultLocalMaxSize = 1000
	defaultLocalTTL     = time.Minute
	defaultRemoteTTL    = 5 * time.Minute
	defaultFenceTTL     = 5 * time.Second
	memcachedTimeout    = 200 * time.Millisecond
)

// remoteStore is the subset of *memcache.Client used by the shared tier.
type remoteStore interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Delete(key string) error
}

type propertyCache struct {
	local     *ccache.Cache[*entity.Property]
	localTTL  time.Duration
	fences    *ccache.Cache[struct{}]
	fenceTTL  time.Duration
	remote    remoteStore
	remoteTTL time.Duration
	logger    *slog.Logger
}

// Params defines the dependencies of the property cache
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewPropertyCache builds the two-tier cache from the cache config section.
// The memcached tier is skipped when no hosts are configured.
func NewPropertyCache(params Params) service.PropertyCache {
	cfg := params.Config.Cache
	if cfg == nil {
		cfg = &config.CacheConfig{}
	}

	var remote remoteStore
	if len(cfg.MemcachedHosts) > 0 {
		client := memcache.New(cfg.MemcachedHosts...)
		client.Timeout = memcachedTimeout
		remote = client
		params.Logger.Info("Property cache using memcached", slog.Any("hosts", cfg.MemcachedHosts))
	}

	c := newPropertyCache(cfg, remote, params.Logger)
	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			c.stop()

			return nil
		},
	})

	return c
}

func newPropertyCache(cfg *config.CacheConfig, remote remoteStore, logger *slog.Logger) *propertyCache {
	maxSize := cfg.LocalMaxSize
	if maxSize <= 0 {
		maxSize = defaultLocalMaxSize
	}
	localTTL := cfg.LocalTTL
	if localTTL <= 0 {
		localTTL = defaultLocalTTL
	}
	remoteTTL := cfg.MemcachedTTL
	if remoteTTL <= 0 {
		remoteTTL = defaultRemoteTTL
	}
	fenceTTL := cfg.InvalidationFence
	if fenceTTL <= 0 {
		fenceTTL = defaultFenceTTL
	}

	return &propertyCache{
		local:     ccache.New(ccache.Configure[*entity.Property]().MaxSize(maxSize)),
		localTTL:  localTTL,
		fences:    ccache.New(ccache.Configure[struct{}]().MaxSize(maxSize)),
		fenceTTL:  fenceTTL,
		remote:    remote,
		remoteTTL: remoteTTL,
		logger:    logger,
	}
}

func (c *propertyCache) stop() {
	c.local.Stop()
	c.fences.Stop()
}

func cacheKey(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

func fenceKey(id int64) string {
	return fencePrefix + strconv.FormatInt(id, 10)
}

// fenced reports whether the property was invalidated within the fence window.
func (c *propertyCache) fenced(id int64) bool {
	if item := c.fences.Get(fenceKey(id)); item != nil && !item.Expired() {
		return true
	}
	if c.remote == nil {
		return false
	}

	_, err := c.remote.Get(fenceKey(id))

	return err == nil
}

// Get checks the local tier, then memcached. A memcached hit refills the local tier.
func (c *propertyCache) Get(ctx context.Context, id int64) (*entity.Property, bool) {
	key := cacheKey(id)

	if item := c.local.Get(key); item != nil && !item.Expired() {
		return item.Value().Clone(), true
	}

	if c.remote == nil {
		return nil, false
	}

	item, err := c.remote.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			c.logger.WarnContext(ctx, "Memcached get failed", slog.String("key", key), slog.Any("error", err))
		}

		return nil, false
	}

	var property entity.Property
	if err := json.Unmarshal(item.Value, &property); err != nil {
		c.logger.WarnContext(ctx, "Discarding undecodable cache entry", slog.String("key", key), slog.Any("error", err))
		_ = c.remote.Delete(key)

		return nil, false
	}

	c.local.Set(key, property.Clone(), c.localTTL)

	return &property, true
}

// Set writes both tiers unless the property is fenced by a recent Invalidate.
// Remote failures are logged and otherwise ignored.
func (c *propertyCache) Set(ctx context.Context, property *entity.Property) {
	if property == nil {
		return
	}
	if c.fenced(property.ID) {
		c.logger.DebugContext(ctx, "Skipping cache fill for recently invalidated property", slog.Int64("property_id", property.ID))

		return
	}
	key := cacheKey(property.ID)

	c.local.Set(key, property.Clone(), c.localTTL)

	if c.remote == nil {
		return
	}

	data, err := json.Marshal(property)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to encode property for cache", slog.Int64("property_id", property.ID), slog.Any("error", err))

		return
	}

	if err := c.remote.Set(&memcache.Item{
		Key:        key,
		Value:      data,
		Expiration: int32(c.remoteTTL / time.Second),
	}); err != nil {
		c.logger.WarnContext(ctx, "Memcached set failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Invalidate drops the property from both tiers and fences it against refills
// by reads that started before the write.
func (c *propertyCache) Invalidate(ctx context.Context, id int64) {
	key := cacheKey(id)
	c.fences.Set(fenceKey(id), struct{}{}, c.fenceTTL)
	c.local.Delete(key)

	if c.remote == nil {
		return
	}

	if err := c.remote.Set(&memcache.Item{
		Key:        fenceKey(id),
		Value:      []byte{1},
		Expiration: fenceSeconds(c.fenceTTL),
	}); err != nil {
		c.logger.WarnContext(ctx, "Memcached fence set failed", slog.String("key", key), slog.Any("error", err))
	}

	if err := c.remote.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		c.logger.WarnContext(ctx, "Memcached delete failed", slog.String("key", key), slog.Any("error", err))
	}
}

// fenceSeconds rounds up to memcached's one-second expiry granularity.
func fenceSeconds(d time.Duration) int32 {
	secs := int32((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}

	return secs
}
