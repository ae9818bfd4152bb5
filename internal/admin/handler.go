// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/portfolio-cms/internal/cache"
	"github.com/carterperez-dev/portfolio-cms/internal/core"
	"github.com/carterperez-dev/portfolio-cms/internal/settings"
)

// Counter reports the size of one collection.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// CounterFunc adapts a plain function to Counter.
type CounterFunc func(ctx context.Context) (int, error)

func (f CounterFunc) Count(ctx context.Context) (int, error) {
	return f(ctx)
}

type SettingsLister interface {
	Existing(ctx context.Context) ([]settings.Kind, error)
}

type Handler struct {
	collections map[string]Counter
	settings    SettingsLister
	dbStats     func() sql.DBStats
	redisStats  func() core.RedisStats
	cacheStats  func() cache.Stats
	dbPing      func(ctx context.Context) error
	redisPing   func(ctx context.Context) error
	logger      *slog.Logger
}

// HandlerConfig wires the overview. Any nil field is left out of the
// response.
type HandlerConfig struct {
	Collections map[string]Counter
	Settings    SettingsLister
	DBStats     func() sql.DBStats
	RedisStats  func() core.RedisStats
	CacheStats  func() cache.Stats
	DBPing      func(ctx context.Context) error
	RedisPing   func(ctx context.Context) error
	Logger      *slog.Logger
}

func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		collections: cfg.Collections,
		settings:    cfg.Settings,
		dbStats:     cfg.DBStats,
		redisStats:  cfg.RedisStats,
		cacheStats:  cfg.CacheStats,
		dbPing:      cfg.DBPing,
		redisPing:   cfg.RedisPing,
		logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/overview", h.GetOverview)
		r.Get("/stats/runtime", h.GetRuntimeStats)
	})
}

// GetOverview reports content counts, which settings documents exist, and
// infrastructure health. A failing count is logged and reported as -1.
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts := make(map[string]int, len(h.collections))
	for name, c := range h.collections {
		n, err := c.Count(ctx)
		if err != nil {
			h.logger.WarnContext(ctx, "overview count failed",
				"collection", name,
				"error", err,
			)
			n = -1
		}
		counts[name] = n
	}

	kinds := make(map[settings.Kind]bool, len(settings.Kinds()))
	for _, k := range settings.Kinds() {
		kinds[k] = false
	}
	if h.settings != nil {
		existing, err := h.settings.Existing(ctx)
		if err != nil {
			core.InternalServerError(w, err)
			return
		}
		for _, k := range existing {
			kinds[k] = true
		}
	}

	response := OverviewResponse{
		Collections: counts,
		Settings:    kinds,
		Database: DatabaseStatus{
			Healthy: healthy(ctx, h.dbPing),
			Stats:   h.getDBStats(),
		},
		Redis: RedisStatus{
			Healthy: healthy(ctx, h.redisPing),
			Stats:   h.getRedisStats(),
		},
		Runtime: readRuntime(),
	}
	if h.cacheStats != nil {
		stats := h.cacheStats()
		response.Cache = &stats
	}

	core.OK(w, "Overview retrieved successfully", response)
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, "Runtime stats retrieved successfully", readRuntime())
}

func healthy(ctx context.Context, ping func(context.Context) error) bool {
	if ping == nil {
		return true
	}
	return ping(ctx) == nil
}

func readRuntime() RuntimeStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
	}
}

func (h *Handler) getDBStats() *DBPoolStats {
	if h.dbStats == nil {
		return nil
	}

	stats := h.dbStats()
	return &DBPoolStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration.String(),
	}
}

func (h *Handler) getRedisStats() *core.RedisStats {
	if h.redisStats == nil {
		return nil
	}
	stats := h.redisStats()
	return &stats
}

type OverviewResponse struct {
	Collections map[string]int         `json:"collections"`
	Settings    map[settings.Kind]bool `json:"settings"`
	Database    DatabaseStatus         `json:"database"`
	Redis       RedisStatus            `json:"redis"`
	Cache       *cache.Stats           `json:"cache,omitempty"`
	Runtime     RuntimeStats           `json:"runtime"`
}

type DatabaseStatus struct {
	Healthy bool         `json:"healthy"`
	Stats   *DBPoolStats `json:"stats,omitempty"`
}

type RedisStatus struct {
	Healthy bool             `json:"healthy"`
	Stats   *core.RedisStats `json:"stats,omitempty"`
}

type DBPoolStats struct {
	MaxOpenConnections int    `json:"max_open_connections"`
	OpenConnections    int    `json:"open_connections"`
	InUse              int    `json:"in_use"`
	Idle               int    `json:"idle"`
	WaitCount          int64  `json:"wait_count"`
	WaitDuration       string `json:"wait_duration"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
}
