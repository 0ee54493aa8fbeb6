package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug records.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger}
}

// Register installs h for all hook categories.
func (h *LogHooks) Register() {
	SetRenderHooks(h)
	SetCacheHooks(h)
	SetSourceHooks(h)
}

func (h *LogHooks) OnRenderStart(_ context.Context, username string) {
	h.Logger.Debug("render start", "user", username)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, username string, size int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "user", username, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("render done", "user", username, "bytes", size, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnFetch(_ context.Context, source, username string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("fetch failed", "source", source, "user", username, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("fetch", "source", source, "user", username, "duration", d)
}
