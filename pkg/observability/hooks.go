// Package observability provides hooks for logging and metrics around report
// generation.
//
// The pipeline reports its stage events to a [PipelineHooks] value supplied by
// the caller. There is no global registry: the hooks are passed in explicitly,
// and a nil value means [NoopPipelineHooks].
//
// # Usage
//
//	hooks := observability.NewLogHooks(logger)
//	runner := pipeline.NewRunner(loader, logger, hooks)
//
// Custom implementations can forward events to any backend:
//
//	type counter struct{ observability.NoopPipelineHooks; loads int }
//
//	func (c *counter) OnLoadComplete(context.Context, string, int, time.Duration, error) { c.loads++ }
package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the report pipeline.
type PipelineHooks interface {
	// Load events (resolver invocation or metadata file read)
	OnLoadStart(ctx context.Context, repoRoot string)
	OnLoadComplete(ctx context.Context, repoRoot string, packageCount int, duration time.Duration, err error)

	// OnSelectComplete records how many direct dependencies the roots produced.
	OnSelectComplete(ctx context.Context, rootCount, depCount int, duration time.Duration)

	// Render events
	OnRenderStart(ctx context.Context, depCount int)
	OnRenderComplete(ctx context.Context, size int, duration time.Duration)

	// OnWarning records a non-fatal problem, such as an unreadable license file.
	OnWarning(ctx context.Context, msg string)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnSelectComplete(context.Context, int, int, time.Duration)         {}
func (NoopPipelineHooks) OnRenderStart(context.Context, int)                                {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, int, time.Duration)              {}
func (NoopPipelineHooks) OnWarning(context.Context, string)                                 {}

// =============================================================================
// Logging Implementation
// =============================================================================

// LogHooks writes pipeline events to a structured logger. Stage progress is
// logged at debug level, warnings at warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks logging to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnLoadStart(_ context.Context, repoRoot string) {
	h.logger.Debug("Loading dependency metadata", "repo", repoRoot)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, repoRoot string, packageCount int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Loading dependency metadata failed", "repo", repoRoot, "error", err, "elapsed", duration)
		return
	}
	h.logger.Debug("Loaded dependency metadata", "packages", packageCount, "elapsed", duration)
}

func (h *LogHooks) OnSelectComplete(_ context.Context, rootCount, depCount int, duration time.Duration) {
	h.logger.Debug("Selected direct dependencies", "roots", rootCount, "deps", depCount, "elapsed", duration)
}

func (h *LogHooks) OnRenderStart(_ context.Context, depCount int) {
	h.logger.Debug("Rendering report", "deps", depCount)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, size int, duration time.Duration) {
	h.logger.Debug("Rendered report", "bytes", size, "elapsed", duration)
}

func (h *LogHooks) OnWarning(_ context.Context, msg string) {
	h.logger.Warn(msg)
}

// OrNoop returns h, or NoopPipelineHooks if h is nil.
func OrNoop(h PipelineHooks) PipelineHooks {
	if h == nil {
		return NoopPipelineHooks{}
	}
	return h
}
