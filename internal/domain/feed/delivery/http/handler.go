package http

import (
	"bytes"
	"html/template"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Conte777/tweetfeed/config"
	"github.com/Conte777/tweetfeed/internal/domain/feed/deps"
	pkgerrors "github.com/Conte777/tweetfeed/pkg/errors"
	"github.com/Conte777/tweetfeed/pkg/httputil"
)

// HealthStatus represents the overall health status
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResponse represents the JSON response for health check
type HealthResponse struct {
	Status    HealthStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Message   string       `json:"message,omitempty"`
}

// PageHandler serves the page document
type PageHandler struct {
	page     deps.PageReader
	mapper   *pkgerrors.Mapper
	title    string
	regionID string
	labelID  string
	refresh  time.Duration
	logger   zerolog.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(
	page deps.PageReader,
	pageCfg *config.PageConfig,
	feedCfg *config.FeedConfig,
	logger zerolog.Logger,
) *PageHandler {
	return &PageHandler{
		page:     page,
		mapper:   pkgerrors.NewMapper(logger),
		title:    pageCfg.Title,
		regionID: pageCfg.RegionID,
		labelID:  pageCfg.LabelID,
		refresh:  feedCfg.RefreshInterval,
		logger:   logger,
	}
}

// Index renders the host page
func (h *PageHandler) Index(ctx *fasthttp.RequestCtx) {
	snap, err := h.page.Snapshot(ctx)
	if err != nil {
		status, msg := h.mapper.MapErrorToHTTP(err)
		httputil.WriteHTML(ctx, template.HTMLEscapeString(msg), status)
		return
	}

	refresh := int(h.refresh / time.Second)
	if refresh < 1 {
		refresh = 1
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, pageData{
		Title:          h.title,
		RefreshSeconds: refresh,
		RegionID:       h.regionID,
		LabelID:        h.labelID,
		TweetsHTML:     template.HTML(snap.TweetsHTML),
		LastUpdate:     snap.LastUpdate,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to render page")
		httputil.WriteHTML(ctx, "internal server error", fasthttp.StatusInternalServerError)
		return
	}

	httputil.WriteHTML(ctx, buf.String(), fasthttp.StatusOK)
}

// Fragment returns the region HTML only
func (h *PageHandler) Fragment(ctx *fasthttp.RequestCtx) {
	snap, err := h.page.Snapshot(ctx)
	if err != nil {
		status, msg := h.mapper.MapErrorToHTTP(err)
		httputil.WriteHTML(ctx, template.HTMLEscapeString(msg), status)
		return
	}

	httputil.WriteHTML(ctx, snap.TweetsHTML, fasthttp.StatusOK)
}

// Feed returns both elements as JSON
func (h *PageHandler) Feed(ctx *fasthttp.RequestCtx) {
	snap, err := h.page.Snapshot(ctx)
	if err != nil {
		status, msg := h.mapper.MapErrorToHTTP(err)
		httputil.WriteErrorResponse(ctx, msg, status)
		return
	}

	httputil.WriteResponse(ctx, snap)
}

// Health reports whether the page store answers
func (h *PageHandler) Health(ctx *fasthttp.RequestCtx) {
	response := HealthResponse{
		Status:    HealthStatusHealthy,
		Timestamp: time.Now().UTC(),
	}
	statusCode := fasthttp.StatusOK

	if _, err := h.page.Snapshot(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("Health check failed")
		response.Status = HealthStatusUnhealthy
		response.Message = err.Error()
		statusCode = fasthttp.StatusServiceUnavailable
	}

	httputil.WriteJSON(ctx, response, statusCode)
}
