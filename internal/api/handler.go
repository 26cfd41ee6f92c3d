// Package api exposes the conversion pipeline over HTTP: decode JSON,
// resolve, normalize the timestamp, render HTML, and optionally print to PDF.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"englishkaku/internal/events"
	"englishkaku/internal/history"
	"englishkaku/internal/notes"
	"englishkaku/internal/pdf"
	"englishkaku/internal/render"
)

const pdfFilename = "english_learning_notes.pdf"

type Handler struct {
	Resolver notes.Resolver
	Stamp    notes.Stamp
	Renderer *render.Renderer
	Engine   pdf.Engine
	History  *history.Repo
	Events   *events.Hub
	Log      *zap.Logger
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/convert-to-pdf", h.convertToPDF)
	rg.POST("/convert-to-html", h.convertToHTML)
}

// bindPayload decodes an arbitrary JSON body. Any well-formed JSON value is
// accepted; only an absent or malformed body is rejected.
func bindPayload(c *gin.Context) (any, bool) {
	var raw any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return nil, false
	}
	if raw == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no json data provided"})
		return nil, false
	}
	return raw, true
}

// compose runs the infallible half of the pipeline.
func (h *Handler) compose(raw any) (notes.Record, string, error) {
	rec := h.Resolver.Resolve(raw)
	doc, err := h.Renderer.Render(rec, h.Stamp.Display(rec.RawTime))
	return rec, doc, err
}

func (h *Handler) convertToPDF(c *gin.Context) {
	raw, ok := bindPayload(c)
	if !ok {
		return
	}

	start := time.Now()
	id := uuid.NewString()

	rec, doc, err := h.compose(raw)
	if err != nil {
		h.Log.Error("sheet render failed", zap.String("id", id), zap.Error(err))
		h.finish(c, id, rec.Title, "pdf", 0, start, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "document rendering failed"})
		return
	}

	out, err := h.Engine.Render(c.Request.Context(), doc)
	if err != nil {
		// the rendering boundary is the one fatal step in the pipeline
		h.Log.Error("pdf engine failed", zap.String("id", id), zap.Error(err))
		h.finish(c, id, rec.Title, "pdf", 0, start, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pdf generation failed"})
		return
	}

	h.finish(c, id, rec.Title, "pdf", len(out), start, nil)

	c.Header("Content-Disposition", "attachment; filename="+pdfFilename)
	c.Data(http.StatusOK, "application/pdf", out)
}

// convertToHTML is the export mode: same pipeline, no print step.
func (h *Handler) convertToHTML(c *gin.Context) {
	raw, ok := bindPayload(c)
	if !ok {
		return
	}

	start := time.Now()
	id := uuid.NewString()

	rec, doc, err := h.compose(raw)
	if err != nil {
		h.Log.Error("sheet render failed", zap.String("id", id), zap.Error(err))
		h.finish(c, id, rec.Title, "html", 0, start, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "document rendering failed"})
		return
	}

	h.finish(c, id, rec.Title, "html", len(doc), start, nil)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

// finish records the conversion in the audit log and on the event feed.
// Neither failure disturbs the response.
func (h *Handler) finish(c *gin.Context, id, title, format string, size int, start time.Time, cause error) {
	elapsed := time.Since(start).Milliseconds()

	status := "ok"
	eventType := events.RenderCompletedType
	errText := ""
	if cause != nil {
		status = "error"
		eventType = events.RenderFailedType
		errText = cause.Error()
	}

	if h.History != nil {
		err := h.History.Insert(c.Request.Context(), history.Entry{
			ID:         id,
			Title:      title,
			Format:     format,
			Status:     status,
			Bytes:      size,
			DurationMS: elapsed,
		})
		if err != nil {
			h.Log.Warn("history insert failed", zap.String("id", id), zap.Error(err))
		}
	}

	if h.Events != nil {
		h.Events.BroadcastJSON(events.RenderEvent{
			Type:       eventType,
			ID:         id,
			Title:      title,
			Format:     format,
			Bytes:      size,
			DurationMS: elapsed,
			Error:      errText,
			At:         time.Now().UTC(),
		})
	}
}
