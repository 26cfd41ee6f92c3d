package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"englishkaku/internal/events"
	"englishkaku/internal/history"
	"englishkaku/internal/notes"
	"englishkaku/internal/render"
	"englishkaku/pkg/database"
)

// stubEngine stands in for the browser boundary.
type stubEngine struct {
	data []byte
	err  error
}

func (s *stubEngine) Render(ctx context.Context, html string) ([]byte, error) {
	return s.data, s.err
}

func (s *stubEngine) Close() error { return nil }

func newTestHandler(t *testing.T, engine *stubEngine) (*Handler, *gin.Engine, *history.Repo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	renderer, err := render.New(render.DefaultOptions())
	require.NoError(t, err)

	stamp := notes.NewStamp(6, "GMT+6")
	stamp.Now = func() time.Time {
		return time.Date(2025, 8, 29, 14, 55, 30, 0, time.UTC)
	}

	repo := history.NewRepo(db)
	h := &Handler{
		Resolver: notes.Resolver{},
		Stamp:    stamp,
		Renderer: renderer,
		Engine:   engine,
		History:  repo,
		Events:   events.NewHub(),
		Log:      zap.NewNop(),
	}

	router := gin.New()
	h.RegisterRoutes(router.Group("/"))
	return h, router, repo
}

const samplePayload = `{
	"title": "News Title",
	"time": "2025-08-29T10:55:30.742-04:00",
	"message": {"content": "narrative text"},
	"output": [
		{"english": "word", "bengali": "শব্দ", "synonyms": ["term"], "antonyms": []}
	]
}`

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestConvertToPDF(t *testing.T) {
	_, router, repo := newTestHandler(t, &stubEngine{data: []byte("%PDF-1.4 fake")})

	w := postJSON(router, "/convert-to-pdf", samplePayload)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=english_learning_notes.pdf", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 fake", w.Body.String())

	entries, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "News Title", entries[0].Title)
	assert.Equal(t, "pdf", entries[0].Format)
	assert.Equal(t, "ok", entries[0].Status)
	assert.Equal(t, len("%PDF-1.4 fake"), entries[0].Bytes)
}

func TestConvertToPDFEngineFailure(t *testing.T) {
	_, router, repo := newTestHandler(t, &stubEngine{err: errors.New("browser crashed")})

	w := postJSON(router, "/convert-to-pdf", samplePayload)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "pdf generation failed")

	entries, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0].Status)
}

func TestConvertRejectsBadBodies(t *testing.T) {
	_, router, _ := newTestHandler(t, &stubEngine{data: []byte("x")})

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "malformed json", body: `{"title":`, want: "invalid json body"},
		{name: "empty body", body: "", want: "invalid json body"},
		{name: "json null", body: "null", want: "no json data provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/convert-to-pdf", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestConvertToHTML(t *testing.T) {
	_, router, repo := newTestHandler(t, &stubEngine{data: []byte("unused")})

	w := postJSON(router, "/convert-to-html", samplePayload)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	doc := w.Body.String()
	assert.Contains(t, doc, "News Title")
	assert.Contains(t, doc, "<strong>word</strong>")
	assert.Contains(t, doc, "2025-08-29 20:55:30 GMT+6")
	assert.Contains(t, doc, "narrative text")

	entries, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "html", entries[0].Format)
}

// A gracefully degraded payload still converts: wrong shapes never 4xx.
func TestConvertToHTMLDegradedPayload(t *testing.T) {
	_, router, _ := newTestHandler(t, &stubEngine{})

	w := postJSON(router, "/convert-to-html", `42`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), notes.DefaultTitle)
}
