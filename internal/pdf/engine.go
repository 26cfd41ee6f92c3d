// Package pdf is the rendering boundary: it hands a finished HTML document
// to headless Chromium and returns the printed bytes. A failure here is the
// only fatal condition in the pipeline.
package pdf

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Engine converts a markup document into a binary artifact.
type Engine interface {
	Render(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// A4 paper, inches.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

// Chrome drives a headless Chromium over CDP. The browser starts lazily on
// the first render and is shared across requests; each render gets its own
// page.
type Chrome struct {
	bin string

	mu      sync.Mutex
	browser *rod.Browser
	launch  *launcher.Launcher
}

// NewChrome builds an engine. bin may be empty to let the launcher find or
// download a browser.
func NewChrome(bin string) *Chrome {
	return &Chrome{bin: bin}
}

func (c *Chrome) ensureStarted() (*rod.Browser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.browser != nil {
		return c.browser, nil
	}

	l := launcher.New().Headless(true)
	if c.bin != "" {
		l = l.Bin(c.bin)
	}
	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	c.launch = l
	c.browser = browser
	return browser, nil
}

// Render prints the document to PDF. The context bounds the whole print,
// including page load.
func (c *Chrome) Render(ctx context.Context, html string) ([]byte, error) {
	browser, err := c.ensureStarted()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	defer page.Close()
	page = page.Context(ctx)

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set document content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait for load: %w", err)
	}

	w, h := paperWidth, paperHeight
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      &w,
		PaperHeight:     &h,
	})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	defer stream.Close()

	out, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	return out, nil
}

// Close shuts the shared browser down. Safe to call before any render.
func (c *Chrome) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.browser == nil {
		return nil
	}
	err := c.browser.Close()
	c.browser = nil
	if c.launch != nil {
		c.launch.Kill()
		c.launch = nil
	}
	return err
}
