package rendering

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	orderapp "github.com/osworks/backend/internal/application/order"
	"github.com/osworks/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// QuoteRenderer produces a printable PDF for a quote read model.
type QuoteRenderer interface {
	RenderQuote(ctx context.Context, quote orderapp.OrderResponse) ([]byte, error)
	Close()
}

// ChromedpRenderer renders quote documents to PDF through a headless
// Chrome instance. The allocator is shared; each render gets its own tab.
type ChromedpRenderer struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	timeout     time.Duration
	logger      *zap.Logger
}

// NewChromedpRenderer starts a Chrome allocator with the usual
// container-safe flags.
func NewChromedpRenderer(cfg config.RenderConfig, log *zap.Logger) *ChromedpRenderer {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &ChromedpRenderer{
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		timeout:     cfg.Timeout,
		logger:      log.Named("renderer"),
	}
}

// RenderQuote builds the quote HTML and prints it to an A4 PDF.
func (r *ChromedpRenderer) RenderQuote(ctx context.Context, quote orderapp.OrderResponse) ([]byte, error) {
	html, err := BuildQuoteHTML(quote)
	if err != nil {
		return nil, fmt.Errorf("building quote document: %w", err)
	}

	tabCtx, tabCancel := chromedp.NewContext(r.allocCtx)
	defer tabCancel()

	runCtx, cancel := context.WithTimeout(tabCtx, r.timeout)
	defer cancel()
	go func() {
		// propagate cancellation from the caller
		select {
		case <-ctx.Done():
			cancel()
		case <-runCtx.Done():
		}
	}()

	start := time.Now()
	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(cctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(cctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(cctx)
		}),
		chromedp.ActionFunc(func(cctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(cctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering quote %s: %w", quote.ID, err)
	}

	r.logger.Debug("quote rendered",
		zap.String("order_id", quote.ID.String()),
		zap.Int("bytes", len(pdf)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return pdf, nil
}

// Close shuts down the Chrome allocator.
func (r *ChromedpRenderer) Close() {
	r.allocCancel()
}
