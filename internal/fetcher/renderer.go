package fetcher

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// Renderer materializes the DOM of a JavaScript-heavy page. Implementations
// must release the browser session on every exit path, including navigation
// failure and timeout.
type Renderer interface {
	Render(ctx context.Context, rawURL string, settle time.Duration) (string, error)
}

// chromeRenderer drives a headless Chrome through chromedp. Each call gets
// its own allocator and tab context, so the OS process is fully torn down
// when the call returns.
type chromeRenderer struct{}

func (chromeRenderer) Render(ctx context.Context, rawURL string, settle time.Duration) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	defer tabCancel()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(rawURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(settle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", err
	}
	return html, nil
}
