package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"
	"github.com/yiyuanlee/EPL-shot-maps/internal/config"
)

// Browser fetches pages through headless Chrome. Used when plain HTTP
// keeps hitting the bot challenge; a real browser passes it and the
// rendered page still contains the script blocks the extractor needs.
type Browser struct {
	chromePath string
	userAgent  string
	timeout    time.Duration
	settle     time.Duration
}

// NewBrowser creates a headless-Chrome fetcher from config.
func NewBrowser(cfg *config.Config) *Browser {
	path := cfg.ChromePath
	if path == "" {
		path = FindChrome()
	}
	return &Browser{
		chromePath: path,
		userAgent:  cfg.UserAgent,
		timeout:    cfg.HTTPTimeout,
		settle:     1500 * time.Millisecond,
	}
}

// Fetch navigates to pageURL and returns the document's outer HTML.
func (b *Browser) Fetch(ctx context.Context, pageURL string) (string, error) {
	if b.chromePath == "" {
		return "", fmt.Errorf("chrome browser not found (set SHOTMAPS_CHROME_PATH)")
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(b.chromePath),
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(b.userAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, b.timeout)
	defer cancelRun()

	start := time.Now()
	var html string
	err := chromedp.Run(runCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{
			"Accept-Language": "en-US,en;q=0.9",
			"Referer":         "https://understat.com/",
		}),
		chromedp.Navigate(pageURL),
		// Give the challenge script and any hydration a moment to run.
		chromedp.Sleep(b.settle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("could not retrieve page %s: %w", pageURL, err)
	}

	if !looksLikePage(html) {
		return "", fmt.Errorf("could not retrieve page %s: %w", pageURL, ErrBlocked)
	}

	log.Debug().
		Str("url", pageURL).
		Int("bytes", len(html)).
		Int64("response_time_ms", time.Since(start).Milliseconds()).
		Msg("Browser fetch completed")

	return html, nil
}

// FindChrome locates a Chrome/Chromium executable across platforms.
func FindChrome() string {
	if path := os.Getenv("SHOTMAPS_CHROME_PATH"); path != "" {
		if isExecutable(path) {
			return path
		}
		log.Warn().Str("path", path).Msg("SHOTMAPS_CHROME_PATH set but not executable")
	}

	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
			"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
		}
	case "windows":
		for _, base := range []string{os.Getenv("ProgramFiles"), os.Getenv("ProgramFiles(x86)"), os.Getenv("LocalAppData")} {
			if base != "" {
				candidates = append(candidates,
					filepath.Join(base, "Google\\Chrome\\Application\\chrome.exe"),
					filepath.Join(base, "Chromium\\Application\\chrome.exe"),
					filepath.Join(base, "Microsoft\\Edge\\Application\\msedge.exe"),
				)
			}
		}
	default:
		candidates = []string{
			"/usr/bin/google-chrome-stable",
			"/usr/bin/google-chrome",
			"/usr/bin/chromium-browser",
			"/usr/bin/chromium",
			"/snap/bin/chromium",
		}
	}

	for _, path := range candidates {
		if isExecutable(path) {
			log.Debug().Str("path", path).Msg("Chrome found")
			return path
		}
	}
	return ""
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode()&0o111 != 0
}
