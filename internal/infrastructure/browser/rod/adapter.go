package rod

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"contrast-audit/internal/application/port/output"
	"contrast-audit/internal/domain/entity"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

var _ output.StyleSource = (*BrowserAdapter)(nil)

var ErrInvalidURL = errors.New("invalid url")

const (
	defaultSlowMotion = 0 * time.Millisecond
	defaultTimeout    = 10 * time.Second
	defaultIdleWait   = 2 * time.Second
	defaultMaxMarkup  = 300
)

type BrowserAdapter struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	page      *rod.Page
	timeout   time.Duration
	maxMarkup int
	logger    output.LoggerPort
	closed    bool
}

type BrowserConfig struct {
	Headless   bool
	SlowMotion time.Duration
	Timeout    time.Duration
	NoSandbox  bool
	DevTools   bool

	// DisableSecurityFeatures lets file:// pages pull stylesheets across origins.
	DisableSecurityFeatures bool
	MaxMarkupLen            int
}

func DefaultConfig() BrowserConfig {
	return BrowserConfig{
		Headless:     false,
		SlowMotion:   defaultSlowMotion,
		Timeout:      defaultTimeout,
		NoSandbox:    false,
		DevTools:     false,
		MaxMarkupLen: defaultMaxMarkup,
	}
}

func NewBrowserAdapter(ctx context.Context, cfg BrowserConfig, logger output.LoggerPort) (*BrowserAdapter, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxMarkupLen <= 0 {
		cfg.MaxMarkupLen = defaultMaxMarkup
	}

	l := launcher.New().
		Context(ctx).
		Headless(cfg.Headless).
		Devtools(cfg.DevTools).
		NoSandbox(cfg.NoSandbox).
		Delete("use-mock-keychain")
	if cfg.DisableSecurityFeatures {
		l = l.Set("disable-web-security").
			Set("allow-running-insecure-content").
			Set("allow-file-access-from-files")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().
		Context(ctx).
		ControlURL(controlURL).
		SlowMotion(cfg.SlowMotion)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &BrowserAdapter{
		browser:   browser,
		launcher:  l,
		page:      page,
		timeout:   cfg.Timeout,
		maxMarkup: cfg.MaxMarkupLen,
		logger:    logger,
	}, nil
}

func (b *BrowserAdapter) IsReady() bool {
	return !b.closed && b.browser != nil && b.page != nil
}

func (b *BrowserAdapter) Navigate(ctx context.Context, rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}
	if !b.IsReady() {
		return fmt.Errorf("browser is closed")
	}

	page := b.page.Context(ctx).Timeout(b.timeout)
	if err := page.Navigate(rawURL); err != nil {
		return fmt.Errorf("%w: navigation failed: %v", entity.ErrPageLoad, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("%w: load failed: %v", entity.ErrPageLoad, err)
	}
	// Late-arriving stylesheets and fonts change computed colors; idle timeout is not an error.
	_ = page.WaitIdle(defaultIdleWait)
	return nil
}

// ElementStyles navigates to the page and reads every element's rendered style.
func (b *BrowserAdapter) ElementStyles(ctx context.Context, rawURL string) ([]entity.ElementStyleRecord, error) {
	if err := b.Navigate(ctx, rawURL); err != nil {
		return nil, err
	}

	res, err := b.page.Context(ctx).Timeout(b.timeout).Eval(collectStylesJS, b.maxMarkup)
	if err != nil {
		return nil, fmt.Errorf("%w: style collection failed: %v", entity.ErrPageLoad, err)
	}

	nodes := parseNodes(res.Value)
	records, skipped := recordsFromNodes(nodes)
	if skipped > 0 {
		b.logger.Warn("Elements with unresolvable background skipped", "page", rawURL, "count", skipped)
	}
	b.logger.Debug("Collected element styles", "page", rawURL, "elements", len(nodes), "records", len(records))
	return records, nil
}

func (b *BrowserAdapter) CurrentURL() string {
	if !b.IsReady() {
		return ""
	}
	info, err := b.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

func (b *BrowserAdapter) Close() {
	if b.closed {
		return
	}
	b.closed = true
	if b.browser != nil {
		_ = b.browser.Close()
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher.Cleanup()
	}
}

func validateURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("%w: missing host in %q", ErrInvalidURL, rawURL)
		}
	case "file":
	default:
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	return nil
}
