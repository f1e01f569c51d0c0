package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"contrast-audit/internal/application/port/output"
	"contrast-audit/internal/domain/entity"

	"golang.org/x/net/html"
)

var _ output.DocumentSource = (*Loader)(nil)

type Config struct {
	// TagsToSkip are dropped together with their subtree.
	TagsToSkip   []string
	MaxMarkupLen int
}

func DefaultConfig() Config {
	return Config{
		TagsToSkip: []string{
			"script", "style", "noscript", "svg", "iframe", "template",
			"link", "meta", "head", "title",
		},
		MaxMarkupLen: 300,
	}
}

type Loader struct {
	cfg    Config
	logger output.LoggerPort
}

func NewLoader(cfg Config, logger output.LoggerPort) *Loader {
	if cfg.MaxMarkupLen <= 0 {
		cfg.MaxMarkupLen = DefaultConfig().MaxMarkupLen
	}
	return &Loader{cfg: cfg, logger: logger}
}

// Load reads an HTML file together with its local linked stylesheets and <style> blocks.
// A linked stylesheet that cannot be read is skipped, not fatal.
func (l *Loader) Load(ctx context.Context, path string) (*entity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	root, err := html.Parse(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}

	return &entity.Document{
		Identifier:  path,
		Stylesheets: l.collectStylesheets(root, filepath.Dir(path)),
		Elements:    l.collectElements(root),
	}, nil
}

// collectStylesheets keeps document order: linked files and <style> blocks interleaved as they appear.
func (l *Loader) collectStylesheets(root *html.Node, baseDir string) []entity.StylesheetFile {
	var files []entity.StylesheetFile
	inline := 0

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "link":
				if f, ok := l.linkedStylesheet(n, baseDir); ok {
					files = append(files, f)
				}
			case "style":
				files = append(files, entity.StylesheetFile{
					Source:  fmt.Sprintf("inline:%d", inline),
					Content: textContent(n),
				})
				inline++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return files
}

func (l *Loader) linkedStylesheet(n *html.Node, baseDir string) (entity.StylesheetFile, bool) {
	if !strings.EqualFold(strings.TrimSpace(attr(n, "rel")), "stylesheet") {
		return entity.StylesheetFile{}, false
	}
	href := strings.TrimSpace(attr(n, "href"))
	if href == "" {
		return entity.StylesheetFile{}, false
	}
	if isRemote(href) {
		l.logger.Debug("Remote stylesheet ignored", "href", href)
		return entity.StylesheetFile{}, false
	}

	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	path := href
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, filepath.FromSlash(href))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		l.logger.Warn("Stylesheet unreadable, skipping", "path", path, "error", err)
		return entity.StylesheetFile{}, false
	}
	return entity.StylesheetFile{Source: path, Content: string(content)}, true
}

func isRemote(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//") ||
		strings.HasPrefix(lower, "data:")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
