package sitedoc

import (
	"net/url"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PathCodec maps logical document paths to fetchable URLs under a base URL
// and back.
type PathCodec struct {
	base     *url.URL
	baseURL  string
	basePath string
}

// NewPathCodec creates a PathCodec for the given absolute base URL.
// A trailing slash on the base is ignored.
func NewPathCodec(baseURL string) (*PathCodec, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, Errorf(EINVALID, "invalid base URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, Errorf(EINVALID, "base URL must be http or https: %q", baseURL)
	}
	if u.Host == "" {
		return nil, Errorf(EINVALID, "base URL has no host: %q", baseURL)
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""

	return &PathCodec{
		base:     u,
		baseURL:  u.String(),
		basePath: u.Path,
	}, nil
}

// BaseURL returns the normalized base URL without a trailing slash.
func (c *PathCodec) BaseURL() string {
	return c.baseURL
}

// ToFetchURL maps a logical path to the URL of its generated page.
// Absolute URLs are returned unchanged.
func (c *PathCodec) ToFetchURL(logicalPath string) string {
	if isAbsoluteURL(logicalPath) {
		return logicalPath
	}
	if !strings.HasPrefix(logicalPath, "/") {
		logicalPath = "/" + logicalPath
	}
	switch {
	case logicalPath == "/":
		return c.baseURL + "/index.html"
	case strings.HasSuffix(logicalPath, "/"):
		return c.baseURL + logicalPath + "index.html"
	case strings.HasSuffix(logicalPath, ".html"):
		return c.baseURL + logicalPath
	}
	return c.baseURL + logicalPath + ".html"
}

// ToLogicalPath maps a page URL back to its logical path. The base path is
// stripped when present; URLs reported without it are accepted as is.
func (c *PathCodec) ToLogicalPath(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	p := u.Path
	if c.basePath != "" {
		if p == c.basePath {
			p = "/"
		} else if strings.HasPrefix(p, c.basePath+"/") {
			p = p[len(c.basePath):]
		}
	}
	p = strings.TrimSuffix(p, ".html")
	switch {
	case p == "index" || p == "/index":
		p = "/"
	case strings.HasSuffix(p, "/index"):
		p = strings.TrimSuffix(p, "index")
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p, nil
}

// InScope reports whether rawURL points at a page under the base URL.
func (c *PathCodec) InScope(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Host != c.base.Host {
		return false
	}
	if c.basePath == "" {
		return true
	}
	return u.Path == c.basePath || strings.HasPrefix(u.Path, c.basePath+"/")
}

var ineligibleExtensions = map[string]bool{
	".css":   true,
	".js":    true,
	".mjs":   true,
	".map":   true,
	".png":   true,
	".jpg":   true,
	".jpeg":  true,
	".gif":   true,
	".webp":  true,
	".ico":   true,
	".svg":   true,
	".woff":  true,
	".woff2": true,
	".ttf":   true,
	".json":  true,
	".xml":   true,
	".txt":   true,
	".pdf":   true,
}

// IsEligibleDocumentPath reports whether a logical path can name a
// documentation page. Static assets, the assets directory, API routes and
// the not-found page are rejected.
func IsEligibleDocumentPath(p string) bool {
	if p == "" {
		return false
	}
	lower := strings.ToLower(p)
	if i := strings.IndexAny(lower, "?#"); i >= 0 {
		lower = lower[:i]
	}
	if ineligibleExtensions[path.Ext(lower)] {
		return false
	}
	if strings.Contains(lower, "/assets/") {
		return false
	}
	if lower == "/api" || strings.HasPrefix(lower, "/api/") {
		return false
	}
	if lower == "/404" {
		return false
	}
	return true
}

// CategoryOf derives the category of a logical path from its prefix.
func CategoryOf(p string) Category {
	switch {
	case strings.HasPrefix(p, "/frontend/"):
		return CategoryFrontend
	case strings.HasPrefix(p, "/backend/"):
		return CategoryBackend
	}
	return CategoryGeneral
}

// TitleFromPath builds a readable title from a logical path, used when a
// page carries no title of its own. Hyphens and underscores become spaces
// and each word is capitalized.
func TitleFromPath(p string) string {
	p = strings.TrimPrefix(p, "/")
	p = strings.TrimSuffix(p, ".html")
	p = strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, p)

	var b strings.Builder
	atWordStart := true
	for _, r := range p {
		isWord := r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r))
		if isWord && atWordStart {
			r = unicode.ToUpper(r)
		}
		atWordStart = !isWord
		b.WriteRune(r)
	}
	return b.String()
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
