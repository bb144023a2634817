package sitedoc

// LinkSource names the page region a link was found in.
type LinkSource string

// Link sources, from most to least structural.
const (
	SourceSidebar LinkSource = "sidebar"
	SourceNav     LinkSource = "nav"
	SourceContent LinkSource = "content"
	SourceAnchor  LinkSource = "anchor"
)

// Link is an in-site anchor found on a page. Text is the anchor text with
// whitespace collapsed and is used as a title when the target has none.
type Link struct {
	URL    string
	Text   string
	Source LinkSource
}

// Framework identifies the generator that built a documentation site.
type Framework string

// Frameworks with dedicated link selectors.
const (
	FrameworkUnknown   Framework = ""
	FrameworkVuePress  Framework = "vuepress"
	FrameworkVitePress Framework = "vitepress"
)

// LinkSelector pulls navigable links out of a page.
type LinkSelector interface {
	// ExtractLinks returns same-host links in selector priority order,
	// resolved against baseURL and without duplicates.
	ExtractLinks(html string, baseURL string) ([]Link, error)

	// Name identifies the selector in logs.
	Name() string
}

// FrameworkDetector guesses the site generator from a page.
type FrameworkDetector interface {
	// Detect returns FrameworkUnknown when no marker matches.
	Detect(html string) Framework
}

// LinkSelectorRegistry picks a selector per page.
type LinkSelectorRegistry interface {
	// Get returns the selector registered for framework, or nil.
	Get(framework Framework) LinkSelector

	// GetForHTML detects the framework of html and returns its selector,
	// or the fallback selector when none is registered.
	GetForHTML(html string) LinkSelector

	// Register sets the selector for framework, replacing any previous one.
	Register(framework Framework, selector LinkSelector)

	// List returns the registered frameworks in name order.
	List() []Framework
}
