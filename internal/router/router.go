package router

import (
	"strings"
	"sync"
)

// Page identifies one navigable view. The set is closed; Navigate with an
// identifier outside it degrades to a generic title and path instead of
// failing.
type Page string

const (
	PageHome      Page = "home"
	PageCatalog   Page = "catalog"
	PageAbout     Page = "about"
	PageFormation Page = "formation"
	PageContact   Page = "contact"
	PageSupport   Page = "support"
	PageExpertise Page = "expertise"
	PageQuote     Page = "quote"
	PageSolar     Page = "solar"
	PageProduct   Page = "product"
	PageLogin     Page = "login"
	PageAdmin     Page = "admin"
)

const defaultTitle = "BOS-CI"

type Meta struct {
	Title string
	Path  string
}

var pageMeta = map[Page]Meta{
	PageHome:      {Title: "BOS-CI | Distributeur Telecom & Fibre Optique - Abidjan", Path: "/"},
	PageCatalog:   {Title: "Catalogue Produits | BOS-CI", Path: "/catalogue"},
	PageAbout:     {Title: "A Propos | BOS-CI", Path: "/a-propos"},
	PageFormation: {Title: "Formation & Academy | BOS-CI", Path: "/formation"},
	PageContact:   {Title: "Contact | BOS-CI", Path: "/contact"},
	PageSupport:   {Title: "Support Technique | BOS-CI", Path: "/support"},
	PageExpertise: {Title: "Expertise & Laboratoire | BOS-CI", Path: "/expertise"},
	PageQuote:     {Title: "Demande de Devis | BOS-CI", Path: "/devis"},
	PageSolar:     {Title: "Configurateur Solaire | BOS-CI", Path: "/solaire"},
	PageProduct:   {Title: "Fiche Produit | BOS-CI", Path: "/produit"},
	PageLogin:     {Title: "Connexion | BOS-CI", Path: "/login"},
	PageAdmin:     {Title: "Administration | BOS-CI", Path: "/admin"},
}

var pathToPage = func() map[string]Page {
	inverse := make(map[string]Page, len(pageMeta))
	for page, meta := range pageMeta {
		inverse[meta.Path] = page
	}
	return inverse
}()

// Pages lists every registered page; the inverse path map is total over it.
func Pages() []Page {
	pages := make([]Page, 0, len(pageMeta))
	for page := range pageMeta {
		pages = append(pages, page)
	}
	return pages
}

// MetaFor never fails: unknown pages get the generic title and a path
// derived from the identifier.
func MetaFor(page Page) Meta {
	if meta, ok := pageMeta[page]; ok {
		return meta
	}
	return Meta{Title: defaultTitle, Path: "/" + string(page)}
}

// PageForPath inverts the canonical path table. Anything under /admin is
// the admin page, whatever the sub-path; unknown paths land on home.
func PageForPath(path string) Page {
	if page, ok := pathToPage[path]; ok {
		return page
	}
	if strings.HasPrefix(path, "/admin") {
		return PageAdmin
	}
	return PageHome
}

// Entry is one history record: the state carried by the host environment
// so back/forward can restore page and params without re-resolution.
type Entry struct {
	Page   Page
	Params map[string]string
	Path   string
	Title  string
}

// History is the port to the host's navigation stack (browser history in
// the web client).
type History interface {
	Push(entry Entry)
	Replace(entry Entry)
}

// Router maps abstract pages onto history entries and back. Before the
// first ResolveInitial or Navigate it sits on home.
type Router struct {
	history     History
	scrollToTop func()

	mu     sync.Mutex
	page   Page
	params map[string]string
	title  string
}

// Option configures a Router.
type Option func(*Router)

// WithScrollToTop sets the hook fired after every Navigate.
func WithScrollToTop(fn func()) Option {
	return func(r *Router) { r.scrollToTop = fn }
}

func New(history History, opts ...Option) *Router {
	r := &Router{
		history: history,
		page:    PageHome,
		title:   pageMeta[PageHome].Title,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Navigate moves to page, records a new history entry and fires the
// scroll hook. Unknown pages degrade via MetaFor.
func (r *Router) Navigate(page Page, params map[string]string) {
	meta := MetaFor(page)

	r.mu.Lock()
	r.page = page
	r.params = params
	r.title = meta.Title
	r.mu.Unlock()

	r.history.Push(Entry{Page: page, Params: params, Path: meta.Path, Title: meta.Title})
	if r.scrollToTop != nil {
		r.scrollToTop()
	}
}

// HandlePop restores state from a back/forward entry. Entries without
// state (the pristine first load) fall back to home.
func (r *Router) HandlePop(entry *Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry == nil || entry.Page == "" {
		r.page = PageHome
		r.params = nil
		r.title = pageMeta[PageHome].Title
		return
	}
	meta := MetaFor(entry.Page)
	r.page = entry.Page
	r.params = entry.Params
	r.title = meta.Title
}

// ResolveInitial recovers the page from the load-time path and replaces
// (not pushes) the initial history entry. Admin sub-paths are preserved
// as-is so the back-office can route below /admin on its own.
func (r *Router) ResolveInitial(path string) Page {
	page := PageForPath(path)
	meta := MetaFor(page)

	entryPath := meta.Path
	if page == PageAdmin {
		entryPath = path
	}

	r.mu.Lock()
	r.page = page
	r.params = nil
	r.title = meta.Title
	r.mu.Unlock()

	r.history.Replace(Entry{Page: page, Path: entryPath, Title: meta.Title})
	return page
}

func (r *Router) Current() (Page, map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.page, r.params
}

func (r *Router) Title() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.title
}
