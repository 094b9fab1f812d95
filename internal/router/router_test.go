package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathRoundTrip_AllPages(t *testing.T) {
	for _, page := range Pages() {
		meta := MetaFor(page)
		assert.Equal(t, page, PageForPath(meta.Path), "path %q must resolve back to %q", meta.Path, page)
	}
}

func TestPageForPath_AdminPrefix(t *testing.T) {
	assert.Equal(t, PageAdmin, PageForPath("/admin"))
	assert.Equal(t, PageAdmin, PageForPath("/admin/produits"))
	assert.Equal(t, PageAdmin, PageForPath("/admin/devis/QT-1"))
}

func TestPageForPath_UnknownPathFallsBackToHome(t *testing.T) {
	assert.Equal(t, PageHome, PageForPath("/nulle-part"))
}

func TestMetaFor_UnknownPageDegrades(t *testing.T) {
	meta := MetaFor(Page("mystery"))
	assert.Equal(t, "BOS-CI", meta.Title)
	assert.Equal(t, "/mystery", meta.Path)
}

func TestNavigate_PushesEntryAndSetsTitle(t *testing.T) {
	history := NewMemoryHistory()
	scrolled := 0
	sut := New(history, WithScrollToTop(func() { scrolled++ }))

	sut.Navigate(PageCatalog, nil)

	page, params := sut.Current()
	assert.Equal(t, PageCatalog, page)
	assert.Nil(t, params)
	assert.Equal(t, "Catalogue Produits | BOS-CI", sut.Title())
	assert.Equal(t, 1, scrolled)

	entry, ok := history.Current()
	require.True(t, ok)
	assert.Equal(t, PageCatalog, entry.Page)
	assert.Equal(t, "/catalogue", entry.Path)
}

func TestNavigate_CarriesParams(t *testing.T) {
	history := NewMemoryHistory()
	sut := New(history)

	sut.Navigate(PageProduct, map[string]string{"productId": "p42"})

	page, params := sut.Current()
	assert.Equal(t, PageProduct, page)
	assert.Equal(t, "p42", params["productId"])

	entry, ok := history.Current()
	require.True(t, ok)
	assert.Equal(t, "p42", entry.Params["productId"])
}

func TestNavigate_UnknownPageDoesNotPanic(t *testing.T) {
	history := NewMemoryHistory()
	sut := New(history)

	sut.Navigate(Page("mystery"), nil)

	page, _ := sut.Current()
	assert.Equal(t, Page("mystery"), page)
	assert.Equal(t, "BOS-CI", sut.Title())

	entry, ok := history.Current()
	require.True(t, ok)
	assert.Equal(t, "/mystery", entry.Path)
}

func TestHandlePop_RestoresPageAndParams(t *testing.T) {
	history := NewMemoryHistory()
	sut := New(history)

	sut.Navigate(PageCatalog, nil)
	sut.Navigate(PageProduct, map[string]string{"productId": "p1"})

	entry, ok := history.Back()
	require.True(t, ok)
	sut.HandlePop(entry)

	page, params := sut.Current()
	assert.Equal(t, PageCatalog, page)
	assert.Nil(t, params)
	assert.Equal(t, "Catalogue Produits | BOS-CI", sut.Title())
}

func TestHandlePop_StatelessEntryFallsBackToHome(t *testing.T) {
	history := NewMemoryHistory()
	sut := New(history)
	sut.Navigate(PageQuote, nil)

	sut.HandlePop(nil)

	page, params := sut.Current()
	assert.Equal(t, PageHome, page)
	assert.Nil(t, params)
}

func TestResolveInitial_CanonicalPath(t *testing.T) {
	history := NewMemoryHistory()
	sut := New(history)

	page := sut.ResolveInitial("/devis")
	assert.Equal(t, PageQuote, page)
	assert.Equal(t, "Demande de Devis | BOS-CI", sut.Title())

	entry, ok := history.Current()
	require.True(t, ok)
	assert.Equal(t, "/devis", entry.Path)
	assert.Equal(t, 1, history.Len(), "initial resolution replaces, never pushes")
}

func TestResolveInitial_AdminSubPathPreserved(t *testing.T) {
	history := NewMemoryHistory()
	sut := New(history)

	page := sut.ResolveInitial("/admin/produits")
	assert.Equal(t, PageAdmin, page)

	entry, ok := history.Current()
	require.True(t, ok)
	assert.Equal(t, "/admin/produits", entry.Path, "admin sub-path must survive resolution")
}

func TestResolveInitial_UnknownPathLandsOnHome(t *testing.T) {
	history := NewMemoryHistory()
	sut := New(history)

	page := sut.ResolveInitial("/quelque-chose")
	assert.Equal(t, PageHome, page)

	entry, ok := history.Current()
	require.True(t, ok)
	assert.Equal(t, "/", entry.Path)
}

func TestMemoryHistory_BackForward(t *testing.T) {
	history := NewMemoryHistory()
	sut := New(history)

	sut.ResolveInitial("/")
	sut.Navigate(PageCatalog, nil)
	sut.Navigate(PageQuote, nil)

	entry, ok := history.Back()
	require.True(t, ok)
	assert.Equal(t, PageCatalog, entry.Page)

	entry, ok = history.Back()
	require.True(t, ok)
	assert.Equal(t, PageHome, entry.Page)

	_, ok = history.Back()
	assert.False(t, ok)

	entry, ok = history.Forward()
	require.True(t, ok)
	assert.Equal(t, PageCatalog, entry.Page)
}

func TestMemoryHistory_PushDropsForwardEntries(t *testing.T) {
	history := NewMemoryHistory()
	sut := New(history)

	sut.ResolveInitial("/")
	sut.Navigate(PageCatalog, nil)
	sut.Navigate(PageQuote, nil)

	entry, ok := history.Back()
	require.True(t, ok)
	sut.HandlePop(entry)

	sut.Navigate(PageContact, nil)

	_, ok = history.Forward()
	assert.False(t, ok, "a push from mid-stack discards the forward branch")
	assert.Equal(t, 3, history.Len())
}
