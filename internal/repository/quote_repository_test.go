package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/api"
	"github.com/Emman225/bos/internal/domain"
	"github.com/Emman225/bos/internal/localstore"
)

func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.NewClient(server.URL, localstore.NewMemoryStore(), zap.NewNop())
}

func TestQuoteSave_SendsIDAndQuantityPerLine(t *testing.T) {
	var got quotePayload
	r := chi.NewRouter()
	r.Post("/quotes", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		w.Write([]byte(`{"data":{"id":"QT-1","status":"pending"}}`))
	})
	repo := NewAPIQuoteRepository(newTestClient(t, r))

	quote := domain.QuoteRequest{
		ID:       "QT-local",
		Customer: domain.Customer{Company: "ACME", Name: "Aka", Email: "aka@acme.ci"},
		Items: []domain.QuoteItem{
			{Product: domain.Product{ID: "p1", Name: "Soudeuse", Brand: "BOS"}, Quantity: 3},
			{Product: domain.Product{ID: "p2"}, Quantity: 1},
		},
		Notes: "urgent",
	}
	saved, err := repo.Save(context.Background(), quote)
	require.NoError(t, err)
	assert.Equal(t, "QT-1", saved.ID)

	require.Len(t, got.Items, 2)
	assert.Equal(t, "p1", got.Items[0].ProductID)
	assert.Equal(t, 3, got.Items[0].Quantity)
	assert.Equal(t, "Aka", got.Customer.Name)
	assert.Equal(t, "urgent", got.Notes)
}

func TestQuoteUpdateStatus_PatchesStatusSubResource(t *testing.T) {
	var gotID string
	var gotBody map[string]string
	r := chi.NewRouter()
	r.Patch("/quotes/{id}/status", func(w http.ResponseWriter, req *http.Request) {
		gotID = chi.URLParam(req, "id")
		require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
		w.Write([]byte(`{}`))
	})
	repo := NewAPIQuoteRepository(newTestClient(t, r))

	err := repo.UpdateStatus(context.Background(), "QT-7", domain.QuoteStatusProcessed)
	require.NoError(t, err)
	assert.Equal(t, "QT-7", gotID)
	assert.Equal(t, "processed", gotBody["status"])
}

func TestQuoteGetAll_UnwrapsEnvelope(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/quotes", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[{"id":"QT-1","status":"pending"},{"id":"QT-2","status":"cancelled"}]}`))
	})
	repo := NewAPIQuoteRepository(newTestClient(t, r))

	quotes, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, domain.QuoteStatusCancelled, quotes[1].Status)
}

func TestContactMarkRead_PatchesReadSubResource(t *testing.T) {
	var gotID string
	r := chi.NewRouter()
	r.Patch("/contact/{id}/read", func(w http.ResponseWriter, req *http.Request) {
		gotID = chi.URLParam(req, "id")
		w.Write([]byte(`{}`))
	})
	repo := NewAPIContactRepository(newTestClient(t, r))

	require.NoError(t, repo.MarkRead(context.Background(), "m3"))
	assert.Equal(t, "m3", gotID)
}

func TestAIRecommend_ParsesRecommendation(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/ai/recommend", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "reseau FTTH", body["userNeeds"])
		w.Write([]byte(`{"recommendation":"Kit FTTH complet"}`))
	})
	ai := NewAPIAIService(newTestClient(t, r))

	got, err := ai.Recommend(context.Background(), "reseau FTTH")
	require.NoError(t, err)
	assert.Equal(t, "Kit FTTH complet", got)
}
