package service

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/domain"
)

type mockQuoteRepository struct {
	quotes     []domain.QuoteRequest
	saved      *domain.QuoteRequest // captures the quote passed to Save
	saveCalls  int
	statusID   string
	statusSet  domain.QuoteStatus
	err        error
}

func (m *mockQuoteRepository) GetAll(context.Context) ([]domain.QuoteRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.quotes, nil
}

func (m *mockQuoteRepository) GetByID(_ context.Context, id string) (*domain.QuoteRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.quotes {
		if m.quotes[i].ID == id {
			return &m.quotes[i], nil
		}
	}
	return nil, nil
}

func (m *mockQuoteRepository) Save(_ context.Context, quote domain.QuoteRequest) (*domain.QuoteRequest, error) {
	m.saveCalls++
	if m.err != nil {
		return nil, m.err
	}
	m.saved = &quote
	return &quote, nil
}

func (m *mockQuoteRepository) UpdateStatus(_ context.Context, id string, status domain.QuoteStatus) error {
	if m.err != nil {
		return m.err
	}
	m.statusID = id
	m.statusSet = status
	return nil
}

func (m *mockQuoteRepository) Delete(context.Context, string) error {
	return m.err
}

func validItems() []domain.QuoteItem {
	return []domain.QuoteItem{
		{Product: domain.Product{ID: "p1", Name: "Soudeuse fibre"}, Quantity: 2},
	}
}

func validCustomer() domain.Customer {
	return domain.Customer{Company: "ACME", Name: "Aka Kouassi", Email: "aka@acme.ci", Phone: "+225 07 00 00 00"}
}

func TestSubmit_EmptyCartFailsWithoutNetworkCall(t *testing.T) {
	mockRepo := &mockQuoteRepository{}
	sut := NewQuoteService(mockRepo, zap.NewNop())

	_, err := sut.Submit(context.Background(), nil, validCustomer(), "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Zero(t, mockRepo.saveCalls, "validation failures must not reach the repository")
}

func TestSubmit_BlankNameFails(t *testing.T) {
	mockRepo := &mockQuoteRepository{}
	sut := NewQuoteService(mockRepo, zap.NewNop())

	customer := validCustomer()
	customer.Name = "   "
	_, err := sut.Submit(context.Background(), validItems(), customer, "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Zero(t, mockRepo.saveCalls)
}

func TestSubmit_BlankEmailFails(t *testing.T) {
	mockRepo := &mockQuoteRepository{}
	sut := NewQuoteService(mockRepo, zap.NewNop())

	customer := validCustomer()
	customer.Email = ""
	_, err := sut.Submit(context.Background(), validItems(), customer, "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Zero(t, mockRepo.saveCalls)
}

func TestSubmit_BuildsPendingQuoteWithStampedIDAndDate(t *testing.T) {
	mockRepo := &mockQuoteRepository{}
	sut := NewQuoteService(mockRepo, zap.NewNop())
	sut.now = func() time.Time {
		return time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	}

	saved, err := sut.Submit(context.Background(), validItems(), validCustomer(), "livraison urgente")
	require.NoError(t, err)
	require.NotNil(t, saved)

	wantPrefix := fmt.Sprintf("QT-%d-", sut.now().UnixMilli())
	assert.Regexp(t, regexp.MustCompile(`^`+wantPrefix+`[0-9a-f]{4}$`), saved.ID)
	assert.Equal(t, "14/03/2026", saved.Date)
	assert.Equal(t, domain.QuoteStatusPending, saved.Status)
	assert.Equal(t, "livraison urgente", saved.Notes)
	require.Len(t, saved.Items, 1)
	assert.Equal(t, "p1", saved.Items[0].Product.ID)
}

func TestSubmit_IDMatchesQuoteFormat(t *testing.T) {
	mockRepo := &mockQuoteRepository{}
	sut := NewQuoteService(mockRepo, zap.NewNop())

	saved, err := sut.Submit(context.Background(), validItems(), validCustomer(), "")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^QT-\d+-[0-9a-z]{4}$`), saved.ID)
}

func TestSubmit_CopiesItems(t *testing.T) {
	mockRepo := &mockQuoteRepository{}
	sut := NewQuoteService(mockRepo, zap.NewNop())

	items := validItems()
	saved, err := sut.Submit(context.Background(), items, validCustomer(), "")
	require.NoError(t, err)

	items[0].Quantity = 99
	assert.Equal(t, 2, saved.Items[0].Quantity, "submitted quote must hold its own copy of the cart")
}

func TestSubmit_RepoErrorPropagates(t *testing.T) {
	mockRepo := &mockQuoteRepository{err: fmt.Errorf("api down")}
	sut := NewQuoteService(mockRepo, zap.NewNop())

	_, err := sut.Submit(context.Background(), validItems(), validCustomer(), "")
	require.ErrorContains(t, err, "api down")
	assert.False(t, IsValidation(err))
}

func TestUpdateStatus_BlankIDFails(t *testing.T) {
	mockRepo := &mockQuoteRepository{}
	sut := NewQuoteService(mockRepo, zap.NewNop())

	err := sut.UpdateStatus(context.Background(), "  ", domain.QuoteStatusProcessed)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, mockRepo.statusID)
}

func TestUpdateStatus_Delegates(t *testing.T) {
	mockRepo := &mockQuoteRepository{}
	sut := NewQuoteService(mockRepo, zap.NewNop())

	err := sut.UpdateStatus(context.Background(), "QT-1", domain.QuoteStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, "QT-1", mockRepo.statusID)
	assert.Equal(t, domain.QuoteStatusCancelled, mockRepo.statusSet)
}

func TestGetAll_DegradesToEmptyOnError(t *testing.T) {
	mockRepo := &mockQuoteRepository{err: fmt.Errorf("timeout")}
	sut := NewQuoteService(mockRepo, zap.NewNop())

	quotes := sut.GetAll(context.Background())
	assert.NotNil(t, quotes)
	assert.Empty(t, quotes)
}

func TestGetByID_DegradesToNilOnError(t *testing.T) {
	mockRepo := &mockQuoteRepository{err: fmt.Errorf("timeout")}
	sut := NewQuoteService(mockRepo, zap.NewNop())

	quote, err := sut.GetByID(context.Background(), "QT-1")
	require.NoError(t, err)
	assert.Nil(t, quote)
}
