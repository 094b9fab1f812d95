package domain

// QuoteStatus is the lifecycle of a submitted quote request. It is only
// ever changed through an explicit status update, never by the cart.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusProcessed QuoteStatus = "processed"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

type QuoteItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type Customer struct {
	Company string `json:"company"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type QuoteRequest struct {
	ID       string      `json:"id"`
	Date     string      `json:"date"`
	Customer Customer    `json:"customer"`
	Items    []QuoteItem `json:"items"`
	Status   QuoteStatus `json:"status"`
	Notes    string      `json:"notes,omitempty"`
}
