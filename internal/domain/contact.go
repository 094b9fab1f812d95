package domain

// ContactMessage is an inbound message from the public contact form. Read
// state is flipped server-side through the mark-read endpoint.
type ContactMessage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
	Date    string `json:"date,omitempty"`
}
