package email

// Message письмо для отправки через провайдера
type Message struct {
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment вложение, Content закодирован в base64
type Attachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type sendResponse struct {
	ID string `json:"id"`
}
