package dto

type CheckoutRequest struct {
	Reference string `json:"reference" binding:"omitempty,max=100"`
}

type ScanRequest struct {
	TicketID string `json:"ticket_id" binding:"required,uuid"`
	Token    string `json:"token"     binding:"required"`
}
