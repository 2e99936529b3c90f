package donation

import (
	"time"

	"github.com/shelterhq/pawhaven/internal/domain/donation"
)

// ItemPayload represents a donated goods line item
type ItemPayload struct {
	Name           string  `json:"name" binding:"required,min=1,max=100"`
	Quantity       int     `json:"quantity" binding:"required,gt=0"`
	Unit           string  `json:"unit" binding:"omitempty,max=20"`
	EstimatedValue float64 `json:"estimatedValue" binding:"gte=0"`
}

// CreateDonationRequest represents a new donation
type CreateDonationRequest struct {
	DonorName     string        `json:"donorName" binding:"required,min=1,max=100"`
	DonorType     string        `json:"donorType" binding:"required,oneof=individual organization"`
	Amount        float64       `json:"amount" binding:"gte=0"`
	DonationDate  *time.Time    `json:"donationDate,omitempty"`
	DonationType  string        `json:"donationType" binding:"required,oneof=money goods"`
	Purpose       *string       `json:"purpose,omitempty" binding:"omitempty,max=200"`
	PaymentMethod *string       `json:"paymentMethod,omitempty" binding:"omitempty,max=50"`
	TransactionID *string       `json:"transactionId,omitempty" binding:"omitempty,max=100"`
	Remarks       *string       `json:"remarks,omitempty" binding:"omitempty,max=500"`
	Items         []ItemPayload `json:"items,omitempty" binding:"omitempty,dive"`
	TotalValue    *float64      `json:"totalValue,omitempty" binding:"omitempty,gte=0"`
}

// UpdateDonationRequest represents a partial update to a donation
type UpdateDonationRequest struct {
	DonorName     *string       `json:"donorName,omitempty" binding:"omitempty,min=1,max=100"`
	DonorType     *string       `json:"donorType,omitempty" binding:"omitempty,oneof=individual organization"`
	Amount        *float64      `json:"amount,omitempty" binding:"omitempty,gte=0"`
	DonationDate  *time.Time    `json:"donationDate,omitempty"`
	DonationType  *string       `json:"donationType,omitempty" binding:"omitempty,oneof=money goods"`
	Purpose       *string       `json:"purpose,omitempty" binding:"omitempty,max=200"`
	Status        *string       `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed cancelled"`
	PaymentMethod *string       `json:"paymentMethod,omitempty" binding:"omitempty,max=50"`
	TransactionID *string       `json:"transactionId,omitempty" binding:"omitempty,max=100"`
	Remarks       *string       `json:"remarks,omitempty" binding:"omitempty,max=500"`
	Items         []ItemPayload `json:"items,omitempty" binding:"omitempty,dive"`
	TotalValue    *float64      `json:"totalValue,omitempty" binding:"omitempty,gte=0"`
}

// ListDonationsQuery carries the list filters parsed from the query string
type ListDonationsQuery struct {
	Status       string
	DonorName    string
	DonationType string
	DonorType    string
	Page         int
	Limit        int
}

// DonationResponse represents a donation in API responses
type DonationResponse struct {
	ID            uint          `json:"id"`
	DonorName     string        `json:"donorName"`
	DonorType     string        `json:"donorType"`
	Amount        float64       `json:"amount"`
	DonationDate  time.Time     `json:"donationDate"`
	DonationType  string        `json:"donationType"`
	Purpose       *string       `json:"purpose,omitempty"`
	Status        string        `json:"status"`
	PaymentMethod *string       `json:"paymentMethod,omitempty"`
	TransactionID *string       `json:"transactionId,omitempty"`
	Remarks       *string       `json:"remarks,omitempty"`
	ReceiptIssued bool          `json:"receiptIssued"`
	Items         []ItemPayload `json:"items"`
	TotalValue    *float64      `json:"totalValue,omitempty"`
	CreateTime    time.Time     `json:"createTime"`
	UpdateTime    time.Time     `json:"updateTime"`
}

// DonationStatsResponse represents the donation statistics
type DonationStatsResponse struct {
	Total       int64   `json:"total"`
	Pending     int64   `json:"pending"`
	Confirmed   int64   `json:"confirmed"`
	TotalAmount float64 `json:"totalAmount"`
}

func toItems(payloads []ItemPayload) []donation.Item {
	if payloads == nil {
		return nil
	}
	items := make([]donation.Item, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, donation.Item{
			Name:           p.Name,
			Quantity:       p.Quantity,
			Unit:           p.Unit,
			EstimatedValue: p.EstimatedValue,
		})
	}
	return items
}

func toItemPayloads(items []donation.Item) []ItemPayload {
	out := make([]ItemPayload, 0, len(items))
	for _, it := range items {
		out = append(out, ItemPayload{
			Name:           it.Name,
			Quantity:       it.Quantity,
			Unit:           it.Unit,
			EstimatedValue: it.EstimatedValue,
		})
	}
	return out
}

func toDonationResponse(d *donation.Donation) *DonationResponse {
	return &DonationResponse{
		ID:            d.ID(),
		DonorName:     d.DonorName(),
		DonorType:     d.DonorType().String(),
		Amount:        d.Amount(),
		DonationDate:  d.DonationDate(),
		DonationType:  d.Type().String(),
		Purpose:       d.Purpose(),
		Status:        d.Status().String(),
		PaymentMethod: d.PaymentMethod(),
		TransactionID: d.TransactionID(),
		Remarks:       d.Remarks(),
		ReceiptIssued: d.ReceiptIssued(),
		Items:         toItemPayloads(d.Items()),
		TotalValue:    d.TotalValue(),
		CreateTime:    d.CreatedAt(),
		UpdateTime:    d.UpdatedAt(),
	}
}

func toDonationResponses(donations []*donation.Donation) []*DonationResponse {
	out := make([]*DonationResponse, 0, len(donations))
	for _, d := range donations {
		out = append(out, toDonationResponse(d))
	}
	return out
}
