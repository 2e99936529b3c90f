// Package donation provides the domain model for monetary and goods donations.
package donation

import (
	"fmt"
	"time"
)

// DonorType represents who made the donation
type DonorType string

const (
	DonorTypeIndividual   DonorType = "individual"
	DonorTypeOrganization DonorType = "organization"
)

// IsValid checks if the donor type is valid
func (t DonorType) IsValid() bool {
	return t == DonorTypeIndividual || t == DonorTypeOrganization
}

// String returns the string representation of the type
func (t DonorType) String() string {
	return string(t)
}

// DonationType represents what was donated
type DonationType string

const (
	DonationTypeMoney DonationType = "money"
	DonationTypeGoods DonationType = "goods"
)

// IsValid checks if the donation type is valid
func (t DonationType) IsValid() bool {
	return t == DonationTypeMoney || t == DonationTypeGoods
}

// String returns the string representation of the type
func (t DonationType) String() string {
	return string(t)
}

// Status represents the processing state of a donation
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// Item is a single line of a goods donation.
type Item struct {
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	Unit           string  `json:"unit"`
	EstimatedValue float64 `json:"estimatedValue"`
}

// Donation represents the donation aggregate root.
type Donation struct {
	id            uint
	donorName     string
	donorType     DonorType
	amount        float64
	donationDate  time.Time
	donationType  DonationType
	purpose       *string
	status        Status
	paymentMethod *string
	transactionID *string
	remarks       *string
	receiptIssued bool
	items         []Item
	totalValue    *float64
	createdAt     time.Time
	updatedAt     time.Time
	version       int
}

// NewDonation creates a new pending donation
func NewDonation(donorName string, donorType DonorType, amount float64, donationDate time.Time, donationType DonationType) (*Donation, error) {
	if donorName == "" {
		return nil, fmt.Errorf("donor name is required")
	}
	if !donorType.IsValid() {
		return nil, fmt.Errorf("invalid donor type: %s", donorType)
	}
	if !donationType.IsValid() {
		return nil, fmt.Errorf("invalid donation type: %s", donationType)
	}
	if amount < 0 {
		return nil, fmt.Errorf("donation amount cannot be negative")
	}
	if donationDate.IsZero() {
		donationDate = time.Now()
	}

	now := time.Now()
	return &Donation{
		donorName:    donorName,
		donorType:    donorType,
		amount:       amount,
		donationDate: donationDate,
		donationType: donationType,
		status:       StatusPending,
		items:        []Item{},
		createdAt:    now,
		updatedAt:    now,
		version:      1,
	}, nil
}

// ReconstructDonation reconstructs a donation from persistence
func ReconstructDonation(
	id uint,
	donorName string,
	donorType DonorType,
	amount float64,
	donationDate time.Time,
	donationType DonationType,
	purpose *string,
	status Status,
	paymentMethod *string,
	transactionID *string,
	remarks *string,
	receiptIssued bool,
	items []Item,
	totalValue *float64,
	createdAt, updatedAt time.Time,
	version int,
) (*Donation, error) {
	if id == 0 {
		return nil, fmt.Errorf("donation ID cannot be zero")
	}
	if !donorType.IsValid() {
		return nil, fmt.Errorf("invalid donor type: %s", donorType)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid donation status: %s", status)
	}

	if items == nil {
		items = []Item{}
	}

	return &Donation{
		id:            id,
		donorName:     donorName,
		donorType:     donorType,
		amount:        amount,
		donationDate:  donationDate,
		donationType:  donationType,
		purpose:       purpose,
		status:        status,
		paymentMethod: paymentMethod,
		transactionID: transactionID,
		remarks:       remarks,
		receiptIssued: receiptIssued,
		items:         items,
		totalValue:    totalValue,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
	}, nil
}

func (d *Donation) ID() uint                { return d.id }
func (d *Donation) DonorName() string       { return d.donorName }
func (d *Donation) DonorType() DonorType    { return d.donorType }
func (d *Donation) Amount() float64         { return d.amount }
func (d *Donation) DonationDate() time.Time { return d.donationDate }
func (d *Donation) Type() DonationType      { return d.donationType }
func (d *Donation) Purpose() *string        { return d.purpose }
func (d *Donation) Status() Status          { return d.status }
func (d *Donation) PaymentMethod() *string  { return d.paymentMethod }
func (d *Donation) TransactionID() *string  { return d.transactionID }
func (d *Donation) Remarks() *string        { return d.remarks }
func (d *Donation) ReceiptIssued() bool     { return d.receiptIssued }
func (d *Donation) Items() []Item           { return d.items }
func (d *Donation) TotalValue() *float64    { return d.totalValue }
func (d *Donation) CreatedAt() time.Time    { return d.createdAt }
func (d *Donation) UpdatedAt() time.Time    { return d.updatedAt }

// Version returns the aggregate version for optimistic locking
func (d *Donation) Version() int { return d.version }

// SetID sets the donation ID (only for persistence layer use)
func (d *Donation) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("donation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("donation ID cannot be zero")
	}
	d.id = id
	return nil
}

// UpdateAttrs carries the optional fields for a partial update.
// Nil pointers leave the current value untouched.
type UpdateAttrs struct {
	DonorName     *string
	DonorType     *DonorType
	Amount        *float64
	DonationDate  *time.Time
	DonationType  *DonationType
	Purpose       *string
	Status        *Status
	PaymentMethod *string
	TransactionID *string
	Remarks       *string
	Items         []Item
	TotalValue    *float64
}

// Update applies a partial update to the donation
func (d *Donation) Update(attrs UpdateAttrs) error {
	if attrs.DonorName != nil {
		if *attrs.DonorName == "" {
			return fmt.Errorf("donor name cannot be empty")
		}
		d.donorName = *attrs.DonorName
	}
	if attrs.DonorType != nil {
		if !attrs.DonorType.IsValid() {
			return fmt.Errorf("invalid donor type: %s", *attrs.DonorType)
		}
		d.donorType = *attrs.DonorType
	}
	if attrs.Amount != nil {
		if *attrs.Amount < 0 {
			return fmt.Errorf("donation amount cannot be negative")
		}
		d.amount = *attrs.Amount
	}
	if attrs.DonationDate != nil {
		d.donationDate = *attrs.DonationDate
	}
	if attrs.DonationType != nil {
		if !attrs.DonationType.IsValid() {
			return fmt.Errorf("invalid donation type: %s", *attrs.DonationType)
		}
		d.donationType = *attrs.DonationType
	}
	if attrs.Purpose != nil {
		d.purpose = attrs.Purpose
	}
	if attrs.Status != nil {
		if !attrs.Status.IsValid() {
			return fmt.Errorf("invalid donation status: %s", *attrs.Status)
		}
		d.status = *attrs.Status
	}
	if attrs.PaymentMethod != nil {
		d.paymentMethod = attrs.PaymentMethod
	}
	if attrs.TransactionID != nil {
		d.transactionID = attrs.TransactionID
	}
	if attrs.Remarks != nil {
		d.remarks = attrs.Remarks
	}
	if attrs.Items != nil {
		d.items = attrs.Items
	}
	if attrs.TotalValue != nil {
		d.totalValue = attrs.TotalValue
	}

	d.updatedAt = time.Now()
	d.version++
	return nil
}

// Confirm marks the donation as confirmed. Transitions are deliberately
// unguarded, confirming an already confirmed or cancelled donation is allowed.
func (d *Donation) Confirm() {
	d.status = StatusConfirmed
	d.updatedAt = time.Now()
	d.version++
}

// Cancel marks the donation as cancelled, unguarded like Confirm
func (d *Donation) Cancel() {
	d.status = StatusCancelled
	d.updatedAt = time.Now()
	d.version++
}

// IssueReceipt marks the donation receipt as issued
func (d *Donation) IssueReceipt() {
	d.receiptIssued = true
	d.updatedAt = time.Now()
	d.version++
}

// IncrementVersion increments the version for optimistic locking
func (d *Donation) IncrementVersion() {
	d.version++
}
