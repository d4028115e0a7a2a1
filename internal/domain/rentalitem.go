package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyItemName       = errors.New("rental item name cannot be empty")
	ErrEmptyItemType       = errors.New("rental item type cannot be empty")
	ErrEmptyItemModel      = errors.New("rental item model cannot be empty")
	ErrNegativeItemPrice   = errors.New("monthly price cannot be negative")
	ErrInvalidItemCurrency = errors.New("currency must be a 3-letter code")
)

// RentalItem is a catalog entry clients browse before filing a rental
// request. Availability is a listing flag, independent of equipment
// status on the gym floor.
type RentalItem struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Model        string    `json:"model"`
	MonthlyPrice float64   `json:"monthly_price"`
	Currency     string    `json:"currency"`
	ImageURL     string    `json:"image_url"`
	IsAvailable  bool      `json:"is_available"`
	IsDeleted    bool      `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

func NewRentalItem(name, itemType, model string, monthlyPrice float64, currency, imageURL string, available bool) (*RentalItem, error) {
	item := &RentalItem{
		IsAvailable: available,
		CreatedOn:   time.Now().UTC(),
	}
	if err := item.UpdateBasicInfo(name, itemType, model, imageURL); err != nil {
		return nil, err
	}
	if err := item.UpdateMonthlyPrice(monthlyPrice, currency); err != nil {
		return nil, err
	}
	return item, nil
}

func (i *RentalItem) UpdateBasicInfo(name, itemType, model, imageURL string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyItemName
	}
	itemType = strings.TrimSpace(itemType)
	if itemType == "" {
		return ErrEmptyItemType
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return ErrEmptyItemModel
	}
	i.Name = name
	i.Type = itemType
	i.Model = model
	i.ImageURL = strings.TrimSpace(imageURL)
	i.UpdatedOn = time.Now().UTC()
	return nil
}

// UpdateMonthlyPrice accepts an empty currency and defaults it to USD.
func (i *RentalItem) UpdateMonthlyPrice(amount float64, currency string) error {
	if amount < 0 {
		return ErrNegativeItemPrice
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}
	if len(currency) != 3 {
		return ErrInvalidItemCurrency
	}
	i.MonthlyPrice = amount
	i.Currency = currency
	i.UpdatedOn = time.Now().UTC()
	return nil
}

func (i *RentalItem) SetAvailability(available bool) {
	i.IsAvailable = available
	i.UpdatedOn = time.Now().UTC()
}
