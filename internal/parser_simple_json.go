package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// SimpleJSONFormat is a minimal JSON format for importing subscriptions
// Example:
//
//	{
//	  "subscriptions": [
//	    {"name": "Netflix", "amount": 450, "currency": "TWD", "start_date": "2025-02-15", "recurring": true},
//	    {"name": "Domain renewal", "amount": 12, "currency": "USD", "start_date": "2025-06-01", "recurring": false}
//	  ]
//	}
//
// This format is easy to produce from any export or by hand.
type SimpleJSONFormat struct {
	Subscriptions []SimpleJSONSubscription `json:"subscriptions"`
}

type SimpleJSONSubscription struct {
	Name           string  `json:"name"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`                   // "TWD" or "USD"
	StartDate      string  `json:"start_date"`                 // YYYY-MM-DD
	Recurring      bool    `json:"recurring"`                  // monthly when true
	LastChargeDate string  `json:"last_charge_date,omitempty"` // YYYY-MM-DD
	CancelDate     string  `json:"cancel_date,omitempty"`      // YYYY-MM-DD
}

// ParseSimpleJSON parses a JSON file in the simple JSON format
func ParseSimpleJSON(path string) ([]Subscription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var jsonData SimpleJSONFormat
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	var subscriptions []Subscription
	for _, rec := range jsonData.Subscriptions {
		sub, err := recordToSubscription(rec.Name, rec.Amount, rec.Currency, rec.StartDate, rec.Recurring, rec.LastChargeDate, rec.CancelDate)
		if err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, sub)
	}

	return subscriptions, nil
}

// recordToSubscription converts the shared flat record shape used by the
// json, yaml and xlsx parsers.
func recordToSubscription(name string, amount float64, currency, startDate string, recurring bool, lastChargeDate, cancelDate string) (Subscription, error) {
	curr, err := ParseCurrency(currency)
	if err != nil {
		return Subscription{}, fmt.Errorf("subscription %q: currency %q: %w", name, currency, err)
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return Subscription{}, fmt.Errorf("subscription %q: parsing start date %q: %w", name, startDate, err)
	}

	sub := Subscription{
		Name:        name,
		Amount:      amount,
		Currency:    curr,
		StartDate:   start,
		IsRecurring: recurring,
	}

	if lastChargeDate != "" {
		t, err := time.Parse("2006-01-02", lastChargeDate)
		if err != nil {
			return Subscription{}, fmt.Errorf("subscription %q: parsing last charge date %q: %w", name, lastChargeDate, err)
		}
		sub.LastChargeDate = &t
	}
	if cancelDate != "" {
		t, err := time.Parse("2006-01-02", cancelDate)
		if err != nil {
			return Subscription{}, fmt.Errorf("subscription %q: parsing cancel date %q: %w", name, cancelDate, err)
		}
		sub.CancelDate = &t
	}

	return sub, nil
}

func init() {
	RegisterParser("simple-json", ParserFunc(ParseSimpleJSON))
}
