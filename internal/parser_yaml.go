package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLFormat mirrors the simple JSON format in YAML
// Example:
//
//	subscriptions:
//	  - name: Netflix
//	    amount: 450
//	    currency: TWD
//	    start_date: 2025-02-15
//	    recurring: true
type YAMLFormat struct {
	Subscriptions []YAMLSubscription `yaml:"subscriptions"`
}

type YAMLSubscription struct {
	Name           string  `yaml:"name"`
	Amount         float64 `yaml:"amount"`
	Currency       string  `yaml:"currency"`
	StartDate      string  `yaml:"start_date"`
	Recurring      bool    `yaml:"recurring"`
	LastChargeDate string  `yaml:"last_charge_date,omitempty"`
	CancelDate     string  `yaml:"cancel_date,omitempty"`
}

// ParseYAML parses a YAML subscription file
func ParseYAML(path string) ([]Subscription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var yamlData YAMLFormat
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	var subscriptions []Subscription
	for _, rec := range yamlData.Subscriptions {
		sub, err := recordToSubscription(rec.Name, rec.Amount, rec.Currency, rec.StartDate, rec.Recurring, rec.LastChargeDate, rec.CancelDate)
		if err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, sub)
	}

	return subscriptions, nil
}

func init() {
	RegisterParser("yaml", ParserFunc(ParseYAML))
}
