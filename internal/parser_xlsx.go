package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads subscriptions from an Excel sheet. The first sheet must
// contain a header row with at least Name, Amount, Currency, StartDate and
// Recurring; LastChargeDate and CancelDate columns are optional. Header
// matching is case-insensitive and dates use YYYY-MM-DD.
func ParseXLSX(path string) ([]Subscription, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	// Find header row and column indices
	nameCol, amountCol, currencyCol, startCol := -1, -1, -1, -1
	recurringCol, lastChargeCol, cancelCol := -1, -1, -1
	dataStartRow := -1

	for i, row := range rows {
		for j, cell := range row {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case "name":
				nameCol = j
				dataStartRow = i + 1
			case "amount":
				amountCol = j
			case "currency":
				currencyCol = j
			case "startdate", "start date":
				startCol = j
			case "recurring":
				recurringCol = j
			case "lastchargedate", "last charge date":
				lastChargeCol = j
			case "canceldate", "cancel date":
				cancelCol = j
			}
		}
		if nameCol >= 0 && amountCol >= 0 && currencyCol >= 0 && startCol >= 0 && recurringCol >= 0 {
			break
		}
	}

	if nameCol < 0 || amountCol < 0 || currencyCol < 0 || startCol < 0 || recurringCol < 0 {
		return nil, fmt.Errorf("could not find required columns (Name, Amount, Currency, StartDate, Recurring)")
	}

	cellAt := func(row []string, col int) string {
		if col < 0 || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	var subscriptions []Subscription
	for i := dataStartRow; i < len(rows); i++ {
		row := rows[i]

		name := cellAt(row, nameCol)
		amountStr := cellAt(row, amountCol)

		// Skip empty rows
		if name == "" && amountStr == "" {
			continue
		}

		amountStr = strings.ReplaceAll(amountStr, ",", ".")
		amountStr = strings.ReplaceAll(amountStr, " ", "")
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+1, amountStr, err)
		}

		recurringStr := cellAt(row, recurringCol)
		recurring, err := strconv.ParseBool(strings.ToLower(recurringStr))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing recurring %q: %w", i+1, recurringStr, err)
		}

		sub, err := recordToSubscription(
			name,
			amount,
			cellAt(row, currencyCol),
			cellAt(row, startCol),
			recurring,
			cellAt(row, lastChargeCol),
			cellAt(row, cancelCol),
		)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		subscriptions = append(subscriptions, sub)
	}

	return subscriptions, nil
}

func init() {
	RegisterParser("xlsx", ParserFunc(ParseXLSX))
}
