package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/payoff/internal/input"
)

// ScenarioHeader is the CSV header of a batch scenario file.
const ScenarioHeader = "name,home_price,down_payment_percent,annual_rate_percent,term_years,extra_monthly_payment"

const (
	scenarioNumFields  = 6
	scenarioColName    = 0
	scenarioColPrice   = 1
	scenarioColPercent = 2
	scenarioColRate    = 3
	scenarioColTerm    = 4
	scenarioColExtra   = 5
)

// Scenario is one row of a batch file.
type Scenario struct {
	Name   string
	Fields input.Fields
}

// ReadScenarios reads a batch scenario file. The first row is the header.
// Numeric cells follow the permissive input rules; a row with the wrong
// number of fields is an error.
func ReadScenarios(r io.Reader) ([]Scenario, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = scenarioNumFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading scenario CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	scenarios := make([]Scenario, 0, len(records)-1)
	for i, rec := range records[1:] {
		name := strings.TrimSpace(rec[scenarioColName])
		if name == "" {
			name = fmt.Sprintf("row %d", i+2)
		}
		scenarios = append(scenarios, Scenario{
			Name: name,
			Fields: input.Fields{
				HomePrice:           rec[scenarioColPrice],
				DownPaymentPercent:  rec[scenarioColPercent],
				AnnualRatePercent:   rec[scenarioColRate],
				TermYears:           rec[scenarioColTerm],
				ExtraMonthlyPayment: rec[scenarioColExtra],
			},
		})
	}
	return scenarios, nil
}
