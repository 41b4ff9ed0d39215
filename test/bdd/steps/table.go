package steps

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
)

// getCellValue returns the cell under columnName, or "" when the column is absent
func getCellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}
	for i, cell := range table.Rows[0].Cells {
		if cell.Value == columnName && i < len(row.Cells) {
			return row.Cells[i].Value
		}
	}
	return ""
}

// singleColumn returns the values below the header of a one-column table
func singleColumn(table *godog.Table) []string {
	values := make([]string, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		values = append(values, row.Cells[0].Value)
	}
	return values
}

// fieldTable reads a two-column "field | value" table into ordered pairs
func fieldTable(table *godog.Table) ([][2]string, error) {
	pairs := make([][2]string, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		if len(row.Cells) != 2 {
			return nil, fmt.Errorf("expected 2 cells in row %d, got %d", i, len(row.Cells))
		}
		pairs = append(pairs, [2]string{row.Cells[0].Value, row.Cells[1].Value})
	}
	return pairs, nil
}

func splitLeads(value string) []string {
	var leads []string
	for _, lead := range strings.Split(value, ",") {
		if lead = strings.TrimSpace(lead); lead != "" {
			leads = append(leads, lead)
		}
	}
	return leads
}
