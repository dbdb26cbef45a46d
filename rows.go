package invoice2pdf

import (
	"fmt"
	"html"
)

// Labels for the derived amount rows. Templates aimed at Russian invoices
// reference {tax_row} and {total_row} instead of formatting these inline.
const (
	taxRowLabel   = "НДС"
	totalRowLabel = "Итого"
	currencyLabel = "руб."
)

// buildTemplateData copies the record and adds the derived tax_row and
// total_row fields. A record without a tax (resp. total) field yields an
// empty row, so templates can reference the placeholders unconditionally.
func buildTemplateData(rec Record) Record {
	data := make(Record, len(rec)+2)
	for key, value := range rec {
		data[key] = value
	}
	data["tax_row"] = buildAmountRow(taxRowLabel, rec["tax"], false)
	data["total_row"] = buildAmountRow(totalRowLabel, rec["total"], true)
	return data
}

// buildAmountRow renders one amount row as an HTML fragment.
// Returns "" when the amount is empty.
func buildAmountRow(label, amount string, total bool) string {
	if amount == "" {
		return ""
	}
	class := "amount-row"
	if total {
		class = "amount-row total"
	}
	return fmt.Sprintf(`<div class="%s"><span>%s:</span><span>%s %s</span></div>`,
		class, label, html.EscapeString(amount), currencyLabel)
}
