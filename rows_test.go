package invoice2pdf

import (
	"strings"
	"testing"
)

func TestBuildTemplateData(t *testing.T) {
	t.Run("record with tax and total gains both rows", func(t *testing.T) {
		data := buildTemplateData(Record{"tax": "200", "total": "1200"})

		if !strings.Contains(data["tax_row"], "НДС") || !strings.Contains(data["tax_row"], "200 руб.") {
			t.Errorf("tax_row = %q", data["tax_row"])
		}
		if !strings.Contains(data["total_row"], "Итого") || !strings.Contains(data["total_row"], "1200 руб.") {
			t.Errorf("total_row = %q", data["total_row"])
		}
		if !strings.Contains(data["total_row"], `class="amount-row total"`) {
			t.Errorf("total_row missing total class: %q", data["total_row"])
		}
	})

	t.Run("record without amounts gains empty rows", func(t *testing.T) {
		data := buildTemplateData(Record{"invoice_id": "1"})
		if data["tax_row"] != "" || data["total_row"] != "" {
			t.Errorf("rows = %q / %q, want empty", data["tax_row"], data["total_row"])
		}
	})

	t.Run("original fields are preserved", func(t *testing.T) {
		data := buildTemplateData(Record{"name": "Bob", "tax": "5"})
		if data["name"] != "Bob" || data["tax"] != "5" {
			t.Errorf("fields not copied: %v", data)
		}
	})

	t.Run("amount is HTML-escaped", func(t *testing.T) {
		data := buildTemplateData(Record{"tax": "<b>1</b>"})
		if strings.Contains(data["tax_row"], "<b>") {
			t.Errorf("tax_row not escaped: %q", data["tax_row"])
		}
	})
}
