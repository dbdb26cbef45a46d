package invoice2pdf

import (
	"fmt"
	"sort"
)

// DefaultInvoiceAliases is the ordered list of field names recognized as
// the invoice id. Earlier entries win when a record carries several.
var DefaultInvoiceAliases = []string{"invoice_id", "invoiceId", "invoice", "id", "ID"}

// Selector finds records by invoice id using an ordered alias list.
type Selector struct {
	aliases []string
}

// NewSelector creates a Selector. With no aliases the default list is used.
func NewSelector(aliases ...string) *Selector {
	if len(aliases) == 0 {
		aliases = DefaultInvoiceAliases
	}
	return &Selector{aliases: aliases}
}

// InvoiceID returns the invoice id of a record: the value of the first
// alias present with a non-empty value, or "" when none matches.
func (s *Selector) InvoiceID(rec Record) string {
	for _, alias := range s.aliases {
		if v := rec[alias]; v != "" {
			return v
		}
	}
	return ""
}

// IDs returns the sorted unique invoice ids found across records.
// Records without a recognizable id field are skipped.
func (s *Selector) IDs(records []Record) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, rec := range records {
		id := s.InvoiceID(rec)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Find returns the first record whose invoice id equals id, compared
// case-sensitively as strings.
func (s *Selector) Find(records []Record, id string) (Record, error) {
	if id == "" {
		return nil, ErrEmptyInvoiceID
	}
	for _, rec := range records {
		if s.InvoiceID(rec) == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrRecordNotFound, id)
}
