package loan

import (
	"strings"

	"github.com/JunhyunKang/mock-sol/internal/model"
)

// DocumentTypeAll disables the type facet of FilterDocuments.
const DocumentTypeAll = "all"

// FilterDocuments retains documents matching the type facet and a
// case-insensitive title substring. Either facet may be empty.
func FilterDocuments(docs []model.LoanDocument, docType string, term string) []model.LoanDocument {
	term = strings.ToLower(strings.TrimSpace(term))

	var out []model.LoanDocument
	for _, d := range docs {
		if docType != "" && docType != DocumentTypeAll && string(d.Type) != docType {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(d.Title), term) {
			continue
		}
		out = append(out, d)
	}
	return out
}
