package loan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunhyunKang/mock-sol/internal/loan"
	"github.com/JunhyunKang/mock-sol/internal/model"
)

func TestFilterDocuments_All(t *testing.T) {
	docs := loan.DefaultDocuments()
	got := loan.FilterDocuments(docs, loan.DocumentTypeAll, "")
	assert.Len(t, got, len(docs))
}

func TestFilterDocuments_ByType(t *testing.T) {
	docs := loan.DefaultDocuments()
	got := loan.FilterDocuments(docs, string(model.DocumentContract), "")
	require.NotEmpty(t, got)
	for _, d := range got {
		assert.Equal(t, model.DocumentContract, d.Type)
	}
	assert.Less(t, len(got), len(docs))
}

func TestFilterDocuments_ByTerm(t *testing.T) {
	docs := loan.DefaultDocuments()
	got := loan.FilterDocuments(docs, loan.DocumentTypeAll, "계약서")
	require.NotEmpty(t, got)
	for _, d := range got {
		assert.Contains(t, d.Title, "계약서")
	}
}

func TestFilterDocuments_TermTrimmed(t *testing.T) {
	docs := loan.DefaultDocuments()
	assert.Equal(t,
		loan.FilterDocuments(docs, loan.DocumentTypeAll, "계약서"),
		loan.FilterDocuments(docs, loan.DocumentTypeAll, "  계약서  "))
}

func TestFilterDocuments_NoMatch(t *testing.T) {
	docs := loan.DefaultDocuments()
	assert.Empty(t, loan.FilterDocuments(docs, loan.DocumentTypeAll, "존재하지않는서류"))
}

func TestDefaultLoans(t *testing.T) {
	loans := loan.DefaultLoans()
	require.NotEmpty(t, loans)
	for _, l := range loans {
		assert.True(t, l.Balance.LessThanOrEqual(l.Amount), "outstanding cannot exceed principal")
		assert.NotEmpty(t, l.Type)
	}
}
