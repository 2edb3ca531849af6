package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prestabanco/domain"
)

func TestRequiredDocuments(t *testing.T) {
	keys := func(pt domain.PropertyType) []string {
		var out []string
		for _, d := range RequiredDocuments(pt) {
			out = append(out, d.Key)
		}
		return out
	}
	assert.Equal(t, []string{"incomeProof", "propertyAppraisal", "creditHistory"}, keys(domain.FirstHome))
	assert.Equal(t, []string{"incomeProof", "propertyAppraisal", "firstPropertyDeed", "creditHistory"}, keys(domain.SecondHome))
	assert.Equal(t, []string{"businessFinancials", "incomeProof", "propertyAppraisal", "businessPlan"}, keys(domain.Commercial))
	assert.Equal(t, []string{"incomeProof", "renovationBudget", "updatedAppraisal"}, keys(domain.Remodeling))
	assert.Empty(t, RequiredDocuments("OTHER"))
}

func TestDocumentLabel(t *testing.T) {
	assert.Equal(t, "Comprobante de Ingresos", DocumentLabel("incomeProof"))
	assert.Equal(t, "otro", DocumentLabel("otro"))
}

func TestNewAttachment(t *testing.T) {
	doc, err := NewAttachment("scan.png", "", []byte("\x89PNG\r\n\x1a\n0000"))
	require.NoError(t, err)
	assert.Equal(t, "image/png", doc.Type)

	data, mediaType, err := DecodeAttachment(doc)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mediaType)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n0000"), data)

	_, err = NewAttachment("notes.txt", "text/plain", []byte("hola"))
	assert.ErrorIs(t, err, ErrDocumentType)

	big := bytes.Repeat([]byte{'a'}, MaxDocumentBytes+1)
	_, err = NewAttachment("big.pdf", "application/pdf", big)
	assert.ErrorIs(t, err, ErrDocumentSize)

	exact := bytes.Repeat([]byte{'a'}, MaxDocumentBytes)
	_, err = NewAttachment("exact.pdf", "application/pdf; charset=binary", exact)
	assert.NoError(t, err)
}

func TestDecodeAttachment_Invalid(t *testing.T) {
	for _, content := range []string{"", "hola", "data:application/pdf,plain", "data:application/pdf;base64,@@"} {
		_, _, err := DecodeAttachment(domain.Document{Content: content})
		assert.ErrorIs(t, err, ErrDocumentData, content)
	}
}
