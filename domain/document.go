package domain

import (
	"encoding/json"
	"sort"
)

// Document is one attachment, content kept as a base64 data URL.
type Document struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Size    int64  `json:"size,omitempty"`
	Content string `json:"content,omitempty"`
}

// DocumentSet maps a document key (incomeProof, propertyAppraisal, ...) to its file.
type DocumentSet map[string]Document

// Encode serializes the set the way it travels inside LoanApplication.Documents.
// Sizes are dropped, only name, type and content are sent.
func (s DocumentSet) Encode() (string, error) {
	out := make(map[string]Document, len(s))
	for key, doc := range s {
		if doc.Content == "" {
			continue
		}
		out[key] = Document{Name: doc.Name, Type: doc.Type, Content: doc.Content}
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ParseDocumentSet decodes LoanApplication.Documents; an empty string is an empty set.
func ParseDocumentSet(raw string) (DocumentSet, error) {
	set := DocumentSet{}
	if raw == "" {
		return set, nil
	}
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil, err
	}
	return set, nil
}

// Keys returns the document keys in a stable order.
func (s DocumentSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StoredDocument is a record of the /api/documents resource.
type StoredDocument struct {
	ID            int64  `json:"id,omitempty"`
	ApplicationID int64  `json:"applicationId,omitempty"`
	DocumentType  string `json:"documentType,omitempty"`
	Name          string `json:"name,omitempty"`
	Type          string `json:"type,omitempty"`
	Content       string `json:"content,omitempty"`
}
