package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"prestabanco/domain"
)

// RequiredDocument is one upload slot of the documentation step.
type RequiredDocument struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var requiredDocuments = map[domain.PropertyType][]RequiredDocument{
	domain.FirstHome: {
		{Key: "incomeProof", Label: "Comprobante de ingresos"},
		{Key: "propertyAppraisal", Label: "Certificado de avalúo"},
		{Key: "creditHistory", Label: "Historial crediticio"},
	},
	domain.SecondHome: {
		{Key: "incomeProof", Label: "Comprobante de ingresos"},
		{Key: "propertyAppraisal", Label: "Certificado de avalúo"},
		{Key: "firstPropertyDeed", Label: "Escritura de la primera vivienda"},
		{Key: "creditHistory", Label: "Historial crediticio"},
	},
	domain.Commercial: {
		{Key: "businessFinancials", Label: "Estado financiero del negocio"},
		{Key: "incomeProof", Label: "Comprobante de ingresos"},
		{Key: "propertyAppraisal", Label: "Certificado de avalúo"},
		{Key: "businessPlan", Label: "Plan de negocios"},
	},
	domain.Remodeling: {
		{Key: "incomeProof", Label: "Comprobante de ingresos"},
		{Key: "renovationBudget", Label: "Presupuesto de la remodelación"},
		{Key: "updatedAppraisal", Label: "Certificado de avalúo actualizado"},
	},
}

// RequiredDocuments returns the documents a property type needs; none for an unknown type.
func RequiredDocuments(pt domain.PropertyType) []RequiredDocument {
	docs := requiredDocuments[pt]
	out := make([]RequiredDocument, len(docs))
	copy(out, docs)
	return out
}

var documentLabels = map[string]string{
	"incomeProof":        "Comprobante de Ingresos",
	"propertyAppraisal":  "Certificado de Avalúo",
	"creditHistory":      "Historial Crediticio",
	"firstPropertyDeed":  "Escritura Primera Vivienda",
	"businessFinancials": "Estado Financiero",
	"businessPlan":       "Plan de Negocios",
	"renovationBudget":   "Presupuesto Remodelación",
	"updatedAppraisal":   "Avalúo Actualizado",
}

// DocumentLabel names a document key for listings, falling back to the key.
func DocumentLabel(key string) string {
	if label, ok := documentLabels[key]; ok {
		return label
	}
	return key
}

var allowedDocumentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

var (
	ErrDocumentType = errors.New("Solo se permiten archivos PDF, JPG o PNG")
	ErrDocumentSize = errors.New("El archivo no debe superar 5MB")
	ErrDocumentData = errors.New("Error al procesar el archivo")
)

// NewAttachment validates an uploaded file and encodes it as a data URL.
// An empty contentType is sniffed from the bytes.
func NewAttachment(name, contentType string, data []byte) (domain.Document, error) {
	mediaType := normalizeMediaType(contentType)
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = normalizeMediaType(http.DetectContentType(data))
	}
	if !allowedDocumentTypes[mediaType] {
		return domain.Document{}, ErrDocumentType
	}
	if len(data) > MaxDocumentBytes {
		return domain.Document{}, ErrDocumentSize
	}
	return domain.Document{
		Name:    name,
		Type:    mediaType,
		Size:    int64(len(data)),
		Content: "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

// DecodeAttachment returns the raw bytes and media type held in a document's data URL.
func DecodeAttachment(doc domain.Document) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(doc.Content, "data:")
	if !ok {
		return nil, "", fmt.Errorf("%w: content is not a data url", ErrDocumentData)
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("%w: data url has no payload", ErrDocumentData)
	}
	mediaType, encoding, _ := strings.Cut(header, ";")
	if encoding != "base64" {
		return nil, "", fmt.Errorf("%w: data url is not base64", ErrDocumentData)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDocumentData, err)
	}
	if mediaType == "" {
		mediaType = doc.Type
	}
	return data, normalizeMediaType(mediaType), nil
}

// ValidateAttachment applies the upload rules to an already encoded document.
func ValidateAttachment(doc domain.Document) error {
	data, mediaType, err := DecodeAttachment(doc)
	if err != nil {
		return ErrDocumentData
	}
	if !allowedDocumentTypes[mediaType] {
		return ErrDocumentType
	}
	if len(data) > MaxDocumentBytes {
		return ErrDocumentSize
	}
	return nil
}

func normalizeMediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}
