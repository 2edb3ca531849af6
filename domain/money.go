package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The backend reads and writes BigDecimal fields as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Percent returns v * pct / 100.
func Percent(v decimal.Decimal, pct int64) decimal.Decimal {
	return v.Mul(decimal.NewFromInt(pct)).Div(decimal.NewFromInt(100))
}

const localDateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime is a zone-less timestamp as serialized by the backend
// ("2024-03-01T10:15:30", optional fractional seconds).
type LocalDateTime struct {
	time.Time
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(localDateTimeLayout))
}

func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	parsed, err := time.Parse(localDateTimeLayout, strings.TrimSuffix(raw, "Z"))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
