package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fisk-dimension/internal/models"

	"github.com/google/uuid"
)

// PayloadShape tags which of the known body layouts a threat payload uses.
type PayloadShape string

const (
	// ShapeUnknown is anything that is not a JSON object. No rule can match it.
	ShapeUnknown PayloadShape = "unknown"
	// ShapeFlat carries record fields at the top level.
	ShapeFlat PayloadShape = "flat"
	// ShapeWrapped carries only a transactionData object.
	ShapeWrapped PayloadShape = "wrapped"
	// ShapeMixed carries both. Legacy callers send it; each rule reads its own level.
	ShapeMixed PayloadShape = "mixed"
)

const wrappedPayloadKey = "transactionData"

// ThreatFields holds the loosely typed record fields the rules look at.
// Amount and Description are nil unless the JSON value had the right type.
type ThreatFields struct {
	Amount      *float64
	Type        string
	Currency    string
	Category    string
	Description *string
}

// ThreatInput is the validated form of a threat-analysis body.
type ThreatInput struct {
	Shape  PayloadShape
	Fields ThreatFields
	Nested *ThreatFields
}

// ParseThreatPayload decodes body into a ThreatInput. Only malformed JSON is an error;
// well-formed bodies of any shape classify normally.
func ParseThreatPayload(body []byte) (ThreatInput, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return ThreatInput{Shape: ShapeUnknown}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return NewThreatInput(v), nil
}

// NewThreatInput classifies an already decoded JSON value into one of the known shapes.
func NewThreatInput(v any) ThreatInput {
	m, ok := v.(map[string]any)
	if !ok {
		return ThreatInput{Shape: ShapeUnknown}
	}

	in := ThreatInput{Shape: ShapeFlat, Fields: fieldsFrom(m)}

	nested, hasNested := m[wrappedPayloadKey].(map[string]any)
	if !hasNested {
		return in
	}
	nf := fieldsFrom(nested)
	in.Nested = &nf

	in.Shape = ShapeWrapped
	for key := range m {
		if key != wrappedPayloadKey {
			in.Shape = ShapeMixed
			break
		}
	}
	return in
}

// ThreatInputFromEvent builds a flat input from a validated record payload.
func ThreatInputFromEvent(data models.EventData) ThreatInput {
	f := ThreatFields{
		Type:     string(data.Type),
		Currency: data.Currency,
		Category: data.Category,
	}
	if data.Amount != nil {
		amount, _ := data.Amount.Float64()
		f.Amount = &amount
	}
	description := data.Description
	f.Description = &description
	return ThreatInput{Shape: ShapeFlat, Fields: f}
}

func fieldsFrom(m map[string]any) ThreatFields {
	var f ThreatFields
	if amount, ok := m["amount"].(float64); ok {
		f.Amount = &amount
	}
	if description, ok := m["description"].(string); ok {
		f.Description = &description
	}
	f.Type, _ = m["type"].(string)
	f.Currency, _ = m["currency"].(string)
	f.Category, _ = m["category"].(string)
	return f
}

// ThreatDraft is what a rule produces before id and timestamp are assigned.
type ThreatDraft struct {
	IDPrefix string
	Type     string
	Severity models.Severity
	Details  string
}

// ThreatRule pairs a predicate with the threat it yields.
type ThreatRule struct {
	Name  string
	Match func(ThreatInput) bool
	Build func(ThreatInput) ThreatDraft
}

var suspiciousPhrases = []string{"urgent payment", "immediate transfer"}

// DefaultThreatRules returns the built-in rules in priority order.
func DefaultThreatRules(largeExpenseThreshold float64) []ThreatRule {
	return []ThreatRule{
		LargeExpenseRule(largeExpenseThreshold),
		SuspiciousWordingRule(suspiciousPhrases...),
		NegativeAmountRule(),
	}
}

// LargeExpenseRule flags expenses whose numeric amount exceeds threshold.
func LargeExpenseRule(threshold float64) ThreatRule {
	return ThreatRule{
		Name: "large_expense",
		Match: func(in ThreatInput) bool {
			return in.Fields.Amount != nil &&
				*in.Fields.Amount > threshold &&
				in.Fields.Type == string(models.TypeExpense)
		},
		Build: func(in ThreatInput) ThreatDraft {
			category := in.Fields.Category
			if category == "" {
				category = "N/A"
			}
			return ThreatDraft{
				IDPrefix: "threat_le",
				Type:     "Unusually Large Expense",
				Severity: models.SeverityHigh,
				Details: fmt.Sprintf(
					"An expense of %s %s was recorded, exceeding the typical threshold. Category: %s.",
					in.Fields.Currency, formatNumber(*in.Fields.Amount), category,
				),
			}
		},
	}
}

// SuspiciousWordingRule flags descriptions containing any of phrases, ignoring case.
func SuspiciousWordingRule(phrases ...string) ThreatRule {
	return ThreatRule{
		Name: "suspicious_wording",
		Match: func(in ThreatInput) bool {
			if in.Fields.Description == nil {
				return false
			}
			lower := strings.ToLower(*in.Fields.Description)
			for _, p := range phrases {
				if strings.Contains(lower, p) {
					return true
				}
			}
			return false
		},
		Build: func(in ThreatInput) ThreatDraft {
			return ThreatDraft{
				IDPrefix: "threat_kw",
				Type:     "Suspicious Wording in Description",
				Severity: models.SeverityMedium,
				Details: fmt.Sprintf(
					"Transaction description \"%s\" contains potentially suspicious keywords.",
					*in.Fields.Description,
				),
			}
		},
	}
}

// NegativeAmountRule flags a negative transactionData.amount.
func NegativeAmountRule() ThreatRule {
	return ThreatRule{
		Name: "negative_amount",
		Match: func(in ThreatInput) bool {
			return in.Nested != nil && in.Nested.Amount != nil && *in.Nested.Amount < 0
		},
		Build: func(in ThreatInput) ThreatDraft {
			return ThreatDraft{
				IDPrefix: "threat_neg",
				Type:     "Negative Amount Anomaly",
				Severity: models.SeverityMedium,
				Details: fmt.Sprintf(
					"Transaction amount %s is negative, which might be unusual.",
					formatNumber(*in.Nested.Amount),
				),
			}
		},
	}
}

// ThreatClassifier evaluates rules in order; the first match wins.
type ThreatClassifier struct {
	rules []ThreatRule
	now   func() time.Time
}

func NewThreatClassifier(rules []ThreatRule) *ThreatClassifier {
	return &ThreatClassifier{rules: rules, now: time.Now}
}

// Classify returns the threat of the first matching rule, or nil.
func (c *ThreatClassifier) Classify(in ThreatInput) *models.Threat {
	_, threat := c.classify(in)
	return threat
}

func (c *ThreatClassifier) classify(in ThreatInput) (string, *models.Threat) {
	if in.Shape == ShapeUnknown {
		return "", nil
	}
	for _, rule := range c.rules {
		if !rule.Match(in) {
			continue
		}
		draft := rule.Build(in)
		now := c.now()
		return rule.Name, &models.Threat{
			ID:        fmt.Sprintf("%s_%d_%s", draft.IDPrefix, now.UnixMilli(), uuid.NewString()[:8]),
			Type:      draft.Type,
			Severity:  draft.Severity,
			Timestamp: now.UnixMilli(),
			Details:   draft.Details,
			Status:    models.ThreatStatusNew,
		}
	}
	return "", nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
