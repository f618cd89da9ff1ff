package repository

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"fisk-dimension/internal/models"

	"github.com/shopspring/decimal"
)

const sampleWindow = 180 * 24 * time.Hour

var (
	sampleCurrencies = []string{"USD", "ETH", "BTC", "FISK", "USDC", "DAI"}
	sampleCategories = map[models.TransactionType]string{
		models.TypeRevenue:        "Sales",
		models.TypeExpense:        "Operations",
		models.TypeSystemUpdate:   "System",
		models.TypeDataAccess:     "Data Governance",
		models.TypeConfigChange:   "System",
		models.TypeUserAuth:       "Identity",
		models.TypeAPICall:        "Integration",
		models.TypeSecurityEvent:  "Security",
		models.TypeAuditLog:       "Compliance",
		models.TypeNFTMint:        "Digital Assets",
		models.TypeTokenTransfer:  "Treasury",
		models.TypeContractDeploy: "Smart Contracts",
		models.TypeOracleUpdate:   "System",
	}
)

// GenerateSampleTransactions builds the mock chain log shown on the dashboard.
// The same n, seed and now always produce the same records.
func GenerateSampleTransactions(n int, seed int64, now time.Time) []*models.Transaction {
	rng := rand.New(rand.NewSource(seed))
	types := models.AllTransactionTypes
	nowMs := now.UnixMilli()

	records := make([]*models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		typ := types[i%len(types)]

		data := models.EventData{
			Type:     typ,
			Category: sampleCategories[typ],
			User:     fmt.Sprintf("user_%d@fisk.dimension", (i%50)+1),
			Details:  sampleDetails(rng, typ, i),
		}
		if typ.IsFinancial() {
			amount := decimal.NewFromFloat(rng.Float64() * 20000).Round(2)
			data.Amount = &amount
			data.Currency = sampleCurrencies[i%len(sampleCurrencies)]
		}
		if typ == models.TypeRevenue || typ == models.TypeExpense {
			data.Description = fmt.Sprintf("Financial Transaction %d", i+1)
		} else {
			data.Description = fmt.Sprintf("%s Event %d", titleize(string(typ)), i+1)
		}

		ts := now.Add(-time.Duration(rng.Int63n(int64(sampleWindow))))
		data.Date = ts.UTC().Format("2006-01-02")

		records = append(records, &models.Transaction{
			ID:            fmt.Sprintf("tx-%d-%d", i+1, nowMs),
			Data:          data,
			Timestamp:     ts.UnixMilli(),
			Status:        models.StatusLogged,
			BlockNumber:   500000 + int64(i),
			Confirmations: rng.Intn(200) + 6,
		})
	}
	return records
}

func sampleDetails(rng *rand.Rand, typ models.TransactionType, i int) map[string]any {
	switch typ {
	case models.TypeSystemUpdate, models.TypeConfigChange, models.TypeOracleUpdate:
		return map[string]any{
			"parameter": fmt.Sprintf("param_sys_%d", i%5),
			"oldValue":  fmt.Sprintf("%d", i*12),
			"newValue":  fmt.Sprintf("%d", i*12+i%3),
			"component": fmt.Sprintf("core_module_%d", i%2),
		}
	case models.TypeDataAccess:
		return map[string]any{
			"resource":    fmt.Sprintf("resource_id_%d", i%10),
			"action":      []string{"read", "write", "delete", "grant_perm"}[i%4],
			"sensitivity": []string{"low", "medium", "high"}[i%3],
		}
	case models.TypeUserAuth:
		return map[string]any{
			"event":  []string{"login_success", "logout", "password_reset_request", "2fa_verified", "session_expired"}[i%5],
			"ip":     fmt.Sprintf("172.16.%d.%d", i%256, i%256),
			"device": fmt.Sprintf("device_%d", i%10),
		}
	case models.TypeAPICall:
		return map[string]any{
			"endpoint": fmt.Sprintf("/api/v3/resource%d", i%12),
			"method":   []string{"GET", "POST", "PUT", "DELETE", "PATCH"}[i%5],
			"status":   []int{200, 201, 204, 400, 401, 403, 404, 500, 503}[i%9],
		}
	case models.TypeSecurityEvent:
		return map[string]any{
			"alert_type": []string{"firewall_block", "waf_rule_triggered", "anomaly_detected", "rate_limit_exceeded"}[i%4],
			"severity":   []string{"low", "medium", "high", "critical"}[i%4],
			"source_ip":  fmt.Sprintf("203.0.113.%d", i%256),
		}
	case models.TypeAuditLog:
		return map[string]any{
			"entity": fmt.Sprintf("document_audit_%d", i+200),
			"action": []string{"viewed", "edited", "shared", "deleted"}[i%4],
			"editor": fmt.Sprintf("editor_%d@fisk.dimension", (i%15)+1),
		}
	case models.TypeNFTMint:
		return map[string]any{
			"nftId":      fmt.Sprintf("bnp_passport_%d", i+1000),
			"collection": "BiometricNFTFramework",
			"recipient":  hexAddress(rng),
		}
	case models.TypeTokenTransfer:
		return map[string]any{
			"from":  hexAddress(rng),
			"to":    hexAddress(rng),
			"token": []string{"FISK", "ETH", "USDC"}[i%3],
		}
	case models.TypeContractDeploy:
		return map[string]any{
			"contractName": fmt.Sprintf("Phase%dGovernance", i%25+1),
			"gasUsed":      rng.Intn(500000) + 100000,
			"version":      fmt.Sprintf("v1.%d.%d", i%3, i%5),
		}
	default:
		return map[string]any{"notes": "Standard operational data log entry"}
	}
}

func hexAddress(rng *rand.Rand) string {
	const digits = "0123456789abcdef"
	var b strings.Builder
	b.WriteString("0x")
	for i := 0; i < 40; i++ {
		b.WriteByte(digits[rng.Intn(len(digits))])
	}
	return b.String()
}

// titleize turns "system_update" into "System Update".
func titleize(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// SampleThreats returns the alerts the threat dashboard starts with.
func SampleThreats(now time.Time) []*models.Threat {
	ago := func(d time.Duration) int64 { return now.Add(-d).UnixMilli() }
	return []*models.Threat{
		{ID: "threat-001", Type: "SQL Injection Attempt", Severity: models.SeverityHigh, Timestamp: ago(time.Hour), Status: models.ThreatStatusNew,
			Details: "Detected on login endpoint from IP 192.168.1.100. Payload: OR 1=1"},
		{ID: "threat-002", Type: "Unusual Data Modification", Severity: models.SeverityMedium, Timestamp: ago(2 * time.Hour), Status: models.ThreatStatusInvestigating,
			Details: `User account "admin" modified critical financial data outside business hours.`},
		{ID: "threat-003", Type: "Failed Login Spike", Severity: models.SeverityLow, Timestamp: ago(3 * time.Hour), Status: models.ThreatStatusResolved,
			Details: `Multiple failed login attempts for user "guest". Blocked IP for 24h.`},
		{ID: "threat-004", Type: "Cross-Site Scripting (XSS)", Severity: models.SeverityHigh, Timestamp: ago(24 * time.Hour), Status: models.ThreatStatusNew,
			Details: "Potential XSS in user profile comments section. Input: <script>alert(1)</script>"},
		{ID: "threat-005", Type: "Anomalous Network Traffic", Severity: models.SeverityMedium, Timestamp: ago(48 * time.Hour), Status: models.ThreatStatusInvestigating,
			Details: "Unusual outbound traffic to unknown C&C server from internal host 10.0.5.23."},
		{ID: "threat-006", Type: "Data Exfiltration Pattern", Severity: models.SeverityCritical, Timestamp: ago(10 * time.Minute), Status: models.ThreatStatusNew,
			Details: "Large volume of sensitive data being transferred from database server to external IP."},
		{ID: "threat-007", Type: "Privilege Escalation Attempt", Severity: models.SeverityHigh, Timestamp: ago(40 * time.Minute), Status: models.ThreatStatusInvestigating,
			Details: `User "support_agent" attempted to access admin-only functions.`},
	}
}
