package domain

import "time"

// AlertSeverity ranks an alert.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is a demo risk alert tied to a wallet.
type Alert struct {
	ID            string        `json:"id"`
	WalletAddress string        `json:"walletAddress"`
	Severity      AlertSeverity `json:"severity"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Timestamp     time.Time     `json:"timestamp"`
	Acknowledged  bool          `json:"acknowledged"`
}

// Summary holds the aggregate demo counters shown on the dashboard.
type Summary struct {
	WalletsMonitored int     `json:"walletsMonitored"`
	ActiveAlerts     int     `json:"activeAlerts"`
	ContractsScanned int     `json:"contractsScanned"`
	TotalValueUSD    float64 `json:"totalValueUsd"`
	AverageRiskScore int     `json:"averageRiskScore"`
}

// VoiceAnnouncement is the payload forwarded to the voice/TTS service.
type VoiceAnnouncement struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Address  string `json:"address,omitempty"`
	Persona  string `json:"persona,omitempty"`
}
