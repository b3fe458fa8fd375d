package entitlements

import "encoding/json"

type LicenseStatus string

const (
	LicenseNone     LicenseStatus = "none"
	LicenseInactive LicenseStatus = "inactive"
	LicenseActive   LicenseStatus = "active"
	LicenseExpiring LicenseStatus = "expiring"
	LicenseExpired  LicenseStatus = "expired"
	LicenseLost     LicenseStatus = "lost"
)

// ParseLicenseStatus maps a raw status to a known LicenseStatus.
// Only exact values match; anything else is treated as inactive.
func ParseLicenseStatus(raw string) LicenseStatus {
	switch s := LicenseStatus(raw); s {
	case LicenseNone, LicenseInactive, LicenseActive, LicenseExpiring, LicenseExpired, LicenseLost:
		return s
	default:
		return LicenseInactive
	}
}

// UnmarshalJSON normalizes the status while decoding enterprise payloads,
// so an unknown value never reaches the feature views. Non-string values
// and null decode to inactive.
func (s *LicenseStatus) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		*s = LicenseInactive
		return nil
	}
	*s = ParseLicenseStatus(*raw)
	return nil
}
