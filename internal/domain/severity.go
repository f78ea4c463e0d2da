package domain

import "fmt"

// Severity classifies the aggregate strength/quality of detected signals.
// The ordering matters: comparisons like sev >= SeverityHigh are relied on
// by the responder.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var severityNames = [...]string{"none", "low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < SeverityNone || s > SeverityCritical {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// Tier is the configured protection level. It governs which countermeasure
// actions are eligible, independent of the observed severity.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
	TierMaximum
)

var tierNames = [...]string{"low", "medium", "high", "maximum"}

func (t Tier) String() string {
	if t < TierLow || t > TierMaximum {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// ParseTier maps a config string onto a Tier.
func ParseTier(s string) (Tier, error) {
	for i, name := range tierNames {
		if s == name {
			return Tier(i), nil
		}
	}
	return TierLow, fmt.Errorf("unknown protection tier %q (use low, medium, high or maximum)", s)
}

// DetectionMode is a labeling knob only; it never changes sampling logic.
type DetectionMode string

const (
	ModePassive    DetectionMode = "passive"
	ModeActive     DetectionMode = "active"
	ModeAggressive DetectionMode = "aggressive"
)

// ParseDetectionMode validates a config string.
func ParseDetectionMode(s string) (DetectionMode, error) {
	switch DetectionMode(s) {
	case ModePassive, ModeActive, ModeAggressive:
		return DetectionMode(s), nil
	}
	return ModePassive, fmt.Errorf("unknown detection mode %q (use passive, active or aggressive)", s)
}
