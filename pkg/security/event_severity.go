package security

import "go.uber.org/zap/zapcore"

// Severity is derived from EventType, never supplied by callers
type Severity string

const (
	SeverityINFO   Severity = "INFO"
	SeverityMEDIUM Severity = "MEDIUM"
	SeverityWARN   Severity = "WARN"
	SeverityHIGH   Severity = "HIGH"
)

var EventSeverityMap = map[EventType]Severity{
	EventDataExport:  SeverityMEDIUM,
	EventServerError: SeverityMEDIUM,

	EventAuthFailed:         SeverityWARN,
	EventRateLimitTriggered: SeverityWARN,
	EventValidationFailed:   SeverityWARN,
	EventUploadRejected:     SeverityWARN,

	EventUnauthorizedAccess: SeverityHIGH,
	EventForbiddenAccess:    SeverityHIGH,
	EventRoleModified:       SeverityHIGH,
}

// GetSeverity returns the severity for an event type, MEDIUM when unmapped
func GetSeverity(eventType EventType) Severity {
	if severity, ok := EventSeverityMap[eventType]; ok {
		return severity
	}
	return SeverityMEDIUM
}

// Level maps a severity onto the zap level it is written at
func (s Severity) Level() zapcore.Level {
	switch s {
	case SeverityINFO, SeverityMEDIUM:
		return zapcore.InfoLevel
	case SeverityWARN:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
