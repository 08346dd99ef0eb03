package ir

// Version constants for report identity and tooling.
const (
	// ReportVersion is the report schema version.
	ReportVersion = "1"

	// ToolVersion is the linkset tool version.
	ToolVersion = "0.1.0"
)
