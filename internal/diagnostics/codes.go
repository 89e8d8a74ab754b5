package diagnostics

// Diagnostic codes
const (
	ErrMissingSource   = "E0001"
	ErrUnreadableFile  = "E0002"
	ErrInvalidOptions  = "E0003"
	WarnDroppedTrailer = "W0001"
)
