package tui

// Color constants for the dialr theme
const (
	// Base Colors
	ColorCardBackground = "#111827" // Near-black slate
	ColorBorder         = "#334155" // Slate

	// Text Colors
	ColorPrimaryText   = "#E5E7EB" // Labels, numbers, names
	ColorSecondaryText = "#9CA3AF" // Notes, timestamps
	ColorDisabledText  = "#6B7280" // Placeholders, empty values
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (blue, matching the notification icon color)
	ColorAccentMain   = "#3B82F6" // Header, active tab, borders
	ColorAccentBright = "#93C5FD" // Highlights, selected rows

	// Call direction colors
	ColorIncoming = "#2563EB"
	ColorOutgoing = "#16A34A"
	ColorMissed   = "#DC2626"

	// State Colors
	ColorError   = "#EF4444" // Overdue, high priority, end call
	ColorSuccess = "#22C55E" // Completed, place call, online
	ColorWarning = "#F59E0B" // Medium priority
)
