package tui

// Color constants for the wellbeing dashboard theme
const (
	// Base Colors
	ColorCardBackground = "#10231F" // Deep teal
	ColorBorder         = "#35504A" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E6F2EE" // Labels, user input, titles
	ColorSecondaryText = "#A9C2BB" // Secondary text
	ColorDisabledText  = "#62776F" // Muted text
	ColorPlaceholder   = "#A9C2BB"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#0D9488" // Logo, active borders
	ColorAccentBright = "#5EEAD4" // Highlights, current section

	// State Colors
	ColorError   = "#EF4444" // High concern, validation errors
	ColorSuccess = "#22C55E" // Positive, confirmations
	ColorWarning = "#F59E0B" // Moderate
)
