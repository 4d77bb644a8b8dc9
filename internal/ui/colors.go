package ui

// Color accessors return the escape code of the active theme, or an empty
// string when colors are disabled.

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorBold starts bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorRed marks failures such as sum mismatches.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen marks successes.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorGrey de-emphasizes host details.
func ColorGrey() string { return GetCurrentTheme().Secondary }
