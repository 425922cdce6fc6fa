package document

import (
	"fmt"
	"strings"
)

// compatVersions is the closed set of PGFPlots compatibility versions.
var compatVersions = []string{
	"1.18", "1.17", "1.16", "1.15", "1.14", "1.13", "1.12", "1.11", "1.10",
	"1.9", "1.8", "1.7", "1.6", "1.5.1", "1.5", "1.4", "1.3", "pre1.3",
	"default",
}

// CompatError reports a compatibility version outside the known set.
type CompatError struct {
	Version string
}

// Error names the offending value and lists the accepted set.
func (e *CompatError) Error() string {
	return fmt.Sprintf("pgfplots compatibility version %q does not exist; available values are: %s",
		e.Version, strings.Join(compatVersions, ", "))
}

// Compat is the PGFPlots compatibility layer directive. The zero value is not
// valid; use DefaultCompat or NewCompat.
type Compat struct {
	version string
}

// DefaultCompat returns the sentinel "default" compatibility version.
func DefaultCompat() Compat {
	return Compat{version: "default"}
}

// NewCompat validates the version against the known set. Invalid input is
// rejected with a *CompatError, never silently coerced.
func NewCompat(version string) (Compat, error) {
	for _, known := range compatVersions {
		if version == known {
			return Compat{version: version}, nil
		}
	}
	return Compat{}, &CompatError{Version: version}
}

// Version reports the validated version string.
func (c Compat) Version() string {
	return c.version
}

// String renders the preamble directive for the version.
func (c Compat) String() string {
	return fmt.Sprintf("\\pgfplotsset{compat=%s}", c.version)
}
