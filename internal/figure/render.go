package figure

import "strconv"

// formatFloat renders a float64 as the shortest decimal string that parses
// back to the same value. Pinning one rule keeps rendered output
// byte-identical across platforms.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
