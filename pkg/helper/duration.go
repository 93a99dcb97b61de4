package helper

import "fmt"

// FormatDuration renders a duration in seconds as "M:SS" with the seconds
// zero-padded. Minutes do not roll over into hours (125.7 -> "2:05").
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
