package valueobject

import "regexp"

var (
	panRe     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadhaarRe = regexp.MustCompile(`^[0-9]{12}$`)
)

// ValidPANFormat reports whether the string matches the 10-character PAN
// pattern (five letters, four digits, one letter).
func ValidPANFormat(pan string) bool {
	return panRe.MatchString(pan)
}

// ValidAadhaarFormat reports whether the string is a 12-digit Aadhaar number.
func ValidAadhaarFormat(aadhaar string) bool {
	return aadhaarRe.MatchString(aadhaar)
}
