// Package validate holds the fixed-format rules shared by every record kind.
package validate

import "regexp"

var (
	// Pakistani CNIC: 5-7-1 digit groups
	cnicRe = regexp.MustCompile(`^\d{5}-\d{7}-\d{1}$`)
	// Pakistani mobile number: +92 country code plus 10 digits
	phoneRe = regexp.MustCompile(`^\+92\d{10}$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func CNIC(v string) bool  { return cnicRe.MatchString(v) }
func Phone(v string) bool { return phoneRe.MatchString(v) }
func Email(v string) bool { return emailRe.MatchString(v) }

// StrLen reports whether v is within [min, max] runes.
func StrLen(v string, min, max int) bool {
	n := len([]rune(v))
	return n >= min && n <= max
}
