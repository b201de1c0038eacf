package leads

import (
	"fmt"
	"strings"
)

const defaultPhoneDigits = 10

type country struct {
	name   string
	digits int
}

// dialCodes maps a dialing code to the national number length it expects.
// Shared codes keep the first country listed.
var dialCodes = map[string]country{
	"+1":   {"United States", 10},
	"+7":   {"Russia", 10},
	"+20":  {"Egypt", 10},
	"+27":  {"South Africa", 9},
	"+31":  {"Netherlands", 9},
	"+33":  {"France", 9},
	"+34":  {"Spain", 9},
	"+39":  {"Italy", 10},
	"+41":  {"Switzerland", 9},
	"+44":  {"United Kingdom", 10},
	"+46":  {"Sweden", 9},
	"+49":  {"Germany", 10},
	"+52":  {"Mexico", 10},
	"+55":  {"Brazil", 11},
	"+60":  {"Malaysia", 9},
	"+61":  {"Australia", 9},
	"+62":  {"Indonesia", 10},
	"+63":  {"Philippines", 10},
	"+64":  {"New Zealand", 9},
	"+65":  {"Singapore", 8},
	"+66":  {"Thailand", 9},
	"+81":  {"Japan", 10},
	"+82":  {"South Korea", 10},
	"+84":  {"Vietnam", 9},
	"+86":  {"China", 11},
	"+90":  {"Turkey", 10},
	"+91":  {"India", 10},
	"+92":  {"Pakistan", 10},
	"+94":  {"Sri Lanka", 9},
	"+234": {"Nigeria", 10},
	"+254": {"Kenya", 10},
	"+353": {"Ireland", 9},
	"+880": {"Bangladesh", 10},
	"+966": {"Saudi Arabia", 9},
	"+971": {"United Arab Emirates", 9},
	"+974": {"Qatar", 8},
	"+977": {"Nepal", 10},
}

// PhoneDigits reports how many digits a national number needs for code.
// Unknown codes fall back to ten.
func PhoneDigits(code string) int {
	if c, ok := dialCodes[code]; ok {
		return c.digits
	}
	return defaultPhoneDigits
}

// phoneProblem returns "" when phone fits code.
func phoneProblem(code, phone string) string {
	want := PhoneDigits(code)
	if len(phone) == want && isDigits(phone) {
		return ""
	}
	if c, ok := dialCodes[code]; ok {
		return fmt.Sprintf("must be exactly %d digits for %s", want, c.name)
	}
	return fmt.Sprintf("must be exactly %d digits", want)
}

// FormatPhone joins the dialing code and national number the way the
// backend stores them.
func FormatPhone(code, phone string) string {
	return strings.TrimSpace(code) + " " + strings.TrimSpace(phone)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
