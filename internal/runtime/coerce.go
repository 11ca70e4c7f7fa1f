package runtime

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/inquest/pkg/domain"
)

var (
	truthyPattern = regexp.MustCompile(`^(?i:true|y|yes)$`)
	falsyPattern  = regexp.MustCompile(`^(?i:false|n|no)$`)
)

// Coerce converts raw reply text into a typed answer. It is pure and
// consults no question-specific configuration.
//
// Blank input (after trimming) is the empty answer. Yes/no words become
// booleans. Text that round-trips through canonical float formatting
// becomes a number; anything else stays a string, so "0042" and "1e3"
// are preserved verbatim.
func Coerce(raw string) domain.Answer {
	text := strings.TrimSpace(raw)
	if text == "" {
		return domain.Empty
	}
	if truthyPattern.MatchString(text) {
		return domain.Bool(true)
	}
	if falsyPattern.MatchString(text) {
		return domain.Bool(false)
	}
	if n, err := strconv.ParseFloat(text, 64); err == nil {
		if strconv.FormatFloat(n, 'g', -1, 64) == text {
			return domain.Number(n)
		}
	}
	return domain.String(text)
}
