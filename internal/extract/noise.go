package extract

import (
	"regexp"
	"strings"
)

// Vehicle reports interleave values with pagination fragments, portal
// boilerplate and URLs. The forward scan below a label skips any line
// one of these predicates flags. Order matters only for readability;
// the predicates are mutually independent.
type noisePredicate struct {
	name string
	fn   func(line string) bool
}

var (
	fractionToken = regexp.MustCompile(`\d+/\d+`)
	pageFraction  = regexp.MustCompile(`^\d+/\d+$`)
)

var noisePredicates = []noisePredicate{
	{"time_fragment", func(s string) bool {
		return fractionToken.MatchString(s) && strings.Contains(s, ":")
	}},
	{"portal_boilerplate", func(s string) bool {
		return strings.Contains(strings.ToLower(s), "consulta ciudadano")
	}},
	{"bare_url", func(s string) bool {
		return strings.HasPrefix(strings.ToLower(s), "http")
	}},
	{"page_fraction", func(s string) bool {
		return pageFraction.MatchString(s)
	}},
}

func isNoise(line string) bool {
	for _, p := range noisePredicates {
		if p.fn(line) {
			return true
		}
	}
	return false
}
