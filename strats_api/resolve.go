package strats_api

import (
	"strings"
)

const (
	// Stands for the short chromosome name in a pattern template
	ChrIndexPlaceholder = "%i"
	// Stands for the haplotype name in a diploid pattern template
	ChrHapPlaceholder = "%h"
)

// resolveChr fills in the chromosome placeholder of a template.
func resolveChr(template string, chr ChrIndex) string {
	return strings.Replace(template, ChrIndexPlaceholder, chr.Name(), 1)
}

// resolveHap fills in the haplotype placeholder of a template.
func resolveHap(template string, hapName string) string {
	return strings.Replace(template, ChrHapPlaceholder, hapName, 1)
}

// checkPlaceholder makes sure a template contains a placeholder exactly once.
func checkPlaceholder(template string, placeholder string) error {
	if n := strings.Count(template, placeholder); n != 1 {
		return configErrorf("chr template '%s' must have '%s' in it exactly once, found %d", template, placeholder, n)
	}
	return nil
}
