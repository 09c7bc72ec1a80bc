package nayose

import (
	"fmt"
	"regexp"
	"strings"
)

var varRegex = regexp.MustCompile(`\{\{([a-zA-Z0-9]+)\}\}`)

// returns names of all variables used in template
func getAllVars(template string) []string {
	var values []string
	for _, v := range varRegex.FindAllStringSubmatch(template, -1) {
		if len(v) >= 2 {
			values = append(values, v[1])
		}
	}
	return values
}

// checkUnknownVars returns an error when template uses a variable the
// renderer will never provide, so typos fail at construction instead of
// leaking into the report
func checkUnknownVars(template string, known ...string) error {
	var unknown []string
	for _, name := range getAllVars(template) {
		found := false
		for _, k := range known {
			if name == k {
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown variables `%v` in template `%v`", strings.Join(unknown, ","), template)
	}
	return nil
}
