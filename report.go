package nayose

import (
	"bufio"
	"io"
	"strings"

	"github.com/projectdiscovery/fasttemplate"
	errorutil "github.com/projectdiscovery/utils/errors"
)

const (
	// DefaultCanonicalTemplate renders the numbered line opening a group
	DefaultCanonicalTemplate = "{{number}}. {{token}}"
	// DefaultVariantTemplate renders one variant line below the canonical
	DefaultVariantTemplate = "- {{token}}"
)

// ReportWriter renders ranked groups into the line oriented report
// format: a numbered canonical line followed by one dashed line per
// variant.
type ReportWriter struct {
	canonicalTemplate string
	variantTemplate   string
}

// NewReportWriter returns a writer using the default line templates.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{
		canonicalTemplate: DefaultCanonicalTemplate,
		variantTemplate:   DefaultVariantTemplate,
	}
}

// NewReportWriterWithTemplates returns a writer with custom line
// templates. Both templates may use the {{number}} and {{token}}
// placeholders; unclosed markers and unknown placeholders are rejected.
func NewReportWriterWithTemplates(canonicalTemplate, variantTemplate string) (*ReportWriter, error) {
	for _, tpl := range []string{canonicalTemplate, variantTemplate} {
		if _, err := fasttemplate.NewTemplate(tpl, ParenthesisOpen, ParenthesisClose); err != nil {
			return nil, err
		}
		if err := checkUnknownVars(tpl, "number", "token"); err != nil {
			return nil, err
		}
	}
	return &ReportWriter{
		canonicalTemplate: canonicalTemplate,
		variantTemplate:   variantTemplate,
	}, nil
}

// FormatGroup renders one group including the trailing newline. number is
// the 1 based position of the group in the report.
func (rw *ReportWriter) FormatGroup(number int, group Group) string {
	var sb strings.Builder
	sb.WriteString(Replace(rw.canonicalTemplate, map[string]interface{}{"number": number, "token": group.Canonical}))
	sb.WriteByte('\n')
	for _, variant := range group.Variants {
		sb.WriteString(Replace(rw.variantTemplate, map[string]interface{}{"number": number, "token": variant}))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteGroups renders all groups to w in order. No groups means an empty
// report and no error.
func (rw *ReportWriter) WriteGroups(w io.Writer, groups []Group) error {
	if w == nil {
		return errorutil.NewWithTag("nayose", "writer destination cannot be nil")
	}
	bw := bufio.NewWriter(w)
	for i, group := range groups {
		if _, err := bw.WriteString(rw.FormatGroup(i+1, group)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
