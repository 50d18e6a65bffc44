package output

import (
	"fmt"
	"strings"
)

// Report assembles a Markdown document from headed sections.
type Report struct {
	title    string
	preamble []string
	sections []section
}

type section struct {
	heading string
	body    string
}

// NewReport starts a report with a top-level title.
func NewReport(title string) *Report {
	return &Report{title: title}
}

// Note adds a paragraph under the title, before any section.
func (r *Report) Note(format string, args ...any) {
	r.preamble = append(r.preamble, fmt.Sprintf(format, args...))
}

// Section appends a "##" section. Empty bodies render as "_No data._".
func (r *Report) Section(heading, body string) {
	r.sections = append(r.sections, section{heading: heading, body: body})
}

// String renders the report.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", r.title)
	for _, p := range r.preamble {
		sb.WriteString(p)
		sb.WriteString("\n\n")
	}
	for _, s := range r.sections {
		fmt.Fprintf(&sb, "## %s\n\n", s.heading)
		body := strings.TrimSpace(s.body)
		if body == "" {
			body = "_No data._"
		}
		sb.WriteString(body)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
