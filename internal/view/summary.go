package view

import (
	"html/template"
	"strings"
)

// AlternativesMarker starts the optional alternatives tail of a consensus summary.
const AlternativesMarker = "💡 Alternative Investment"

const emphasis = "**"

// FormatSummary turns the consensus narrative into markup. Paragraphs are
// separated by blank lines; a paragraph with at least two emphasis markers
// becomes a header block. Everything after the alternatives marker is shown
// once, in its own callout. All text is escaped.
func FormatSummary(summary string) template.HTML {
	summary = strings.ReplaceAll(summary, "\r\n", "\n")
	if strings.TrimSpace(summary) == "" {
		return ""
	}

	var b strings.Builder
	main, alternatives, found := strings.Cut(summary, AlternativesMarker)
	writeMainSummary(&b, main)
	if found {
		writeAlternatives(&b, strings.TrimSpace(alternatives))
	}
	return template.HTML(b.String())
}

func writeMainSummary(b *strings.Builder, summary string) {
	b.WriteString(`<div class="summary">`)
	for _, section := range strings.Split(summary, "\n\n") {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		if strings.Count(section, emphasis) < 2 {
			b.WriteString(`<p class="summary-paragraph">`)
			b.WriteString(template.HTMLEscapeString(section))
			b.WriteString(`</p>`)
			continue
		}

		b.WriteString(`<div class="summary-section">`)
		for i, part := range strings.Split(section, emphasis) {
			switch {
			case i%2 == 0:
				b.WriteString(template.HTMLEscapeString(part))
			case strings.Contains(part, ":"):
				b.WriteString(`<h4 class="summary-header"><span class="summary-header-icon">📊</span> `)
				b.WriteString(template.HTMLEscapeString(strings.Replace(part, ":", "", 1)))
				b.WriteString(`</h4>`)
			default:
				b.WriteString(`<strong>`)
				b.WriteString(template.HTMLEscapeString(part))
				b.WriteString(`</strong>`)
			}
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
}

func writeAlternatives(b *strings.Builder, content string) {
	b.WriteString(`<div class="alternatives-callout">`)
	b.WriteString(`<div class="alternatives-heading"><span class="alternatives-icon">💡</span>`)
	b.WriteString(`<div><div class="alternatives-title">Alternative Investment Opportunities</div>`)
	b.WriteString(`<div class="alternatives-subtitle">Better options discovered in the same industry</div></div></div>`)
	b.WriteString(`<div class="alternatives-body">`)
	b.WriteString(template.HTMLEscapeString(content))
	b.WriteString(`</div></div>`)
}
