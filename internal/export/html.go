package export

import (
	"html"
	"strings"

	"memberdir/pkg/directory"
)

// renderHTMLIndex builds a static gallery page over the full merged set,
// mirroring the directory's own member-list layout at a distance: one card
// per member with the headline fields, then the full table.
func renderHTMLIndex(records []directory.MergedRecord) []byte {
	buf := &strings.Builder{}
	buf.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>Member Directory</title>")
	buf.WriteString("<style>.member-grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(300px,1fr));gap:20px;padding:20px}")
	buf.WriteString(".member-card{border:1px solid #ddd;border-radius:8px;padding:15px;text-align:center}")
	buf.WriteString("table{border-collapse:collapse;margin:20px}td,th{border:1px solid #ddd;padding:4px 8px}</style>")
	buf.WriteString("</head><body><div class=\"member-grid\">")
	for _, rec := range records {
		buf.WriteString("<div class=\"member-card\"><h5>")
		buf.WriteString(html.EscapeString(rec.Summary.CompanyName))
		buf.WriteString("</h5><p>")
		buf.WriteString(html.EscapeString(rec.Summary.MembershipNo))
		buf.WriteString("</p><p>")
		buf.WriteString(html.EscapeString(rec.Summary.MemberCategory))
		buf.WriteString("</p></div>")
	}
	buf.WriteString("</div><table><thead><tr>")
	for _, column := range directory.Header() {
		buf.WriteString("<th>")
		buf.WriteString(html.EscapeString(column))
		buf.WriteString("</th>")
	}
	buf.WriteString("</tr></thead><tbody>")
	for _, rec := range records {
		buf.WriteString("<tr>")
		for _, cell := range rec.Row() {
			buf.WriteString("<td>")
			buf.WriteString(html.EscapeString(cell))
			buf.WriteString("</td>")
		}
		buf.WriteString("</tr>")
	}
	buf.WriteString("</tbody></table></body></html>")
	return []byte(buf.String())
}
