package export

import "strings"

// sanitizeValue strips the control characters spreadsheet tooling rejects and
// collapses line breaks into single spaces, preserving everything else.
func sanitizeValue(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.Map(func(r rune) rune {
		if isIllegalRune(r) {
			return -1
		}
		return r
	}, s)
}

// isIllegalRune reports whether r falls in the character classes the XLSX
// format cannot carry: C0 controls except tab/newline/carriage-return, and
// DEL.
func isIllegalRune(r rune) bool {
	switch {
	case r >= 0x00 && r <= 0x08:
		return true
	case r == 0x0B || r == 0x0C:
		return true
	case r >= 0x0E && r <= 0x1F:
		return true
	case r == 0x7F:
		return true
	}
	return false
}

// sanitizeRows applies sanitizeValue to every cell, returning a new slice.
func sanitizeRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		clean := make([]string, len(row))
		for j, cell := range row {
			clean[j] = sanitizeValue(cell)
		}
		out[i] = clean
	}
	return out
}
