package directory

// Partition groups merged records by category. Categories keep first-seen
// order and records keep their original relative order; keys are exact
// strings, no case or whitespace normalization.
type Partition struct {
	Categories []string
	ByCategory map[string][]MergedRecord
}

// PartitionByCategory derives the category view of the merged set. Every
// record lands in exactly one bucket: the category on its summary.
func PartitionByCategory(records []MergedRecord) Partition {
	p := Partition{ByCategory: make(map[string][]MergedRecord)}
	for _, rec := range records {
		cat := rec.Category()
		if _, seen := p.ByCategory[cat]; !seen {
			p.Categories = append(p.Categories, cat)
		}
		p.ByCategory[cat] = append(p.ByCategory[cat], rec)
	}
	return p
}
