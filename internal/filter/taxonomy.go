package filter

import "strings"

// IndustryEntry is one row of the static industry taxonomy. Main industries
// carry ids below 100, sub industries the 1xx range of their parent.
type IndustryEntry struct {
	ID    int
	Label string
	Kind  string // "main" | "sub"
}

var industryTaxonomy = []IndustryEntry{
	{1, "Software & Technology", "main"},
	{2, "Financial Services", "main"},
	{3, "Healthcare", "main"},
	{4, "Manufacturing", "main"},
	{5, "Retail & E-commerce", "main"},
	{6, "Education", "main"},
	{7, "Energy & Utilities", "main"},
	{8, "Real Estate", "main"},
	{9, "Media & Entertainment", "main"},
	{10, "Transportation & Logistics", "main"},

	{101, "SaaS", "sub"},
	{102, "Cybersecurity", "sub"},
	{103, "Artificial Intelligence", "sub"},
	{201, "Banking", "sub"},
	{202, "Insurance", "sub"},
	{203, "Venture Capital", "sub"},
	{301, "Hospitals", "sub"},
	{302, "Pharmaceuticals", "sub"},
	{303, "Medical Devices", "sub"},
	{401, "Automotive", "sub"},
	{402, "Electronics", "sub"},
	{501, "Consumer Goods", "sub"},
	{502, "Food & Beverage", "sub"},
	{601, "Higher Education", "sub"},
	{602, "E-learning", "sub"},
	{701, "Renewables", "sub"},
	{702, "Oil & Gas", "sub"},
	{901, "Publishing", "sub"},
	{902, "Gaming", "sub"},
	{1001, "Freight & Shipping", "sub"},
}

// LookupIndustry resolves a label within a kind. Matching is case-insensitive.
func LookupIndustry(label, kind string) (IndustryEntry, bool) {
	for _, e := range industryTaxonomy {
		if e.Kind == kind && strings.EqualFold(e.Label, label) {
			return e, true
		}
	}
	return IndustryEntry{}, false
}

// IndustryLabels returns all labels of a kind, for suggestion endpoints.
func IndustryLabels(kind string) []string {
	var out []string
	for _, e := range industryTaxonomy {
		if e.Kind == kind {
			out = append(out, e.Label)
		}
	}
	return out
}
