package filter

import "github.com/prospectfinder/backend/internal/entity"

// VendorFilters is the filter object sent inside the vendor search request
// body. Empty criteria are omitted entirely, which the vendor treats as
// "match all".
type VendorFilters struct {
	Contacts  *ContactFilters `json:"contacts,omitempty"`
	Companies *CompanyFilters `json:"companies,omitempty"`
}

type ContactFilters struct {
	JobTitles   []string         `json:"jobTitles,omitempty"`
	Seniority   []any            `json:"seniority,omitempty"`
	Departments []string         `json:"departments,omitempty"`
	Locations   []VendorLocation `json:"locations,omitempty"`
	SearchText  string           `json:"searchText,omitempty"`
}

type CompanyFilters struct {
	MainIndustriesIDs []int            `json:"mainIndustriesIds,omitempty"`
	SubIndustriesIDs  []int            `json:"subIndustriesIds,omitempty"`
	Sizes             []VendorRange    `json:"sizes,omitempty"`
	Revenues          []VendorRange    `json:"revenues,omitempty"`
	Locations         []VendorLocation `json:"locations,omitempty"`
	SearchText        string           `json:"searchText,omitempty"`
}

type VendorLocation struct {
	Country string `json:"country"`
}

type VendorRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max,omitempty"`
}

// BuildContactFilters translates a FilterSet into the vendor filter payload
// for a contact search. Each populated criterion maps to exactly one vendor
// key; industry labels that miss the taxonomy are dropped.
func BuildContactFilters(fs entity.FilterSet) VendorFilters {
	var vf VendorFilters

	contacts := ContactFilters{
		JobTitles:   fs.JobTitles,
		Seniority:   TranslateSeniorities(fs.Seniorities),
		Departments: fs.Departments,
		Locations:   vendorLocations(fs.Locations),
		SearchText:  fs.SearchText,
	}
	if len(contacts.JobTitles) > 0 || len(contacts.Seniority) > 0 ||
		len(contacts.Departments) > 0 || len(contacts.Locations) > 0 ||
		contacts.SearchText != "" {
		vf.Contacts = &contacts
	}

	if companies := companyBlock(fs, ""); companies != nil {
		vf.Companies = companies
	}

	return vf
}

// BuildCompanyFilters translates a FilterSet for a company search. Free text
// targets the company side here, not the contact side.
func BuildCompanyFilters(fs entity.FilterSet) VendorFilters {
	var vf VendorFilters

	// Company searches constrain location and free text on the company block.
	if companies := companyBlock(fs, fs.SearchText); companies != nil {
		companies.Locations = vendorLocations(fs.Locations)
		vf.Companies = companies
	} else if len(fs.Locations) > 0 || fs.SearchText != "" {
		vf.Companies = &CompanyFilters{
			Locations:  vendorLocations(fs.Locations),
			SearchText: fs.SearchText,
		}
	}

	return vf
}

func companyBlock(fs entity.FilterSet, searchText string) *CompanyFilters {
	companies := CompanyFilters{
		Sizes:      vendorRanges(fs.CompanySizes),
		Revenues:   vendorRanges(fs.RevenueRanges),
		SearchText: searchText,
	}
	for _, crit := range fs.Industries {
		entry, ok := LookupIndustry(crit.Label, crit.Kind)
		if !ok {
			continue // unknown labels are dropped, not errors
		}
		if entry.Kind == "sub" {
			companies.SubIndustriesIDs = append(companies.SubIndustriesIDs, entry.ID)
		} else {
			companies.MainIndustriesIDs = append(companies.MainIndustriesIDs, entry.ID)
		}
	}

	if len(companies.MainIndustriesIDs) == 0 && len(companies.SubIndustriesIDs) == 0 &&
		len(companies.Sizes) == 0 && len(companies.Revenues) == 0 && companies.SearchText == "" {
		return nil
	}
	return &companies
}

func vendorLocations(locs []entity.LocationCriterion) []VendorLocation {
	if len(locs) == 0 {
		return nil
	}
	out := make([]VendorLocation, 0, len(locs))
	for _, l := range locs {
		if l.Country == "" {
			continue
		}
		out = append(out, VendorLocation{Country: l.Country})
	}
	return out
}

func vendorRanges(ranges []entity.RangeCriterion) []VendorRange {
	if len(ranges) == 0 {
		return nil
	}
	out := make([]VendorRange, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, VendorRange{Min: r.Min, Max: r.Max})
	}
	return out
}
