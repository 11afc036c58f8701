package usecase

import (
	"fmt"
	"strings"

	"github.com/prospectfinder/backend/internal/entity"
)

// Vendor records are loosely typed maps and the same field shows up under
// different keys depending on the endpoint. Each canonical field lists its
// aliases in priority order; the first populated one wins.
var contactAliases = map[string][]string{
	"name":            {"name", "fullName", "full_name", "contactName"},
	"jobTitle":        {"jobTitle", "job_title", "position", "title"},
	"managementLevel": {"managementLevel", "management_level", "seniority"},
	"department":      {"department", "mainDepartment"},
	"location":        {"location", "country", "contactLocation"},
	"industry":        {"industry", "mainIndustry", "companyIndustry"},
	"skills":          {"skills"},
	"companyId":       {"companyId", "company_id"},
	"companyName":     {"companyName", "company_name", "company"},
	"companySize":     {"companySize", "company_size", "employees"},
	"companyRevenue":  {"companyRevenue", "company_revenue", "revenue"},
	"foundedYear":     {"foundedYear", "founded_year", "companyFoundedYear"},
	"linkedinUrl":     {"linkedinUrl", "linkedin_url", "linkedin"},
}

// displayFields are always populated; when every alias is absent the
// NotAvailable sentinel goes in so the frontend never renders a hole.
var displayFields = []string{"name", "jobTitle", "location", "companyName"}

// NormalizeContact maps one raw vendor contact record onto the canonical
// prospect schema. Unrecognized keys survive in Extra rather than being
// dropped.
func NormalizeContact(record map[string]any) entity.Prospect {
	fields := make(map[string]string, len(contactAliases))
	consumed := make(map[string]bool)

	for canonical, aliases := range contactAliases {
		for _, alias := range aliases {
			raw, ok := record[alias]
			if !ok {
				continue
			}
			consumed[alias] = true
			if fields[canonical] == "" {
				fields[canonical] = stringify(raw)
			}
		}
	}

	for _, f := range displayFields {
		if fields[f] == "" {
			fields[f] = entity.NotAvailable
		}
	}

	p := entity.Prospect{
		ContactID:       stringify(record["contactId"]),
		Name:            fields["name"],
		JobTitle:        fields["jobTitle"],
		ManagementLevel: fields["managementLevel"],
		Department:      fields["department"],
		Location:        fields["location"],
		Industry:        fields["industry"],
		Skills:          fields["skills"],
		CompanyID:       fields["companyId"],
		CompanyName:     fields["companyName"],
		CompanySize:     fields["companySize"],
		CompanyRevenue:  fields["companyRevenue"],
		FoundedYear:     intify(record, "foundedYear", "founded_year", "companyFoundedYear"),
		LinkedinURL:     fields["linkedinUrl"],
		Emails:          stringList(record, "emails", "emailAddresses"),
		Phones:          stringList(record, "phones", "phoneNumbers"),
		HasEmail:        boolify(record["hasEmails"]) || boolify(record["hasEmail"]),
		HasPhone:        boolify(record["hasPhones"]) || boolify(record["hasPhone"]),
		HasDirectPhone:  boolify(record["hasDirectPhone"]) || boolify(record["hasDirectPhones"]),
	}
	if p.ContactID == "" {
		p.ContactID = stringify(record["id"])
		consumed["id"] = true
	}
	consumed["contactId"] = true
	for _, k := range []string{"emails", "emailAddresses", "phones", "phoneNumbers",
		"hasEmails", "hasEmail", "hasPhones", "hasPhone", "hasDirectPhone", "hasDirectPhones", "company"} {
		consumed[k] = true
	}

	if len(p.Emails) > 0 {
		p.HasEmail = true
	}
	if len(p.Phones) > 0 {
		p.HasPhone = true
	}

	for key, value := range record {
		if consumed[key] {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]any)
		}
		p.Extra[key] = value
	}

	return p
}

// NormalizeCompany extracts the nested company block of an enriched contact,
// when the vendor sent one.
func NormalizeCompany(record map[string]any) *entity.Company {
	block, ok := record["company"].(map[string]any)
	if !ok {
		return nil
	}

	c := &entity.Company{
		CompanyID:    firstString(block, "id", "companyId"),
		Name:         firstString(block, "name", "companyName"),
		Domain:       firstString(block, "domain", "fqdn", "website"),
		Description:  firstString(block, "description"),
		LogoURL:      firstString(block, "logo", "logoUrl"),
		MainIndustry: firstString(block, "mainIndustry", "industry"),
		SubIndustry:  firstString(block, "subIndustry"),
		HasEmail:     boolify(block["hasEmails"]) || boolify(block["hasEmail"]),
		HasPhone:     boolify(block["hasPhones"]) || boolify(block["hasPhone"]),
	}

	if emp, ok := block["employees"].(map[string]any); ok {
		c.EmployeesMin = int(numify(emp["min"]))
		c.EmployeesMax = int(numify(emp["max"]))
	}
	if rev, ok := block["revenue"].(map[string]any); ok {
		c.RevenueMin = int64(numify(rev["min"]))
		c.RevenueMax = int64(numify(rev["max"]))
	}

	if c.CompanyID == "" {
		return nil
	}
	return c
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := stringify(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := stringify(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func boolify(v any) bool {
	b, _ := v.(bool)
	return b
}

func numify(v any) float64 {
	f, _ := v.(float64)
	return f
}

func intify(record map[string]any, keys ...string) int {
	for _, k := range keys {
		if v, ok := record[k]; ok {
			return int(numify(v))
		}
	}
	return 0
}

// stringList flattens the email/phone shapes the vendor uses: plain strings,
// or objects carrying the value under "email", "address" or "number".
func stringList(record map[string]any, keys ...string) []string {
	for _, k := range keys {
		items, ok := record[k].([]any)
		if !ok {
			continue
		}
		var out []string
		for _, item := range items {
			switch t := item.(type) {
			case string:
				if t != "" {
					out = append(out, t)
				}
			case map[string]any:
				if s := firstString(t, "email", "address", "number", "internationalNumber", "localizedNumber"); s != "" {
					out = append(out, s)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
