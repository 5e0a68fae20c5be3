// Package directory defines the member-directory record model shared by the
// retrieval pipeline and the export layer.
package directory

import "strings"

// MemberSummary holds the listing-level fields for one member as returned by
// the paginated member-list endpoint. Records are immutable once fetched and
// keyed by membership number.
type MemberSummary struct {
	CompanyName        string `json:"company_name"`
	MembershipNo       string `json:"membership_no"`
	MembershipType     string `json:"membership_type"`
	MemberCategory     string `json:"member_category"`
	LogoURL            string `json:"company_logo"`
	EstablishmentMonth string `json:"establishment_month"`
	EstablishmentYear  string `json:"establishment_year"`
	WebsiteURL         string `json:"FullUrl"`
}

// ProfileEmail is one entry of the profile email collection.
type ProfileEmail struct {
	Email string `json:"email"`
}

// BusinessActivity is one entry of the profile business-activity collection.
type BusinessActivity struct {
	Activity string `json:"activity"`
}

// MemberProfile holds the detail-endpoint fields for one member. The field set
// is disjoint from MemberSummary, so merging needs no conflict resolution.
type MemberProfile struct {
	OfficeAddress      string             `json:"current_office_address"`
	PostalCode         string             `json:"current_office_postal_code"`
	Phone              string             `json:"work_phone"`
	Emails             []ProfileEmail     `json:"emails"`
	LegalStructure     string             `json:"legal_structure"`
	TINNumber          string             `json:"tin_number"`
	TradeLicenseNo     string             `json:"trade_license_no"`
	ValidTill          string             `json:"valid_till"`
	BusinessActivities []BusinessActivity `json:"business_activity"`
}

// MergedRecord joins a summary with its profile for one membership number.
type MergedRecord struct {
	Summary MemberSummary `json:"summary"`
	Profile MemberProfile `json:"profile"`
}

// MembershipNo returns the record key.
func (r MergedRecord) MembershipNo() string { return r.Summary.MembershipNo }

// Category returns the partition key: the category value present on the summary.
func (r MergedRecord) Category() string { return r.Summary.MemberCategory }

// Header returns the fixed output column schema. Row values align with this
// order for every output format.
func Header() []string {
	return []string{
		"Company Name",
		"Membership No",
		"Membership Type",
		"Member Category",
		"Logo URL",
		"Established",
		"Website",
		"Office Address",
		"Postal Code",
		"Phone",
		"Email",
		"Legal Structure",
		"TIN Number",
		"Trade License No",
		"Valid Till",
		"Business Activities",
	}
}

// Row renders the record as output cells in Header order. Empty source fields
// surface as "N/A" to keep the spreadsheets readable.
func (r MergedRecord) Row() []string {
	return []string{
		orNA(r.Summary.CompanyName),
		orNA(r.Summary.MembershipNo),
		orNA(r.Summary.MembershipType),
		orNA(r.Summary.MemberCategory),
		orNA(r.Summary.LogoURL),
		orNA(strings.TrimSpace(r.Summary.EstablishmentMonth + " " + r.Summary.EstablishmentYear)),
		orNA(r.Summary.WebsiteURL),
		orNA(r.Profile.OfficeAddress),
		orNA(r.Profile.PostalCode),
		orNA(r.Profile.Phone),
		orNA(r.primaryEmail()),
		orNA(r.Profile.LegalStructure),
		orNA(r.Profile.TINNumber),
		orNA(r.Profile.TradeLicenseNo),
		orNA(r.Profile.ValidTill),
		orNA(r.joinedActivities()),
	}
}

func (r MergedRecord) primaryEmail() string {
	if len(r.Profile.Emails) == 0 {
		return ""
	}
	return r.Profile.Emails[0].Email
}

func (r MergedRecord) joinedActivities() string {
	if len(r.Profile.BusinessActivities) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.Profile.BusinessActivities))
	for _, a := range r.Profile.BusinessActivities {
		parts = append(parts, a.Activity)
	}
	return strings.Join(parts, ", ")
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
