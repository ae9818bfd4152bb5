// AngelaMos | 2026
// documents.go

package settings

import (
	"strings"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

const (
	defaultCopyright = "© 2025 All rights reserved"
	defaultCountry   = "India"
)

// Every document type normalizes itself after a merge: defaults fill in,
// strings are trimmed and emails lowercased.
type document interface {
	normalize()
}

type Address struct {
	Street  string `json:"street"  validate:"required"`
	City    string `json:"city"    validate:"required"`
	State   string `json:"state"   validate:"required"`
	Pincode string `json:"pincode" validate:"required,len=6,numeric"`
	Country string `json:"country" validate:"required"`
}

type BusinessInfo struct {
	Name    string  `json:"name"    validate:"required,max=200"`
	Address Address `json:"address"`
	Phone   string  `json:"phone"   validate:"required,mobile"`
	Email   string  `json:"email"   validate:"required,contact_email"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"  validate:"omitempty,social=facebook.com"`
	Instagram string `json:"instagram,omitempty" validate:"omitempty,social=instagram.com"`
	Twitter   string `json:"twitter,omitempty"   validate:"omitempty,social=twitter.com"`
	LinkedIn  string `json:"linkedin,omitempty"  validate:"omitempty,social=linkedin.com"`
	YouTube   string `json:"youtube,omitempty"   validate:"omitempty,social=youtube.com"`
	WhatsApp  string `json:"whatsapp,omitempty"  validate:"omitempty,mobile"`
}

type SEO struct {
	MetaTitle       string   `json:"metaTitle,omitempty"       validate:"max=60"`
	MetaDescription string   `json:"metaDescription,omitempty" validate:"max=160"`
	MetaKeywords    []string `json:"metaKeywords,omitempty"`
}

type Website struct {
	Title        string             `json:"title"                 validate:"required,max=100"`
	Tagline      string             `json:"tagline,omitempty"     validate:"max=200"`
	Description  string             `json:"description,omitempty" validate:"max=500"`
	Logo         core.Asset         `json:"logo"`
	Favicon      core.OptionalAsset `json:"favicon"`
	BusinessInfo BusinessInfo       `json:"businessInfo"`
	SocialMedia  SocialMedia        `json:"socialMedia"`
	SEO          SEO                `json:"seo"`
	Copyright    string             `json:"copyright"`
	IsActive     *bool              `json:"isActive"`
}

func (w *Website) normalize() {
	w.Title = strings.TrimSpace(w.Title)
	w.Tagline = strings.TrimSpace(w.Tagline)
	w.Description = strings.TrimSpace(w.Description)
	w.BusinessInfo.Name = strings.TrimSpace(w.BusinessInfo.Name)
	w.BusinessInfo.Phone = strings.TrimSpace(w.BusinessInfo.Phone)
	w.BusinessInfo.Email = normalizeEmail(w.BusinessInfo.Email)

	addr := &w.BusinessInfo.Address
	addr.Street = strings.TrimSpace(addr.Street)
	addr.City = strings.TrimSpace(addr.City)
	addr.State = strings.TrimSpace(addr.State)
	addr.Pincode = strings.TrimSpace(addr.Pincode)
	addr.Country = strings.TrimSpace(addr.Country)
	if addr.Country == "" {
		addr.Country = defaultCountry
	}

	if w.Copyright == "" {
		w.Copyright = defaultCopyright
	}
	w.IsActive = defaultTrue(w.IsActive)
}

type Feature struct {
	Key         string     `json:"key"         validate:"required"`
	Title       string     `json:"title"       validate:"required,max=100"`
	Description string     `json:"description" validate:"required,max=300"`
	Image       core.Asset `json:"image"`
}

type Metric struct {
	Key         string `json:"key"         validate:"required"`
	Title       string `json:"title"       validate:"required,max=100"`
	MetricValue string `json:"metricValue" validate:"required,max=50"`
}

type Home struct {
	HeroTitle          string    `json:"heroTitle"          validate:"required,max=200"`
	HeroDescription    string    `json:"heroDescription"    validate:"required,max=500"`
	FeaturedProjects   []string  `json:"featuredProjects"   validate:"dive,uuid"`
	FeatureTitle       string    `json:"featureTitle"       validate:"required,max=200"`
	FeatureDescription string    `json:"featureDescription" validate:"required,max=500"`
	Features           []Feature `json:"features"           validate:"max=3,unique=Key,dive"`
	LegacyTitle        string    `json:"legacyTitle"        validate:"required,max=200"`
	LegacyDescription  string    `json:"legacyDescription"  validate:"required,max=1000"`
	LegacyAwardTitle   string    `json:"legacyAwardTitle,omitempty"  validate:"max=100"`
	LegacyAwardYears   string    `json:"legacyAwardYears,omitempty"  validate:"max=50"`
	TopTestimonial     *string   `json:"topTestimonial"     validate:"omitempty,uuid"`
	Metrics            []Metric  `json:"metrics"            validate:"max=3,unique=Key,dive"`
	IsActive           *bool     `json:"isActive"`
}

func (h *Home) normalize() {
	h.HeroTitle = strings.TrimSpace(h.HeroTitle)
	h.HeroDescription = strings.TrimSpace(h.HeroDescription)
	h.FeatureTitle = strings.TrimSpace(h.FeatureTitle)
	h.FeatureDescription = strings.TrimSpace(h.FeatureDescription)
	h.LegacyTitle = strings.TrimSpace(h.LegacyTitle)
	h.LegacyDescription = strings.TrimSpace(h.LegacyDescription)

	if h.FeaturedProjects == nil {
		h.FeaturedProjects = []string{}
	}
	if h.Features == nil {
		h.Features = []Feature{}
	}
	for i := range h.Features {
		h.Features[i].Key = strings.TrimSpace(h.Features[i].Key)
	}
	if h.Metrics == nil {
		h.Metrics = []Metric{}
	}
	for i := range h.Metrics {
		h.Metrics[i].Key = strings.TrimSpace(h.Metrics[i].Key)
	}
	if h.TopTestimonial != nil && *h.TopTestimonial == "" {
		h.TopTestimonial = nil
	}
	h.IsActive = defaultTrue(h.IsActive)
}

type Office struct {
	UniqueKey     string `json:"uniqueKey"     validate:"required"`
	OfficeName    string `json:"officeName"    validate:"required,max=200"`
	OfficeAddress string `json:"officeAddress" validate:"required,max=500"`
	OfficeEmail   string `json:"officeEmail"   validate:"required,contact_email"`
	OfficeMobile  string `json:"officeMobile"  validate:"required,mobile"`
}

// FormField configures one input of the public contact form. Rows only
// applies to the message textarea.
type FormField struct {
	Enabled     bool   `json:"enabled"`
	Mandatory   bool   `json:"mandatory"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Type        string `json:"type"`
	Rows        *int   `json:"rows,omitempty" validate:"omitempty,min=3,max=10"`
}

type FormFields struct {
	Name    FormField `json:"name"`
	Email   FormField `json:"email"`
	Phone   FormField `json:"phone"`
	Subject FormField `json:"subject"`
	Message FormField `json:"message"`
	Company FormField `json:"company"`
}

// formFieldOrder is the order fields are reported in by the form config.
var formFieldOrder = []string{"name", "email", "phone", "subject", "message", "company"}

func (f *FormFields) byKey() map[string]FormField {
	return map[string]FormField{
		"name":    f.Name,
		"email":   f.Email,
		"phone":   f.Phone,
		"subject": f.Subject,
		"message": f.Message,
		"company": f.Company,
	}
}

type Contact struct {
	HeroDescription     string     `json:"heroDescription"         validate:"required,max=500"`
	Email               string     `json:"email"                   validate:"required,contact_email"`
	EmailMessage        string     `json:"emailMessage,omitempty"  validate:"max=300"`
	Address             string     `json:"address"                 validate:"required,max=500"`
	HeadOfficeDetails   []Office   `json:"headOfficeDetails"       validate:"unique=UniqueKey,dive"`
	ContactUsFormFields FormFields `json:"contactUsFormFields"`
	GoogleMapPinLink    string     `json:"googleMapPinLink,omitempty" validate:"omitempty,google_maps"`
	IsActive            *bool      `json:"isActive"`
}

func (c *Contact) normalize() {
	c.HeroDescription = strings.TrimSpace(c.HeroDescription)
	c.Email = normalizeEmail(c.Email)
	c.Address = strings.TrimSpace(c.Address)
	c.GoogleMapPinLink = strings.TrimSpace(c.GoogleMapPinLink)

	if c.HeadOfficeDetails == nil {
		c.HeadOfficeDetails = []Office{}
	}
	for i := range c.HeadOfficeDetails {
		o := &c.HeadOfficeDetails[i]
		o.UniqueKey = strings.TrimSpace(o.UniqueKey)
		o.OfficeEmail = normalizeEmail(o.OfficeEmail)
	}

	// Field types are fixed; only labels, flags and rows are editable.
	f := &c.ContactUsFormFields
	f.Name.Type = "text"
	f.Email.Type = "email"
	f.Phone.Type = "tel"
	f.Subject.Type = "text"
	f.Message.Type = "textarea"
	f.Company.Type = "text"
	if f.Message.Rows == nil {
		rows := 5
		f.Message.Rows = &rows
	}

	c.IsActive = defaultTrue(c.IsActive)
}

// defaultFormFields is the form a contact document starts with before any
// request fields are applied.
func defaultFormFields() FormFields {
	rows := 5
	return FormFields{
		Name:    FormField{true, true, "Name", "Enter your name", "text", nil},
		Email:   FormField{true, true, "Email", "Enter your email", "email", nil},
		Phone:   FormField{true, true, "Phone", "Enter your phone number", "tel", nil},
		Subject: FormField{true, false, "Subject", "Enter subject", "text", nil},
		Message: FormField{true, true, "Message", "Enter your message", "textarea", &rows},
		Company: FormField{false, false, "Company", "Enter your company name", "text", nil},
	}
}

type Value struct {
	UniqueKey   string `json:"uniqueKey"   validate:"required"`
	Title       string `json:"title"       validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
}

type HistoryEntry struct {
	Year        int    `json:"year"        validate:"required,history_year"`
	Title       string `json:"title"       validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
}

type Statistic struct {
	UniqueKey string `json:"uniqueKey" validate:"required"`
	Title     string `json:"title"     validate:"required,max=100"`
	StatValue string `json:"statValue" validate:"required,max=50"`
}

type Leader struct {
	UniqueKey    string     `json:"uniqueKey"    validate:"required"`
	Name         string     `json:"name"         validate:"required,max=100"`
	Designation  string     `json:"designation"  validate:"required,max=100"`
	ProfileImage core.Asset `json:"profileImage"`
}

type AboutUs struct {
	HeroDescription     string         `json:"heroDescription"     validate:"required,max=500"`
	MissionStatement    string         `json:"missionStatement"    validate:"required,max=200"`
	MissionDescription  string         `json:"missionDescription"  validate:"required,max=1000"`
	Values              []Value        `json:"values"              validate:"max=4,unique=UniqueKey,dive"`
	History             []HistoryEntry `json:"history"             validate:"unique=Year,dive"`
	CompanyStatistics   []Statistic    `json:"companyStatistics"   validate:"unique=UniqueKey,dive"`
	LeadershipDetails   []Leader       `json:"leadershipDetails"   validate:"unique=UniqueKey,dive"`
	FeaturedTestimonial *string        `json:"featuredTestimonial" validate:"omitempty,uuid"`
}

func (a *AboutUs) normalize() {
	a.HeroDescription = strings.TrimSpace(a.HeroDescription)
	a.MissionStatement = strings.TrimSpace(a.MissionStatement)
	a.MissionDescription = strings.TrimSpace(a.MissionDescription)

	if a.Values == nil {
		a.Values = []Value{}
	}
	if a.History == nil {
		a.History = []HistoryEntry{}
	}
	if a.CompanyStatistics == nil {
		a.CompanyStatistics = []Statistic{}
	}
	if a.LeadershipDetails == nil {
		a.LeadershipDetails = []Leader{}
	}
	if a.FeaturedTestimonial != nil && *a.FeaturedTestimonial == "" {
		a.FeaturedTestimonial = nil
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func defaultTrue(b *bool) *bool {
	if b != nil {
		return b
	}
	t := true
	return &t
}
