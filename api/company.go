package api

import (
	_ "embed"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Company is the contact block printed in the sheet header and footer.
// Organization, Version and Deleted are bookkeeping fields used only when
// selecting the best entry from the company-info endpoint.
type Company struct {
	Name        string `json:"name" yaml:"name"`
	Phone       string `json:"phone,omitempty" yaml:"phone"`
	WhatsApp    string `json:"whatsapp,omitempty" yaml:"whatsapp"`
	Email       string `json:"email,omitempty" yaml:"email"`
	AddressLine string `json:"address_line,omitempty" yaml:"address_line"`
	City        string `json:"city,omitempty" yaml:"city"`
	Region      string `json:"region,omitempty" yaml:"region"`
	Postcode    string `json:"postcode,omitempty" yaml:"postcode"`
	Country     string `json:"country,omitempty" yaml:"country"`

	Organization string `json:"organization,omitempty" yaml:"-"`
	Version      int    `json:"version,omitempty" yaml:"-"`
	Deleted      bool   `json:"deleted,omitempty" yaml:"-"`
}

// Address joins the postal parts into a single display line, skipping absent
// parts.
func (c Company) Address() string {
	parts := []string{c.AddressLine, c.City, c.Region, c.Postcode, c.Country}
	var present []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			present = append(present, strings.TrimSpace(p))
		}
	}
	return strings.Join(present, ", ")
}

//go:embed company_defaults.yaml
var companyDefaultsYAML []byte

var (
	defaultCompanyOnce sync.Once
	defaultCompany     Company
)

// DefaultCompany returns the compiled-in contact block. The values live in
// company_defaults.yaml so the fallback is a configuration table rather than
// literals scattered through the composer.
func DefaultCompany() Company {
	defaultCompanyOnce.Do(func() {
		if err := yaml.Unmarshal(companyDefaultsYAML, &defaultCompany); err != nil {
			// The embedded table is part of the build; a parse failure is a
			// programming error, not a runtime condition.
			panic("specsheet: invalid embedded company defaults: " + err.Error())
		}
	})
	return defaultCompany
}
