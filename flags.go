package specsheet

import (
	"github.com/flanksource/commons/logger"
	"github.com/spf13/pflag"
)

// AllFlags aggregates every CLI-tunable knob.
type AllFlags struct {
	Options
	OutputDir string
	logger.Flags
}

var Flags = AllFlags{
	OutputDir: ".",
	Flags: logger.Flags{
		Level:        "info",
		LevelCount:   0,
		JsonLogs:     false,
		ReportCaller: false,
		LogToStderr:  true,
	},
}

// BindAllFlags registers the shared flags on a pflag set (for cobra).
func BindAllFlags(flags *pflag.FlagSet) *AllFlags {
	flags.CountVarP(&Flags.Flags.LevelCount, "loglevel", "v", "Increase logging level")
	flags.StringVar(&Flags.Flags.Level, "log-level", "info", "Set the default log level")
	flags.BoolVar(&Flags.Flags.JsonLogs, "json-logs", false, "Print logs in json format to stderr")
	flags.BoolVar(&Flags.Flags.ReportCaller, "report-caller", false, "Report log caller info")
	flags.BoolVar(&Flags.Flags.LogToStderr, "log-to-stderr", true, "Log to stderr instead of stdout")

	flags.StringVar(&Flags.BaseURL, "base-url", Flags.BaseURL, "Storefront API origin for company and collection lookups")
	flags.StringVar(&Flags.TargetURL, "url", Flags.TargetURL, "Product page URL encoded as the QR code")
	flags.StringVar(&Flags.QRPayload, "qr", Flags.QRPayload, "Explicit QR payload (overrides --url)")
	flags.StringVar(&Flags.LogoURL, "logo", Flags.LogoURL, "Company logo URL (raster or SVG)")
	flags.StringVar(&Flags.Organization, "organization", Flags.Organization, "Preferred company-info organization")
	flags.StringVar(&Flags.CompanyName, "company", Flags.CompanyName, "Override the displayed company name")
	flags.StringVar(&Flags.Phone, "phone", Flags.Phone, "Override the contact phone number")
	flags.StringVar(&Flags.Email, "email", Flags.Email, "Override the contact email")
	flags.StringVarP(&Flags.OutputDir, "output", "o", Flags.OutputDir, "Directory to write the generated sheet into")

	return &Flags
}

// UseFlags applies the parsed flag values to the process.
func (a AllFlags) UseFlags() {
	logger.Configure(a.Flags)
}
