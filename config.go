package folio

import "github.com/goliatone/go-folio/internal/runtimeconfig"

var (
	ErrSiteTitleRequired       = runtimeconfig.ErrSiteTitleRequired
	ErrSiteURLInvalid          = runtimeconfig.ErrSiteURLInvalid
	ErrPostsPerPageInvalid     = runtimeconfig.ErrPostsPerPageInvalid
	ErrPostsPerIndexInvalid    = runtimeconfig.ErrPostsPerIndexInvalid
	ErrScheduledMarginInvalid  = runtimeconfig.ErrScheduledMarginInvalid
	ErrTimezoneInvalid         = runtimeconfig.ErrTimezoneInvalid
	ErrEditPostURLInvalid      = runtimeconfig.ErrEditPostURLInvalid
	ErrLocaleLangRequired      = runtimeconfig.ErrLocaleLangRequired
	ErrLogoDimensionsInvalid   = runtimeconfig.ErrLogoDimensionsInvalid
	ErrSocialInvalid           = runtimeconfig.ErrSocialInvalid
	ErrThemeInvalid            = runtimeconfig.ErrThemeInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrConfigDecode            = runtimeconfig.ErrConfigDecode
)

type (
	Config         = runtimeconfig.Config
	SiteConfig     = runtimeconfig.SiteConfig
	EditPostConfig = runtimeconfig.EditPostConfig
	LocaleConfig   = runtimeconfig.LocaleConfig
	LogoConfig     = runtimeconfig.LogoConfig
	Social         = runtimeconfig.Social
	ThemeConfig    = runtimeconfig.ThemeConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

// Theme variants.
const (
	VariantLight = runtimeconfig.VariantLight
	VariantDark  = runtimeconfig.VariantDark
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads and validates a YAML site configuration.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}

// ParseConfig decodes and validates YAML site configuration.
func ParseConfig(data []byte) (Config, error) {
	return runtimeconfig.Parse(data)
}

// NormalizeLoggingProvider lowercases and trims a provider name.
func NormalizeLoggingProvider(provider string) string {
	return runtimeconfig.NormalizeProvider(provider)
}
