package runtimeconfig

import (
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Social is a profile link rendered in the site header and footer.
type Social struct {
	Name      string `yaml:"name"`
	Href      string `yaml:"href"`
	LinkTitle string `yaml:"linkTitle"`
	Active    bool   `yaml:"active"`
}

const mailSocial = "Mail"

// ActiveSocials returns the active links with LinkTitle filled in.
func (cfg Config) ActiveSocials() []Social {
	out := make([]Social, 0, len(cfg.Socials))
	for _, social := range cfg.Socials {
		if !social.Active {
			continue
		}
		social.LinkTitle = cfg.socialTitle(social)
		out = append(out, social)
	}
	return out
}

func (cfg Config) socialTitle(social Social) string {
	if title := strings.TrimSpace(social.LinkTitle); title != "" {
		return title
	}
	if strings.EqualFold(social.Name, mailSocial) {
		return "Send an email to " + cfg.Site.Title
	}
	return fmt.Sprintf("%s on %s", cfg.Site.Title, social.Name)
}

func validateSocials(socials []Social) error {
	seen := make(map[string]struct{}, len(socials))
	for idx, social := range socials {
		err := validation.ValidateStruct(&social,
			validation.Field(&social.Name, validation.Required),
			validation.Field(&social.Href, validation.Required, validation.By(socialHref)),
		)
		if err != nil {
			return fmt.Errorf("socials[%d]: %w", idx, err)
		}
		key := strings.ToLower(strings.TrimSpace(social.Name))
		if _, dup := seen[key]; dup {
			return fmt.Errorf("socials[%d]: duplicate name %q", idx, social.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func socialHref(value any) error {
	href, _ := value.(string)
	parsed, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return validation.NewError("validation_social_href", "must be a valid url")
	}
	switch parsed.Scheme {
	case "http", "https":
		if parsed.Host == "" {
			return validation.NewError("validation_social_href", "must include a host")
		}
	case "mailto":
		if parsed.Opaque == "" {
			return validation.NewError("validation_social_href", "must include an address")
		}
	default:
		return validation.NewError("validation_social_href", "must use http, https or mailto")
	}
	return nil
}
