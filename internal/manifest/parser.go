package manifest

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jhaveripatric/plugin-server/internal/config"
	"github.com/jhaveripatric/plugin-server/internal/layered"
)

// Parse reads a serialized manifest (JSON or YAML) and validates it the same
// way Load does.
func Parse(data []byte) (*Manifest, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &layered.DecodeError{Target: "manifest", Err: err}
	}
	return fromDocument(doc)
}

func fromDocument(doc document) (*Manifest, error) {
	required := []struct {
		field string
		value string
	}{
		{"schema_version", doc.SchemaVersion},
		{"name_for_human", doc.NameForHuman},
		{"name_for_model", doc.NameForModel},
		{"contact_email", doc.ContactEmail},
		{"api.type", doc.API.Type},
		{"description_for_human", doc.DescriptionForHuman},
		{"description_for_model", doc.DescriptionForModel},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, fieldError(r.field, fmt.Errorf("is required"))
		}
	}

	if _, err := mail.ParseAddress(doc.ContactEmail); err != nil {
		return nil, fieldError("contact_email", err)
	}

	logoURL, err := config.ParseAbsoluteURL(doc.LogoURL)
	if err != nil {
		return nil, fieldError("logo_url", err)
	}
	legalInfoURL, err := config.ParseAbsoluteURL(doc.LegalInfoURL)
	if err != nil {
		return nil, fieldError("legal_info_url", err)
	}
	apiURL, err := config.ParseAbsoluteURL(doc.API.URL)
	if err != nil {
		return nil, fieldError("api.url", err)
	}

	auth, err := doc.Auth.toAuth()
	if err != nil {
		return nil, err
	}

	return &Manifest{
		SchemaVersion:       doc.SchemaVersion,
		NameForHuman:        doc.NameForHuman,
		NameForModel:        doc.NameForModel,
		LogoURL:             logoURL,
		ContactEmail:        doc.ContactEmail,
		LegalInfoURL:        legalInfoURL,
		API:                 API{Type: doc.API.Type, URL: apiURL},
		Auth:                auth,
		DescriptionForHuman: doc.DescriptionForHuman,
		DescriptionForModel: doc.DescriptionForModel,
	}, nil
}

func (d authDocument) toAuth() (Auth, error) {
	kind := AuthType(strings.TrimSpace(d.Type))
	if kind == "" {
		return nil, fieldError("auth.type", fmt.Errorf("is required"))
	}

	var (
		fields AuthFields
		err    error
	)
	if fields.ClientURL, err = optionalURL("auth.client_url", d.ClientURL); err != nil {
		return nil, err
	}
	if fields.AuthorizationURL, err = optionalURL("auth.authorization_url", d.AuthorizationURL); err != nil {
		return nil, err
	}
	fields.AuthorizationContentType = d.AuthorizationContentType
	fields.Scope = d.Scope
	if d.VerificationTokens != nil {
		if d.VerificationTokens.OpenAI == "" {
			return nil, fieldError("auth.verification_tokens.openai", fmt.Errorf("is required"))
		}
		fields.VerificationTokens = &VerificationTokens{OpenAI: d.VerificationTokens.OpenAI}
	}

	if kind != AuthOAuth {
		return &SimpleAuth{Kind: kind, AuthFields: fields}, nil
	}
	return NewOAuth(fields)
}

func optionalURL(field string, raw *string) (*url.URL, error) {
	if raw == nil {
		return nil, nil
	}
	u, err := config.ParseAbsoluteURL(*raw)
	if err != nil {
		return nil, fieldError(field, err)
	}
	return u, nil
}

func fieldError(field string, err error) error {
	return &layered.DecodeError{Target: "manifest", Field: field, Err: err}
}
