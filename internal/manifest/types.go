package manifest

import "net/url"

// Manifest describes the plugin to discovery clients: its names, logo,
// contact details, API location and authentication requirements. A built
// Manifest is never mutated.
type Manifest struct {
	SchemaVersion       string
	NameForHuman        string
	NameForModel        string
	LogoURL             *url.URL
	ContactEmail        string
	LegalInfoURL        *url.URL
	API                 API
	Auth                Auth
	DescriptionForHuman string
	DescriptionForModel string
}

// API points at the machine-readable API specification.
type API struct {
	Type string
	URL  *url.URL
}

// document is the wire shape of a manifest. Field order is the serialized
// order; optional auth fields are omitted when absent.
type document struct {
	SchemaVersion       string       `json:"schema_version" yaml:"schema_version" mapstructure:"schema_version"`
	NameForHuman        string       `json:"name_for_human" yaml:"name_for_human" mapstructure:"name_for_human"`
	NameForModel        string       `json:"name_for_model" yaml:"name_for_model" mapstructure:"name_for_model"`
	LogoURL             string       `json:"logo_url" yaml:"logo_url" mapstructure:"logo_url"`
	ContactEmail        string       `json:"contact_email" yaml:"contact_email" mapstructure:"contact_email"`
	LegalInfoURL        string       `json:"legal_info_url" yaml:"legal_info_url" mapstructure:"legal_info_url"`
	API                 apiDocument  `json:"api" yaml:"api" mapstructure:"api"`
	Auth                authDocument `json:"auth" yaml:"auth" mapstructure:"auth"`
	DescriptionForHuman string       `json:"description_for_human" yaml:"description_for_human" mapstructure:"description_for_human"`
	DescriptionForModel string       `json:"description_for_model" yaml:"description_for_model" mapstructure:"description_for_model"`
}

type apiDocument struct {
	Type string `json:"type" yaml:"type" mapstructure:"type"`
	URL  string `json:"url" yaml:"url" mapstructure:"url"`
}

type authDocument struct {
	Type                     string                      `json:"type" yaml:"type" mapstructure:"type"`
	ClientURL                *string                     `json:"client_url,omitempty" yaml:"client_url,omitempty" mapstructure:"client_url"`
	AuthorizationURL         *string                     `json:"authorization_url,omitempty" yaml:"authorization_url,omitempty" mapstructure:"authorization_url"`
	AuthorizationContentType *string                     `json:"authorization_content_type,omitempty" yaml:"authorization_content_type,omitempty" mapstructure:"authorization_content_type"`
	Scope                    *string                     `json:"scope,omitempty" yaml:"scope,omitempty" mapstructure:"scope"`
	VerificationTokens       *verificationTokensDocument `json:"verification_tokens,omitempty" yaml:"verification_tokens,omitempty" mapstructure:"verification_tokens"`
}

type verificationTokensDocument struct {
	OpenAI string `json:"openai" yaml:"openai" mapstructure:"openai"`
}

// keys lists every manifest path addressable from the environment.
var keys = []string{
	"schema_version",
	"name_for_human",
	"name_for_model",
	"logo_url",
	"contact_email",
	"legal_info_url",
	"api.type",
	"api.url",
	"auth.type",
	"auth.client_url",
	"auth.authorization_url",
	"auth.authorization_content_type",
	"auth.scope",
	"auth.verification_tokens.openai",
	"description_for_human",
	"description_for_model",
}
