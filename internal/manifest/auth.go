package manifest

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// AuthType discriminates the authentication modes a manifest can declare.
type AuthType string

const (
	AuthNone        AuthType = "none"
	AuthServiceHTTP AuthType = "service_http"
	AuthUserHTTP    AuthType = "user_http"
	AuthOAuth       AuthType = "oauth"
)

// ErrOAuthFields is wrapped by AuthValidationError.
var ErrOAuthFields = errors.New("missing required fields for OAuth")

// AuthValidationError reports an oauth section without all of its fields.
type AuthValidationError struct {
	Missing []string
}

func (e *AuthValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrOAuthFields, strings.Join(e.Missing, ", "))
}

func (e *AuthValidationError) Unwrap() error { return ErrOAuthFields }

// Auth is the authentication section of a manifest. Its concrete type is
// either OAuth or SimpleAuth.
type Auth interface {
	Type() AuthType
	document() authDocument
}

// VerificationTokens holds the tokens a discovery client uses to prove it
// owns the OAuth client registration.
type VerificationTokens struct {
	OpenAI string
}

// AuthFields are the optional auth settings. Which of them are required
// depends on the auth type.
type AuthFields struct {
	ClientURL                *url.URL
	AuthorizationURL         *url.URL
	AuthorizationContentType *string
	Scope                    *string
	VerificationTokens       *VerificationTokens
}

func (f AuthFields) missing() []string {
	var missing []string
	if f.ClientURL == nil {
		missing = append(missing, "client_url")
	}
	if f.AuthorizationURL == nil {
		missing = append(missing, "authorization_url")
	}
	if f.AuthorizationContentType == nil {
		missing = append(missing, "authorization_content_type")
	}
	if f.Scope == nil {
		missing = append(missing, "scope")
	}
	if f.VerificationTokens == nil {
		missing = append(missing, "verification_tokens")
	}
	return missing
}

func (f AuthFields) document(kind AuthType) authDocument {
	doc := authDocument{
		Type:                     string(kind),
		AuthorizationContentType: f.AuthorizationContentType,
		Scope:                    f.Scope,
	}
	if f.ClientURL != nil {
		s := f.ClientURL.String()
		doc.ClientURL = &s
	}
	if f.AuthorizationURL != nil {
		s := f.AuthorizationURL.String()
		doc.AuthorizationURL = &s
	}
	if f.VerificationTokens != nil {
		doc.VerificationTokens = &verificationTokensDocument{OpenAI: f.VerificationTokens.OpenAI}
	}
	return doc
}

// OAuth is the oauth variant. Every field is present by construction.
type OAuth struct {
	clientURL                *url.URL
	authorizationURL         *url.URL
	authorizationContentType string
	scope                    string
	verificationTokens       VerificationTokens
}

// NewOAuth builds the oauth variant. It returns an *AuthValidationError
// naming every absent field.
func NewOAuth(f AuthFields) (*OAuth, error) {
	if missing := f.missing(); len(missing) > 0 {
		return nil, &AuthValidationError{Missing: missing}
	}

	return &OAuth{
		clientURL:                f.ClientURL,
		authorizationURL:         f.AuthorizationURL,
		authorizationContentType: *f.AuthorizationContentType,
		scope:                    *f.Scope,
		verificationTokens:       *f.VerificationTokens,
	}, nil
}

// Type implements Auth.
func (o *OAuth) Type() AuthType { return AuthOAuth }

// ClientURL is where the user is redirected on the first OAuth step.
func (o *OAuth) ClientURL() *url.URL { return o.clientURL }

// AuthorizationURL receives the token exchange POST on the second step.
func (o *OAuth) AuthorizationURL() *url.URL { return o.authorizationURL }

func (o *OAuth) AuthorizationContentType() string { return o.authorizationContentType }

func (o *OAuth) Scope() string { return o.scope }

func (o *OAuth) VerificationTokens() VerificationTokens { return o.verificationTokens }

func (o *OAuth) document() authDocument {
	tokens := o.verificationTokens
	return AuthFields{
		ClientURL:                o.clientURL,
		AuthorizationURL:         o.authorizationURL,
		AuthorizationContentType: &o.authorizationContentType,
		Scope:                    &o.scope,
		VerificationTokens:       &tokens,
	}.document(AuthOAuth)
}

// SimpleAuth covers every non-oauth mode. Its fields are carried through
// unchecked and omitted from output when nil.
type SimpleAuth struct {
	Kind AuthType
	AuthFields
}

// Type implements Auth.
func (a *SimpleAuth) Type() AuthType { return a.Kind }

func (a *SimpleAuth) document() authDocument {
	return a.AuthFields.document(a.Kind)
}
