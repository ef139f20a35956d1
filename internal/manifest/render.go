package manifest

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

func (m *Manifest) document() document {
	return document{
		SchemaVersion:       m.SchemaVersion,
		NameForHuman:        m.NameForHuman,
		NameForModel:        m.NameForModel,
		LogoURL:             m.LogoURL.String(),
		ContactEmail:        m.ContactEmail,
		LegalInfoURL:        m.LegalInfoURL.String(),
		API:                 apiDocument{Type: m.API.Type, URL: m.API.URL.String()},
		Auth:                m.Auth.document(),
		DescriptionForHuman: m.DescriptionForHuman,
		DescriptionForModel: m.DescriptionForModel,
	}
}

// MarshalJSON emits the manifest in schema order.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.document())
}

// JSON renders the manifest as indented JSON.
func (m *Manifest) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(m.document(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return data, nil
}

// YAML renders the manifest as YAML.
func (m *Manifest) YAML() ([]byte, error) {
	data, err := yaml.Marshal(m.document())
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return data, nil
}
