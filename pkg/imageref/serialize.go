package imageref

import (
	"encoding/json"

	"github.com/opencontainers/go-digest"
	"gopkg.in/yaml.v3"
)

// referenceFields is the wire form of a Reference: a flat object with
// one field per component.
type referenceFields struct {
	Registry string `json:"registry,omitempty" yaml:"registry,omitempty"`
	Name     string `json:"name" yaml:"name"`
	Tag      string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Digest   string `json:"digest,omitempty" yaml:"digest,omitempty"`
}

func (r Reference) fields() referenceFields {
	return referenceFields{
		Registry: r.Registry,
		Name:     r.Name,
		Tag:      r.Tag,
		Digest:   r.Digest.String(),
	}
}

// setFields validates the decoded wire fields and, only on success,
// replaces the receiver. Structured data goes through the same
// component validation as Parse and is never trusted as-is.
func (r *Reference) setFields(f referenceFields) error {
	ref := Reference{
		Registry: f.Registry,
		Name:     f.Name,
		Tag:      f.Tag,
		Digest:   digest.Digest(f.Digest),
	}
	if err := ref.Validate(); err != nil {
		return err
	}
	*r = ref
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.fields())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Reference) UnmarshalJSON(data []byte) error {
	var f referenceFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	return r.setFields(f)
}

// MarshalYAML implements yaml.Marshaler.
func (r Reference) MarshalYAML() (any, error) {
	return r.fields(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Reference) UnmarshalYAML(node *yaml.Node) error {
	var f referenceFields
	if err := node.Decode(&f); err != nil {
		return err
	}
	return r.setFields(f)
}
