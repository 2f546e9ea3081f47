package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/edukit/go-canvas/pkg/formenc"
)

// SharedBrandConfigDTO builds the payload for sharing a brand config
// (theme) on an account.
type SharedBrandConfigDTO struct {
	// Name under which the theme is shared.
	Name *string `json:"name"`

	// BrandConfigMD5 identifies the brand config being shared.
	BrandConfigMD5 *string `json:"brand_config_md5"`
}

// NewSharedBrandConfigDTO constructs a SharedBrandConfigDTO from a mapping
// with snake_case or camelCase keys.
func NewSharedBrandConfigDTO(in map[string]any) (*SharedBrandConfigDTO, error) {
	d := &SharedBrandConfigDTO{}
	if err := decode(in, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate enforces the create contract: both name and brand_config_md5
// are required.
func (d *SharedBrandConfigDTO) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Name, validation.Required.Error("name is required")),
		validation.Field(&d.BrandConfigMD5, validation.Required.Error("brand_config_md5 is required")),
	)
}

// ValidateUpdate enforces the update contract: at least one property must
// be set.
func (d *SharedBrandConfigDTO) ValidateUpdate() error {
	if d.Name == nil && d.BrandConfigMD5 == nil {
		return validation.NewError(
			"validation_required",
			"at least one of name or brand_config_md5 is required")
	}
	return nil
}

// Fields emits every set property under its own name, unprefixed.
func (d *SharedBrandConfigDTO) Fields() []formenc.Field {
	var fields []formenc.Field
	fields = append(fields, formenc.Flatten("name", d.Name, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("brand_config_md5", d.BrandConfigMD5, formenc.BoolNumeric)...)
	return fields
}

// APIFields validates the create contract then emits the
// shared_brand_config-prefixed payload. Validation failure aborts
// serialization; no partial payload is ever produced.
func (d *SharedBrandConfigDTO) APIFields() ([]formenc.Field, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return wrap("shared_brand_config", d.Fields()), nil
}

// UpdateAPIFields validates the update contract then emits the
// shared_brand_config-prefixed payload.
func (d *SharedBrandConfigDTO) UpdateAPIFields() ([]formenc.Field, error) {
	if err := d.ValidateUpdate(); err != nil {
		return nil, err
	}
	return wrap("shared_brand_config", d.Fields()), nil
}
