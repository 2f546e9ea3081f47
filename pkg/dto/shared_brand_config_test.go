package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedBrandConfigDTO_Create(t *testing.T) {
	d := &SharedBrandConfigDTO{
		Name:           String("Spring Theme"),
		BrandConfigMD5: String("a1f9b2c3d4e5f60718293a4b5c6d7e8f"),
	}

	fields, err := d.APIFields()
	require.NoError(t, err)

	byName := fieldMap(fields)
	assert.Equal(t, "Spring Theme", byName["shared_brand_config[name]"])
	assert.Equal(t, "a1f9b2c3d4e5f60718293a4b5c6d7e8f", byName["shared_brand_config[brand_config_md5]"])
}

func TestSharedBrandConfigDTO_CreateValidation(t *testing.T) {
	t.Run("missing md5", func(t *testing.T) {
		d := &SharedBrandConfigDTO{Name: String("No Hash")}

		fields, err := d.APIFields()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "brand_config_md5 is required")
		// Validation failure blocks serialization entirely.
		assert.Nil(t, fields)
	})

	t.Run("missing name", func(t *testing.T) {
		d := &SharedBrandConfigDTO{BrandConfigMD5: String("abc123")}

		_, err := d.APIFields()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})
}

func TestSharedBrandConfigDTO_Update(t *testing.T) {
	t.Run("one field is enough", func(t *testing.T) {
		d := &SharedBrandConfigDTO{Name: String("Renamed")}

		fields, err := d.UpdateAPIFields()
		require.NoError(t, err)
		require.Len(t, fields, 1)
		assert.Equal(t, "shared_brand_config[name]", fields[0].Name)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		d := &SharedBrandConfigDTO{}

		fields, err := d.UpdateAPIFields()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one of")
		assert.Nil(t, fields)
	})
}

func TestNewSharedBrandConfigDTO(t *testing.T) {
	t.Run("camelCase keys", func(t *testing.T) {
		d, err := NewSharedBrandConfigDTO(map[string]any{
			"brandConfigMd5": "feedface",
			"name":           "Camel In",
		})
		require.NoError(t, err)

		require.NotNil(t, d.BrandConfigMD5)
		assert.Equal(t, "feedface", *d.BrandConfigMD5)
		require.NotNil(t, d.Name)
		assert.Equal(t, "Camel In", *d.Name)
	})

	// The digit in brand_config_md5 must not break key matching: the
	// wire name already is snake_case and has to land on the field.
	t.Run("snake_case digit-bearing key", func(t *testing.T) {
		d, err := NewSharedBrandConfigDTO(map[string]any{
			"brand_config_md5": "feedface",
			"name":             "Snake In",
		})
		require.NoError(t, err)

		require.NotNil(t, d.BrandConfigMD5)
		assert.Equal(t, "feedface", *d.BrandConfigMD5)
		require.NoError(t, d.Validate())
	})
}
