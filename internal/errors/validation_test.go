package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthlight/charsheet/internal/errors"
)

func TestValidationBuilderEmpty(t *testing.T) {
	vb := errors.NewValidationBuilder()
	assert.NoError(t, vb.Build())
}

func TestValidationBuilderCollectsFields(t *testing.T) {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("playerID")
	vb.Fieldf("strength", "must be between %d and %d", 1, 30)

	err := vb.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	require.NotNil(t, meta)
	fields, ok := meta["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Contains(t, fields, "playerID")
	assert.Contains(t, fields, "strength")
}

func TestValidateRequired(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "   ", vb)
	assert.Error(t, vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRequired("name", "Brenna", vb)
	assert.NoError(t, vb.Build())
}

func TestValidateRange(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("strength", 31, 1, 30, vb)
	assert.Error(t, vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("strength", 30, 1, 30, vb)
	assert.NoError(t, vb.Build())
}

func TestValidateEnum(t *testing.T) {
	allowed := []string{"background", "heritage", "lineage"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("subtype", "heritage", allowed, vb)
	assert.NoError(t, vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("subtype", "familiar", allowed, vb)
	assert.Error(t, vb.Build())
}
