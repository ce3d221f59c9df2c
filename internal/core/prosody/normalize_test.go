package prosody

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shlokavani/chandas/internal/core/model"
)

func TestNormalize_SplitsOnDandas(t *testing.T) {
	padas, err := Normalize("धर्मक्षेत्रे कुरुक्षेत्रे समवेता युयुत्सवः ।\nमामकाः पाण्डवाश्चैव किमकुर्वत सञ्जय ॥")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"धर्मक्षेत्रे कुरुक्षेत्रे समवेता युयुत्सवः",
		"मामकाः पाण्डवाश्चैव किमकुर्वत सञ्जय",
	}, padas)
}

func TestNormalize_CollapsesWhitespaceAndMarkdown(t *testing.T) {
	padas, err := Normalize("**वसुदेवसुतं   देवं**")
	require.NoError(t, err)
	assert.Equal(t, []string{"वसुदेवसुतं देवं"}, padas)
}

func TestNormalize_EmptyInput(t *testing.T) {
	_, err := Normalize("")
	assert.True(t, errors.Is(err, model.ErrInvalidInput))

	_, err = Normalize("   \n  ")
	assert.True(t, errors.Is(err, model.ErrInvalidInput))

	// Nothing but dandas is still an empty verse.
	_, err = Normalize("। ॥ ।")
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}
