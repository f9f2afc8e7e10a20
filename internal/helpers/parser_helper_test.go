package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalFloat(t *testing.T) {
	got, err := OptionalFloat("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = OptionalFloat("3.1390")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3.1390, *got)

	_, err = OptionalFloat("north")
	assert.Error(t, err)
}
