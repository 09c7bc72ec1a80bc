package nayose

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetAllVars(t *testing.T) {
	require.EqualValues(t, []string{"number", "token"}, getAllVars("{{number}}. {{token}}"))
	require.Empty(t, getAllVars("- plain line"))
}

func TestCheckUnknownVars(t *testing.T) {
	require.Nil(t, checkUnknownVars("{{number}}. {{token}}", "number", "token"))
	require.Nil(t, checkUnknownVars("no placeholders", "number", "token"))

	err := checkUnknownVars("{{number}}. {{tokne}}", "number", "token")
	require.Error(t, err)
	require.Contains(t, err.Error(), "tokne")
}
