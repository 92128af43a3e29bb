package color_test

import (
	"testing"

	"github.com/ratel-online/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	scenarios := []struct {
		description   string
		name          string
		expectedColor color.Color
		expectError   bool
	}{
		{description: "lowercase_name", name: "red", expectedColor: color.Red},
		{description: "mixed_case_name", name: "BlUe", expectedColor: color.Blue},
		{description: "surrounding_spaces", name: "  green ", expectedColor: color.Green},
		{description: "yellow", name: "yellow", expectedColor: color.Yellow},
		{description: "wild_is_not_a_pick", name: "wild", expectError: true},
		{description: "unknown_name", name: "purple", expectError: true},
		{description: "empty_name", name: "", expectError: true},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result, err := color.ByName(scenario.name)
			if scenario.expectError {
				require.Error(t, err)
				require.Nil(t, result)
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.expectedColor, result)
		})
	}
}

func TestIsBase(t *testing.T) {
	for _, base := range color.Base {
		require.True(t, color.IsBase(base), base.Name())
	}
	require.False(t, color.IsBase(color.Wild))
	require.False(t, color.IsBase(nil))
}

func TestPaintWithoutEscapes(t *testing.T) {
	defer color.SetEnabled(color.Enabled())
	color.SetEnabled(false)

	require.Equal(t, "[7]", color.Red.Paintf("[%d]", 7))
	require.Equal(t, "red", color.Red.String())
	require.Equal(t, "(*)", color.Wild.Paint("(*)"))
}
