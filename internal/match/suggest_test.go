package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	known := []string{"InputKey", "InputKeyAttribute", "InputDefault", "OutputName", "OutputPosition"}

	t.Run("close typo", func(t *testing.T) {
		assert.Equal(t, []string{"InputKey"}, Suggest("InputKy", known, DefaultMinScore, 1))
	})

	t.Run("snake case matches exactly", func(t *testing.T) {
		got := Suggest("output_name", known, DefaultMinScore, 3)
		assert.Equal(t, "OutputName", got[0])
	})

	t.Run("nothing close", func(t *testing.T) {
		assert.Empty(t, Suggest("Comment", known, DefaultMinScore, 3))
	})

	t.Run("limit", func(t *testing.T) {
		assert.Len(t, Suggest("Input", known, 0, 2), 2)
	})
}
