package csvutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEscapesSpecialCharacters(t *testing.T) {
	table := Table{
		Header: []string{"Member", "Note"},
		Rows: [][]string{
			{"Smith, John", `said "hello"`},
			{"Plain", "no escaping needed"},
		},
	}

	got, err := table.Render()
	require.NoError(t, err)

	assert.Equal(t, "Member,Note\n\"Smith, John\",\"said \"\"hello\"\"\"\nPlain,no escaping needed\n", got)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1234.50", FormatAmount(1234.5))
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "99.99", FormatAmount(99.99))
}
