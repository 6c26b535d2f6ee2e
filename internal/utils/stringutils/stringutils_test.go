package stringutils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diffdoc-cli/diffdoc/internal/utils/stringutils"
)

func TestSplitLines(t *testing.T) {
	input := `line1
line2

line4
`
	expected := []string{"line1", "line2", "", "line4"}
	require.Equal(t, expected, stringutils.SplitLines(input))

	require.Equal(t, []string(nil), stringutils.SplitLines(""))
}

func TestIndent(t *testing.T) {
	require.Equal(t, "\ta\n\tb", stringutils.Indent("a\nb", "\t"))
}
