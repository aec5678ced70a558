package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFileName(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain name", "hello.txt", "hello.txt", false},
		{"redundant separators", "docs//report.pdf", "docs/report.pdf", false},
		{"dot segment collapses", "./notes.md", "notes.md", false},
		{"parent segment resolves away", "a/../b.txt", "b.txt", false},
		{"windows separators folded", "docs\\report.pdf", "docs/report.pdf", false},
		{"traversal rejected", "../../etc/passwd", "", true},
		{"windows traversal rejected", "..\\..\\secret", "", true},
		{"embedded dots rejected", "a..b.txt", "", true},
		{"empty name rejected", "", "", true},
		{"degenerate name rejected", "./.", "", true},
		{"root rejected", "/", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeFileName(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFileName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
