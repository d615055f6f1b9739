package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lensmap/internal/cmd/table"
	"github.com/agentstation/lensmap/pkg/catalogs"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"wide", FormatWide, false},
		{"", "", false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "ID", Header("id"))
	assert.Equal(t, "Max Aperture", Header("max_aperture"))
	assert.Equal(t, "Name", Header("name"))
}

func TestTableOutput(t *testing.T) {
	var buf bytes.Buffer
	lenses := catalogs.TestLenses(t)[:2]
	favorites := map[string]bool{"b": true}

	err := Lenses(&buf, FormatTable, lenses, table.Marks{
		Favorite: func(id string) bool { return favorites[id] },
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "MANUFACTURER")
	assert.Contains(t, out, "Standard Zoom")
	assert.Contains(t, out, "24-70mm")
	assert.Contains(t, out, "f/1.4")
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	lenses := catalogs.TestLenses(t)

	require.NoError(t, Lenses(&buf, FormatJSON, lenses, table.Marks{}))

	var decoded []catalogs.Lens
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, len(lenses))
	assert.Equal(t, "a", decoded[0].ID)
}

func TestYAMLOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Lens(&buf, FormatYAML, catalogs.TestLens(t)))
	assert.Contains(t, buf.String(), "id: test-lens")
	assert.Contains(t, buf.String(), "max_aperture: 2.8")
}

func TestTableFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"lenses": 3}))
	assert.JSONEq(t, `{"lenses": 3}`, buf.String())
}
