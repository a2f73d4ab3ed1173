package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()

	out, err := exporter.Render(Dataset{
		Headers: []string{"#", "Name", "Present"},
		Rows: []map[string]string{
			{"#": "1", "Name": "Alice", "Present": "3"},
			{"#": "2", "Name": "Bob"},
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "#,Name,Present", strings.TrimSpace(lines[0]))
	assert.Equal(t, "1,Alice,3", strings.TrimSpace(lines[1]))
	// Missing cells render empty, keeping column alignment.
	assert.Equal(t, "2,Bob,", strings.TrimSpace(lines[2]))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()
	_, err := exporter.Render(Dataset{})
	require.Error(t, err)
}
