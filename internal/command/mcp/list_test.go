package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyport-cloud/skyport-mcp/internal/tools"
)

func TestToolRows(t *testing.T) {
	operations := 0
	for _, f := range tools.Catalog() {
		operations += len(f.Operations)
	}

	rows, count := toolRows(tools.Individual)
	assert.Len(t, rows, operations)
	assert.Equal(t, operations, count)
	assert.Equal(t, []string{"list_apps", "", "read", "List the apps of the current team"}, rows[0])

	rows, count = toolRows(tools.Consolidated)
	assert.Len(t, rows, operations)
	assert.Equal(t, len(tools.Catalog()), count)
	assert.Equal(t, []string{"apps", "list", "read", "List the apps of the current team"}, rows[0])
}

func TestAccess(t *testing.T) {
	assert.Equal(t, "read", access(tools.Operation{ReadOnly: true}))
	assert.Equal(t, "destructive", access(tools.Operation{Destructive: true}))
	assert.Equal(t, "write", access(tools.Operation{}))
}
