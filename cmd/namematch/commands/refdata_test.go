package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/namematch/refdata"
)

func TestRefDataValidateLoadsFixtureDirectory(t *testing.T) {
	tables, err := refdata.Load(testdataDir(t))
	require.NoError(t, err)
	assert.NotEmpty(t, tables.NamesToIPA)
	assert.NotEmpty(t, tables.TopSurnames)
}

func TestRefDataValidateCmdIsRegisteredUnderRefData(t *testing.T) {
	found := false
	for _, sub := range RefDataCmd.Commands() {
		if sub.Use == "validate" {
			found = true
		}
	}
	assert.True(t, found)
}
