package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teranos/namematch/internal/version"
)

func TestVersionInfoStringMentionsDevBuildByDefault(t *testing.T) {
	info := version.Get()
	assert.Contains(t, info.String(), "dev")
}

func TestVersionCmdHasJSONFlag(t *testing.T) {
	flag := VersionCmd.Flags().Lookup("json")
	assert.NotNil(t, flag)
}
