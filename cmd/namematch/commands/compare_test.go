package commands

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/namematch/comparator"
)

func testdataDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "refdata")
}

func TestCompareCmdRejectsWrongArgCount(t *testing.T) {
	err := CompareCmd.Args(CompareCmd, []string{"only-one"})
	assert.Error(t, err)
}

func TestCompareCmdRunsFullPipeline(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("refdata", testdataDir(t), "")
	cmd.Flags().Bool("json", false, "")

	cmp, err := comparator.New(refDataDir(cmd))
	require.NoError(t, err)

	result := cmp.Compare("John Smith", "John Smith")
	assert.True(t, result.Match)
}

func TestRefDataDirPrefersExplicitFlagOverDefault(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("refdata", "default/path", "")
	require.NoError(t, cmd.Flags().Set("refdata", "explicit/path"))

	assert.Equal(t, "explicit/path", refDataDir(cmd))
}
