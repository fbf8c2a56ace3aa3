package refdata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdataDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "testdata", "refdata"))
	require.NoError(t, err)
	return dir
}

func TestLoadPopulatesAllTables(t *testing.T) {
	tables, err := Load(testdataDir(t))
	require.NoError(t, err)

	assert.Equal(t, "smɪθ", tables.NamesToIPA["smith"])
	assert.Equal(t, "ʤo", tables.SyllableToIPA["jo"])

	_, smithIsTop := tables.TopSurnames["smith"]
	assert.True(t, smithIsTop)
	_, obscureIsTop := tables.TopSurnames["zzyzx"]
	assert.False(t, obscureIsTop)

	require.Len(t, tables.SpellingRules, 1)
	rule := tables.SpellingRules[0]
	assert.Equal(t, "ei", rule.MeatA)
	assert.Equal(t, "ie", rule.MeatB)
	assert.Contains(t, rule.BottomBreads, "b")
	assert.Contains(t, rule.TopBreads, "-")
	assert.Equal(t, 3, rule.MinLen)

	require.Len(t, tables.IPARules, 1)
	assert.Contains(t, tables.IPARules[0].BottomBreads, "a")

	require.Len(t, tables.NicknameSets, 3)
	idx, ok := tables.NicknameIndex["bob"]
	require.True(t, ok)
	assert.Equal(t, []int{0}, idx)

	idx, ok = tables.NicknameIndex["guillermo"]
	require.True(t, ok)
	assert.Equal(t, []int{1}, idx)
}

func TestLoadMissingFileIsReferenceDataMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}

func TestLoadInvalidRuleArity(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{fileNamesToIPA, fileSyllableToIPA, fileTopSurnames, fileNicknameSets} {
		writeFixtureCopy(t, dir, name)
	}
	writeFile(t, dir, fileRulesSpelling, `[["only", "two"]]`)
	writeFile(t, dir, fileRulesIPA, `[]`)

	_, err := Load(dir)
	require.Error(t, err)
}
