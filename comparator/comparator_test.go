package comparator

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdataDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(thisFile), "..", "testdata", "refdata")
}

func newTestComparator(t *testing.T) *Comparator {
	t.Helper()
	c, err := New(testdataDir(t))
	require.NoError(t, err)
	return c
}

func TestCompareIdenticalNamesMatch(t *testing.T) {
	c := newTestComparator(t)
	result := c.Compare("John Smith", "John Smith")
	assert.True(t, result.Match)
	assert.NotEmpty(t, result.TraceID)
}

func TestCompareMinorSpellingVariationMatches(t *testing.T) {
	c := newTestComparator(t)
	result := c.Compare("John Smith", "Jon Smyth")
	assert.True(t, result.Match)
}

func TestCompareNicknameSubstitutionMatches(t *testing.T) {
	c := newTestComparator(t)
	result := c.Compare("Robert Jones", "Bob Jones")
	assert.True(t, result.Match)
}

func TestCompareUnrelatedNamesDoNotMatch(t *testing.T) {
	c := newTestComparator(t)
	result := c.Compare("Xavier Quilliam", "Bartholomew Dunwoody")
	assert.False(t, result.Match)
}

func TestCompareSingleTokenNameIsTooShort(t *testing.T) {
	c := newTestComparator(t)
	result := c.Compare("A", "A Smith")
	assert.True(t, result.TooShort)
}

func TestCompareIsSymmetricOnMatchVerdict(t *testing.T) {
	c := newTestComparator(t)
	ab := c.Compare("John Smith", "Jon Smyth")
	ba := c.Compare("Jon Smyth", "John Smith")
	assert.Equal(t, ab.Match, ba.Match)
}

func TestCompareAttemptMonotonicity(t *testing.T) {
	c := newTestComparator(t)
	result := c.Compare("John Smith", "John Smith")
	require.NotNil(t, result.Attempt1)
	assert.Nil(t, result.Attempt2)
	assert.Nil(t, result.Attempt3)
	assert.Nil(t, result.Attempt4)
}

func TestCompareTraceIsEmptyByDefault(t *testing.T) {
	c := newTestComparator(t)
	result := c.Compare("Mary O'Brien", "Mary Obrien")
	assert.Empty(t, result.Trace)
}

func TestCompareWithTraceRecordsCleanerEdits(t *testing.T) {
	c, err := New(testdataDir(t), WithTrace(true))
	require.NoError(t, err)

	result := c.Compare("Mary O'Brien", "Mary Obrien")
	assert.NotEmpty(t, result.Trace)
}
