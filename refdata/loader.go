package refdata

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/namematch/internal/xerrors"
)

// supportedDatasetVersions bounds the reference-data schema this loader
// understands. A file stamped with an incompatible version fails fast at
// construction instead of loading data the rest of the pipeline can't
// interpret.
var supportedDatasetVersions = mustConstraint("^1.0.0")

func mustConstraint(c string) *semver.Constraints {
	parsed, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return parsed
}

const (
	fileNamesToIPA     = "_ipa_all_names.json"
	fileSyllableToIPA  = "_ipa_common_word_parts.json"
	fileTopSurnames    = "_top_surnames.json"
	fileRulesIPA       = "_rules_ipa.json"
	fileRulesSpelling  = "_rules_spelling.json"
	fileNicknameSets   = "_nickname_sets.json"
)

// envelope is the optional versioned wrapper a reference-data artifact may
// use: {"_datasetVersion": "1.0.0", "_entries": <payload>}. A file with no
// "_entries" key is the bare payload itself and carries no version check.
type envelope struct {
	DatasetVersion string          `json:"_datasetVersion"`
	Entries        json.RawMessage `json:"_entries"`
}

// Load reads all six reference-data artifacts from dir and builds the
// tables a Comparator needs. Any missing or malformed file is fatal.
func Load(dir string) (*Tables, error) {
	t := &Tables{}

	if err := loadArtifact(dir, fileNamesToIPA, &t.NamesToIPA); err != nil {
		return nil, err
	}
	if err := loadArtifact(dir, fileSyllableToIPA, &t.SyllableToIPA); err != nil {
		return nil, err
	}

	var surnameTuples [][]string
	if err := loadArtifact(dir, fileTopSurnames, &surnameTuples); err != nil {
		return nil, err
	}
	t.TopSurnames = make(map[string]struct{}, len(surnameTuples))
	for _, tuple := range surnameTuples {
		if len(tuple) == 0 {
			continue
		}
		t.TopSurnames[tuple[0]] = struct{}{}
	}

	var ipaRuleRows [][]interface{}
	if err := loadArtifact(dir, fileRulesIPA, &ipaRuleRows); err != nil {
		return nil, err
	}
	ipaRules, err := parseRules(fileRulesIPA, ipaRuleRows, true)
	if err != nil {
		return nil, err
	}
	t.IPARules = ipaRules

	var spellingRuleRows [][]interface{}
	if err := loadArtifact(dir, fileRulesSpelling, &spellingRuleRows); err != nil {
		return nil, err
	}
	spellingRules, err := parseRules(fileRulesSpelling, spellingRuleRows, false)
	if err != nil {
		return nil, err
	}
	t.SpellingRules = spellingRules

	var nicknameSets [][]string
	if err := loadArtifact(dir, fileNicknameSets, &nicknameSets); err != nil {
		return nil, err
	}
	t.NicknameSets = nicknameSets
	t.NicknameIndex = buildNicknameIndex(nicknameSets)

	return t, nil
}

// loadArtifact reads path, unwraps an optional version envelope, validates
// the dataset version if present, and unmarshals the payload into out.
func loadArtifact(dir, name string, out interface{}) error {
	path := filepath.Join(dir, name)

	raw, err := os.ReadFile(path)
	if err != nil {
		return xerrors.ReferenceDataMissing(path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Entries) > 0 {
		if env.DatasetVersion != "" {
			if err := checkDatasetVersion(path, env.DatasetVersion); err != nil {
				return err
			}
		}
		if err := json.Unmarshal(env.Entries, out); err != nil {
			return xerrors.ReferenceDataMissing(path, err)
		}
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return xerrors.ReferenceDataMissing(path, err)
	}
	return nil
}

func checkDatasetVersion(path, version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return xerrors.ReferenceDataMissing(path, err)
	}
	if !supportedDatasetVersions.Check(v) {
		err := xerrors.Newf("unsupported reference data version %s in %s", version, path)
		return xerrors.WithHintf(err, "this loader understands %s; regenerate the artifact or upgrade namematch", supportedDatasetVersions.String())
	}
	return nil
}

// parseRules turns the raw [meatA, meatB, bottomBreads, topBreads, minLen]
// rows into Rules, expanding placeholder bread-list entries.
func parseRules(file string, rows [][]interface{}, isIPA bool) ([]Rule, error) {
	rules := make([]Rule, 0, len(rows))
	for i, row := range rows {
		rule, err := parseRuleRow(row, isIPA)
		if err != nil {
			return nil, xerrors.InvalidRule(file, i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func parseRuleRow(row []interface{}, isIPA bool) (Rule, error) {
	if len(row) != 5 {
		return Rule{}, xerrors.Newf("expected 5 elements, got %d", len(row))
	}

	meatA, ok := row[0].(string)
	if !ok {
		return Rule{}, xerrors.Newf("meatA is not a string")
	}
	meatB, ok := row[1].(string)
	if !ok {
		return Rule{}, xerrors.Newf("meatB is not a string")
	}

	bottomBreads, err := toBreadList(row[2], isIPA)
	if err != nil {
		return Rule{}, xerrors.Wrap(err, "bottomBreads")
	}
	topBreads, err := toBreadList(row[3], isIPA)
	if err != nil {
		return Rule{}, xerrors.Wrap(err, "topBreads")
	}

	minLenF, ok := row[4].(float64)
	if !ok {
		return Rule{}, xerrors.Newf("minLen is not a number")
	}

	return Rule{
		MeatA:        meatA,
		MeatB:        meatB,
		BottomBreads: bottomBreads,
		TopBreads:    topBreads,
		MinLen:       int(minLenF),
	}, nil
}

// toBreadList reads a bottomBreads/topBreads field, which per spec is
// either a literal JSON array of strings - used verbatim, with no
// placeholder expansion inside it - or a bare placeholder string, which
// expands to the full consonant/vowel/letter class it names.
func toBreadList(v interface{}, isIPA bool) ([]string, error) {
	switch val := v.(type) {
	case string:
		return placeholderClass(val, isIPA)
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, xerrors.Newf("expected a string element")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, xerrors.Newf("expected an array or a placeholder string")
	}
}

func buildNicknameIndex(sets [][]string) map[string][]int {
	index := make(map[string][]int)
	for classIdx, class := range sets {
		for _, token := range class {
			index[token] = append(index[token], classIdx)
		}
	}
	return index
}
