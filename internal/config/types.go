// Package config loads namematch's tuning knobs with viper layered over
// TOML defaults, the way the teacher's am package loads QNTX's core
// configuration.
package config

// Config is the full, unmarshaled configuration tree.
type Config struct {
	RefData    RefDataConfig    `mapstructure:"refdata"`
	Thresholds ThresholdsConfig `mapstructure:"thresholds"`
	Log        LogConfig        `mapstructure:"log"`
}

// RefDataConfig locates and bounds the reference-data loader.
type RefDataConfig struct {
	// Dir holds _ipa_all_names.json, _ipa_common_word_parts.json,
	// _top_surnames.json, _rules_ipa.json, _rules_spelling.json and
	// _nickname_sets.json.
	Dir string `mapstructure:"dir"`
	// Watch is read from the refdata.watch key. No command consults it and
	// no Watcher is started from it; reference tables are not reloaded.
	Watch bool `mapstructure:"watch"`
	// MaxTokens is read from the refdata.max_tokens key. No component
	// consults it: names of any token count are cleaned and aligned.
	MaxTokens int `mapstructure:"max_tokens"`
}

// ThresholdsConfig exposes the spec's numeric gates as overridable tuning,
// defaulted to the values the algorithm specifies.
type ThresholdsConfig struct {
	// SpellingPairScore is the per-pair score a word-pair alignment must
	// clear to count toward the spelling match quorum.
	SpellingPairScore int `mapstructure:"spelling_pair_score"`
	// SpellingPairCount is the quorum of qualifying pairs required.
	SpellingPairCount int `mapstructure:"spelling_pair_count"`
	// PronounceLowK2 is the lowest-score floor when k <= 2 aligned pairs.
	PronounceLowK2 int `mapstructure:"pronounce_low_k2"`
	// PronounceLowKGt2 is the lowest-score floor when k > 2 aligned pairs.
	PronounceLowKGt2 int `mapstructure:"pronounce_low_k_gt2"`
	// PhoneticCacheSize bounds the per-word IPA memoization cache.
	PhoneticCacheSize int `mapstructure:"phonetic_cache_size"`
}

// LogConfig configures the ambient logger.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Theme string `mapstructure:"theme"`
}
