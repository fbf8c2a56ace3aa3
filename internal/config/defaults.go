package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("refdata.dir", "testdata/refdata")
	v.SetDefault("refdata.watch", false)
	v.SetDefault("refdata.max_tokens", 8)

	v.SetDefault("thresholds.spelling_pair_score", 80)
	v.SetDefault("thresholds.spelling_pair_count", 3)
	v.SetDefault("thresholds.pronounce_low_k2", 80)
	v.SetDefault("thresholds.pronounce_low_k_gt2", 75)
	v.SetDefault("thresholds.phonetic_cache_size", 1000)

	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", "everforest")
}

// BindSensitiveEnvVars explicitly binds configuration most likely to be
// overridden per-deployment to environment variables.
func BindSensitiveEnvVars(v *viper.Viper) {
	v.BindEnv("refdata.dir", "NAMEMATCH_REFDATA_DIR")
	v.BindEnv("log.theme", "NAMEMATCH_LOG_THEME")
	v.BindEnv("log.json", "NAMEMATCH_LOG_JSON")
}
