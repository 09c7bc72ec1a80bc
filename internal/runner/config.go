package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/kotoba-tools/nayose"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	defaultThresholdCfg := filepath.Join(getUserHomeDir(), fmt.Sprintf(".config/nayose/thresholds_%v.yaml", version))
	// adopt an existing threshold file as engine defaults, otherwise
	// materialize one with the built in defaults
	if fileutil.FileExists(defaultThresholdCfg) {
		if cfg, err := nayose.NewConfig(defaultThresholdCfg); err == nil && cfg.Validate() == nil {
			nayose.DefaultConfig = *cfg
		}
		return
	}
	if err := os.MkdirAll(filepath.Dir(defaultThresholdCfg), 0755); err != nil {
		gologger.Error().Msgf("failed to create config dir got: %v", err)
		return
	}
	if err := nayose.GenerateSample(defaultThresholdCfg); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultThresholdCfg, err)
	}
}
