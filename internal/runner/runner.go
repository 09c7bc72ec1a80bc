package runner

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"

	"github.com/kotoba-tools/nayose"
)

type Options struct {
	Tokens             goflags.StringSlice // tokens to normalize
	Mode               string              // normalize or parse
	Output             string
	JSON               bool
	Estimate           bool
	Config             string
	ThresholdConfig    string
	NgramSize          int
	MaxTokens          int
	Concurrency        int
	NFKC               bool
	Report             string
	StartLine          int
	EndLine            int
	VariantsOnly       bool
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
	// threshold overrides parsed from flags, -1 = keep config value
	LevenshteinThreshold float64
	JaroWinklerThreshold float64
	NgramCosineThreshold float64
}

func ParseFlags() *Options {
	var levenshteinThreshold, jaroWinklerThreshold, ngramCosineThreshold string
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Group spelling variants of words into canonical clusters using string similarity.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Tokens, "list", "l", nil, "word tokens to normalize (stdin, comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Mode, "mode", "m", "normalize", "operation mode (normalize, parse)"),
		flagSet.BoolVar(&opts.NFKC, "nfkc", false, "fold unicode compatibility spellings (NFKC) before counting"),
		flagSet.IntVarP(&opts.MaxTokens, "max-tokens", "mt", 0, "max input tokens to accept (default 0 = unlimited)"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `nayose cli config file (default '$HOME/.config/nayose/config.yaml')`),
		flagSet.StringVar(&opts.ThresholdConfig, "tc", "", fmt.Sprintf(`threshold config file (default '$HOME/.config/nayose/thresholds_%v.yaml')`, version)),
		flagSet.StringVarP(&levenshteinThreshold, "levenshtein-threshold", "lt", "", "minimum normalized levenshtein similarity for an edge (default 0.7)"),
		flagSet.StringVarP(&jaroWinklerThreshold, "jaro-winkler-threshold", "jt", "", "minimum jaro-winkler similarity for an edge (default 0.7)"),
		flagSet.StringVarP(&ngramCosineThreshold, "ngram-threshold", "nt", "", "minimum tf-idf n-gram cosine similarity for an edge (default 0.7)"),
		flagSet.IntVar(&opts.NgramSize, "ngram-size", 0, "character n-gram size of the cosine metric (default 2)"),
		flagSet.IntVarP(&opts.Concurrency, "concurrency", "c", 0, "workers for the pairwise scan (default 0 = cpu count)"),
	)

	flagSet.CreateGroup("parse", "Parse",
		flagSet.StringVarP(&opts.Report, "report", "r", "", "existing report file to parse (default stdin)"),
		flagSet.IntVarP(&opts.StartLine, "start-line", "sl", 0, "parse from this 1-based report line"),
		flagSet.IntVarP(&opts.EndLine, "end-line", "el", 0, "parse up to this 1-based report line (0 = end of file)"),
		flagSet.BoolVarP(&opts.VariantsOnly, "variants-only", "vo", false, "keep only groups that have variants"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Estimate, "estimate", "es", false, "estimate token and pair counts without running the scan"),
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write normalization report"),
		flagSet.BoolVarP(&opts.JSON, "json", "j", false, "write groups as json instead of the text report"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display nayose version"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update nayose to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic nayose update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("nayose")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("nayose version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current nayose version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	opts.LevenshteinThreshold = parseThresholdFlag("levenshtein-threshold", levenshteinThreshold)
	opts.JaroWinklerThreshold = parseThresholdFlag("jaro-winkler-threshold", jaroWinklerThreshold)
	opts.NgramCosineThreshold = parseThresholdFlag("ngram-threshold", ngramCosineThreshold)

	// stdin carries tokens in normalize mode and the report in parse mode
	if opts.Mode == "normalize" && fileutil.HasStdin() {
		tokens, err := nayose.LoadTokens(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		opts.Tokens = tokens
	}

	if opts.Mode == "normalize" && len(opts.Tokens) == 0 {
		gologger.Fatal().Msgf("nayose: no input found")
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

// parseThresholdFlag converts a threshold flag value to float64, -1 means
// the flag was not set and the config value stays in charge.
func parseThresholdFlag(name, value string) float64 {
	if value == "" {
		return -1
	}
	parsed, err := convertThreshold(value)
	if err != nil {
		gologger.Fatal().Msgf("Could not parse %s: %s\n", name, err)
	}
	return parsed
}

func convertThreshold(value string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	if parsed < 0 || parsed > 1 {
		return 0, errorutil.New("threshold %v is out of range [0,1]", parsed)
	}
	return parsed, nil
}
