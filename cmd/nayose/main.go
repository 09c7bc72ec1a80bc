package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/kotoba-tools/nayose"
	"github.com/kotoba-tools/nayose/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	// Validate mode
	if cliOpts.Mode != "normalize" && cliOpts.Mode != "parse" {
		gologger.Fatal().Msgf("invalid mode: %s (must be 'normalize' or 'parse')", cliOpts.Mode)
	}

	if cliOpts.Mode == "parse" {
		runParse(cliOpts)
		return
	}
	runNormalize(cliOpts)
}

func runNormalize(cliOpts *runner.Options) {
	cfg := nayose.DefaultConfig
	if cliOpts.ThresholdConfig != "" {
		fileCfg, err := nayose.NewConfig(cliOpts.ThresholdConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", cliOpts.ThresholdConfig, err)
		}
		cfg = *fileCfg
	}
	// explicit threshold flags win over config files
	if cliOpts.LevenshteinThreshold >= 0 {
		cfg.LevenshteinThreshold = cliOpts.LevenshteinThreshold
	}
	if cliOpts.JaroWinklerThreshold >= 0 {
		cfg.JaroWinklerThreshold = cliOpts.JaroWinklerThreshold
	}
	if cliOpts.NgramCosineThreshold >= 0 {
		cfg.NgramCosineThreshold = cliOpts.NgramCosineThreshold
	}
	if cliOpts.NgramSize > 0 {
		cfg.NgramSize = cliOpts.NgramSize
	}

	normOpts := nayose.Options{
		Tokens:        cliOpts.Tokens,
		Config:        &cfg,
		MaxTokens:     cliOpts.MaxTokens,
		Concurrency:   cliOpts.Concurrency,
		NormalizeNFKC: cliOpts.NFKC,
	}

	m, err := nayose.New(&normOpts)
	if err != nil {
		gologger.Fatal().Msgf("failed to initialize normalizer got %v", err)
	}

	if cliOpts.Estimate {
		gologger.Info().Msgf("Input: %v tokens, %v unique, %v pairs to evaluate", m.TotalCount(), m.UniqueCount(), m.PairCount())
		return
	}

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	if cliOpts.JSON {
		if err := writeJSON(numberGroups(m.Groups()), output); err != nil {
			gologger.Error().Msgf("failed to write output got %v", err)
		}
		return
	}

	if err = m.ExecuteWithWriter(output); err != nil {
		gologger.Error().Msgf("failed to write output to file got %v", err)
	}
}

func runParse(cliOpts *runner.Options) {
	var input io.Reader = os.Stdin
	if cliOpts.Report != "" {
		f, err := os.Open(cliOpts.Report)
		if err != nil {
			gologger.Fatal().Msgf("failed to open report %v got %v", cliOpts.Report, err)
		}
		defer f.Close()
		input = f
	} else if !fileutil.HasStdin() {
		gologger.Fatal().Msgf("nayose: no report to parse")
	}

	groups, err := nayose.ParseReportRange(input, cliOpts.StartLine, cliOpts.EndLine)
	if err != nil {
		gologger.Fatal().Msgf("failed to parse report got %v", err)
	}
	if cliOpts.VariantsOnly {
		groups = nayose.WithVariants(groups)
	}
	gologger.Info().Msgf("Parsed %v groups", len(groups))

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	if err := writeJSON(groups, output); err != nil {
		gologger.Error().Msgf("failed to write output got %v", err)
	}
}

// numberGroups converts report groups into their json form, numbering
// them by report position like the text output does
func numberGroups(groups []nayose.Group) []nayose.ParsedGroup {
	numbered := make([]nayose.ParsedGroup, 0, len(groups))
	for i, group := range groups {
		variants := group.Variants
		if variants == nil {
			variants = []string{}
		}
		numbered = append(numbered, nayose.ParsedGroup{ID: i + 1, Canonical: group.Canonical, Variants: variants})
	}
	return numbered
}

func writeJSON(v interface{}, output io.Writer) error {
	bin, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = output.Write(append(bin, '\n'))
	return err
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
