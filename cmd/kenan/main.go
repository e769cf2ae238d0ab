package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/hazem18977/kenan/internal/analysis"
	"github.com/hazem18977/kenan/internal/config"
	"github.com/hazem18977/kenan/internal/dataset"
	"github.com/hazem18977/kenan/internal/report"
	"github.com/hazem18977/kenan/internal/sample"
	"github.com/spf13/cobra"
)

var (
	threshold  float64
	rateK      float64
	initConc   float64
	noise      float64
	seed       int64
	duration   float64
	step       float64
	order      string
	outFile    string
	configFile string
)

// main registers the kenan commands. The commands exercise the analysis
// core on synthetic decay data; real data ingestion and result export are
// handled by external tooling.
func main() {
	rootCmd := &cobra.Command{
		Use:   "kenan",
		Short: "reaction-kinetics decay analysis",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the full analysis pipeline on a synthetic series",
		RunE:  runAnalysis,
	}
	addGeneratorFlags(runCmd)
	runCmd.Flags().Float64Var(&threshold, "threshold", config.DefaultThreshold, "stable-region slope threshold")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "generate a synthetic decay series",
		RunE:  generateSample,
	}
	addGeneratorFlags(sampleCmd)
	sampleCmd.Flags().StringVar(&outFile, "out", "", "write the series to a CSV file instead of stdout")
	sampleCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	rootCmd.AddCommand(runCmd, sampleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&rateK, "k", config.DefaultRateConstant, "true rate constant")
	cmd.Flags().Float64Var(&initConc, "a0", config.DefaultInitialConc, "initial concentration")
	cmd.Flags().Float64Var(&noise, "noise", config.DefaultNoiseLevel, "relative measurement noise")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "series duration (minutes)")
	cmd.Flags().Float64Var(&step, "step", config.DefaultStep, "sampling step (minutes)")
	cmd.Flags().StringVar(&order, "order", "first", "generating rate law: first or second")
}

// applyConfig loads the config file, if any, and fills in every value the
// user did not override on the command line.
func applyConfig(cmd *cobra.Command) error {
	if configFile == "" {
		return nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cmd.Flags().Changed("threshold") {
		threshold = cfg.Threshold
	}
	if !cmd.Flags().Changed("k") {
		rateK = cfg.Sample.RateConstant
	}
	if !cmd.Flags().Changed("a0") {
		initConc = cfg.Sample.InitialConc
	}
	if !cmd.Flags().Changed("noise") {
		noise = cfg.Sample.NoiseLevel
	}
	if !cmd.Flags().Changed("seed") {
		seed = cfg.Sample.Seed
	}
	if !cmd.Flags().Changed("time") {
		duration = cfg.Sample.Duration
	}
	if !cmd.Flags().Changed("step") {
		step = cfg.Sample.Step
	}
	return nil
}

func generatorParams() sample.Params {
	return sample.Params{
		Seed:         seed,
		RateConstant: rateK,
		InitialConc:  initConc,
		NoiseLevel:   noise,
		Times:        sample.TimeGrid(duration, step),
	}
}

func generateTable() (dataset.RawTable, error) {
	p := generatorParams()
	switch order {
	case "first":
		return sample.FirstOrderSeries(p), nil
	case "second":
		return sample.SecondOrderSeries(p), nil
	default:
		return dataset.RawTable{}, fmt.Errorf("unknown rate law: %s (want first or second)", order)
	}
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	raw, err := generateTable()
	if err != nil {
		return err
	}

	rep, err := analysis.Run(raw, threshold)
	if err != nil {
		return err
	}

	sum := rep.Dataset.Summary()
	fmt.Printf("valid points: %d\n", sum.Points)
	fmt.Printf("time range: %.1f - %.1f min\n", sum.TimeMin, sum.TimeMax)
	fmt.Printf("initial concentration: %.3f\n", sum.A0)
	fmt.Printf("A/A0 range: %.3f - %.3f\n", sum.RatioMin, sum.RatioMax)

	region := rep.Region
	fmt.Printf("\nselected %d of %d points, time %.1f - %.1f min\n",
		region.Len(), rep.Dataset.Len(),
		region.Point(0).T, region.Point(region.Len()-1).T)

	for _, m := range []analysis.ModelReport{rep.FirstOrder, rep.SecondOrder} {
		if !m.OK() {
			fmt.Printf("%s: %v\n", m.Name, m.Err)
		}
	}

	fmt.Println("\nsummary:")
	fmt.Print(report.RenderSummary(rep.Summary))
	fmt.Println("\ndetail:")
	fmt.Print(report.RenderDetail(rep.Detail))

	return nil
}

func generateSample(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	raw, err := generateTable()
	if err != nil {
		return err
	}

	if outFile != "" {
		return writeCSV(outFile, raw)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "t, min\tA\tA0")
	for _, row := range raw.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.Time, row.Conc, row.Ref)
	}
	return w.Flush()
}

func writeCSV(path string, raw dataset.RawTable) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"t, min", "A", "A0"}); err != nil {
		return err
	}
	for _, row := range raw.Rows {
		if err := w.Write([]string{row.Time, row.Conc, row.Ref}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
