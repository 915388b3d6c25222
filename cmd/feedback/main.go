// Command feedback runs the event feedback analysis pipeline: synthesize
// (or load) a survey dataset, clean it, score comment sentiment, render
// charts and print the insight report.
//
// Zero-argument runs analyze a seeded 100-row synthetic survey and write
// four PNGs to the working directory.
//
//	feedback
//	feedback --rows 500 --seed 7 --outdir out
//	feedback --input event_feedback.csv --output processed_feedback.csv
package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/Clutch-254/event-feedback-analysis/pkg/charts"
	"github.com/Clutch-254/event-feedback-analysis/pkg/dataprep"
	"github.com/Clutch-254/event-feedback-analysis/pkg/report"
	"github.com/Clutch-254/event-feedback-analysis/pkg/sentiment"
	"github.com/Clutch-254/event-feedback-analysis/pkg/survey"
)

func main() {
	var (
		rows       = flag.Int("rows", 100, "number of synthetic survey rows")
		seed       = flag.Int64("seed", 42, "random seed for the synthesizer")
		input      = flag.String("input", "", "CSV file to analyze instead of synthesizing data")
		outdir     = flag.String("outdir", ".", "directory for chart images")
		output     = flag.String("output", "", "path to save the cleaned, labeled dataset as CSV (empty = skip)")
		topWords   = flag.Int("top-words", 10, "tokens per sentiment bucket in the word chart")
		configPath = flag.String("config", "", "optional YAML config file; explicit flags win")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("loading config", zap.String("path", *configPath), zap.Error(err))
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "seed":
			cfg.Seed = *seed
		case "input":
			cfg.Input = *input
		case "outdir":
			cfg.OutDir = *outdir
		case "output":
			cfg.Output = *output
		case "top-words":
			cfg.TopWords = *topWords
		}
	})

	// Step 1: obtain the dataset.
	var ds survey.Dataset
	if cfg.Input != "" {
		ds, err = survey.Load(cfg.Input)
		if err != nil {
			logger.Fatal("loading feedback CSV", zap.String("path", cfg.Input), zap.Error(err))
		}
		logger.Info("loaded feedback CSV", zap.String("path", cfg.Input), zap.Int("rows", len(ds)))
	} else {
		gen := survey.DefaultGeneratorConfig()
		gen.Rows = cfg.Rows
		gen.Seed = cfg.Seed
		ds = survey.Generate(gen)
		logger.Info("synthesized survey dataset", zap.Int("rows", len(ds)), zap.Int64("seed", gen.Seed))
	}

	// Step 2: clean.
	before, err := dataprep.Summarize(ds)
	if err != nil {
		logger.Fatal("summarizing dataset", zap.Error(err))
	}
	logger.Info("missing values before cleaning",
		zap.Any("ratings", before.Ratings),
		zap.Int("empty_likes", before.EmptyLikes),
		zap.Int("empty_improvements", before.EmptyComments))

	if err := dataprep.Default(logger).Run(ds); err != nil {
		logger.Fatal("cleaning dataset", zap.Error(err))
	}

	after, err := dataprep.Summarize(ds)
	if err != nil {
		logger.Fatal("summarizing dataset", zap.Error(err))
	}
	logger.Info("missing values after cleaning",
		zap.Any("ratings", after.Ratings),
		zap.Int("empty_likes", after.EmptyLikes),
		zap.Int("empty_improvements", after.EmptyComments))

	// Step 3: sentiment.
	analyzer, err := sentiment.NewAnalyzer()
	if err != nil {
		logger.Fatal("loading sentiment lexicon", zap.Error(err))
	}
	ds.ApplySentiment(analyzer)
	logger.Info("sentiment labeling complete", zap.Int("rows", len(ds)))

	// Step 4: aggregate and render.
	agg, err := report.Aggregate(ds, cfg.TopWords)
	if err != nil {
		logger.Fatal("aggregating dataset", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		logger.Fatal("creating output directory", zap.String("dir", cfg.OutDir), zap.Error(err))
	}
	renderer := &charts.Renderer{OutDir: cfg.OutDir}
	paths, err := renderer.RenderAll(agg)
	if err != nil {
		logger.Fatal("rendering charts", zap.Error(err))
	}
	for _, p := range paths {
		logger.Info("saved chart", zap.String("path", p))
	}

	report.WriteInsights(os.Stdout, agg)

	// Step 5: optional export of the processed dataset.
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			logger.Fatal("creating export file", zap.String("path", cfg.Output), zap.Error(err))
		}
		if err := ds.WriteCSV(f); err != nil {
			f.Close()
			logger.Fatal("exporting processed dataset", zap.String("path", cfg.Output), zap.Error(err))
		}
		if err := f.Close(); err != nil {
			logger.Fatal("closing export file", zap.String("path", cfg.Output), zap.Error(err))
		}
		logger.Info("exported processed dataset", zap.String("path", cfg.Output), zap.Int("rows", len(ds)))
	}
}
