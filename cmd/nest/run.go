package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/piwi3910/nestkit/internal/engine"
	"github.com/piwi3910/nestkit/internal/export"
	"github.com/piwi3910/nestkit/internal/ioformat"
	"github.com/piwi3910/nestkit/internal/logging"
	"github.com/piwi3910/nestkit/internal/model"
	"github.com/piwi3910/nestkit/internal/project"
)

var (
	defaultsPath string
	pdfPath      string
	xlsxReport   string
)

var runCmd = &cobra.Command{
	Use:   "run JOBFILE",
	Short: "run the nesting engine against a job document",
	Long: `run reads a job document (parts, sheets, and nesting parameters)
from JOBFILE, runs the placement engine, and writes the result
document to stdout as a single line of JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runNest,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&defaultsPath, "defaults", "", "path to a YAML nesting defaults file (overrides the user config default)")
	runCmd.Flags().StringVar(&pdfPath, "pdf", "", "write a per-sheet layout PDF to this path")
	runCmd.Flags().StringVar(&xlsxReport, "xlsx-report", "", "write an XLSX statistics/unplaced report to this path")
}

func runNest(cmd *cobra.Command, args []string) error {
	runID := uuid.New().String()
	log := logging.New(os.Stderr, fmt.Sprintf("nest[%s]: ", runID[:8]))

	loadStart := time.Now()
	job, err := ioformat.LoadJob(args[0])
	if err != nil {
		return emitFatal(log, err)
	}
	loadingTime := time.Since(loadStart).Seconds()

	prepStart := time.Now()
	cfgPath := defaultsPath
	if cfgPath == "" {
		cfgPath = project.DefaultConfigPath()
	}
	cfg, err := project.LoadAppConfig(cfgPath)
	if err != nil {
		log.Warnf("could not load defaults file, using built-in defaults: %v", err)
		cfg = model.DefaultAppConfig()
	}
	params := model.LoadParameters(job.Parameters, cfg)
	preparationTime := time.Since(prepStart).Seconds()

	nestingStart := time.Now()
	eng := engine.New(params, log)
	outcome, err := eng.Run(job.Parts, job.Sheets)
	if err != nil {
		return emitFatal(log, err)
	}
	nestingTime := time.Since(nestingStart).Seconds()

	stats := buildStatistics(job, outcome, loadingTime, preparationTime, nestingTime)
	result := ioformat.BuildResult(outcome.Placements, outcome.Unplaced, stats)

	if pdfPath != "" {
		if err := export.ExportPDF(pdfPath, job, result); err != nil {
			log.Warnf("failed to write layout PDF: %v", err)
		}
	}
	if xlsxReport != "" {
		if err := export.WriteStatisticsReport(xlsxReport, result); err != nil {
			log.Warnf("failed to write XLSX report: %v", err)
		}
	}

	return ioformat.WriteResult(os.Stdout, result)
}

func buildStatistics(job model.Job, outcome engine.Outcome, loadingTime, preparationTime, nestingTime float64) model.Statistics {
	requested := 0
	for _, p := range job.Parts {
		requested += p.Quantity
	}
	unplacedTotal := 0
	for _, u := range outcome.Unplaced {
		unplacedTotal += u.Quantity
	}
	return model.Statistics{
		TotalPartsRequested:    requested,
		TotalPartsPlaced:       len(outcome.Placements),
		TotalPartsUnplaced:     unplacedTotal,
		InitiallySkipped:       outcome.InitiallySkipped,
		UnplacedDuringNesting:  outcome.DuringNesting,
		NestingTimeSeconds:     nestingTime,
		PreparationTimeSeconds: preparationTime,
		LoadingTimeSeconds:     loadingTime,
	}
}

// emitFatal writes the fatal result document for an unrecoverable
// error: the message always names the error itself, with the full
// error text repeated in error_details.
func emitFatal(log logging.Logger, err error) error {
	log.Printf("FATAL %v", err)
	if writeErr := ioformat.WriteResult(os.Stdout, ioformat.FatalResult(err.Error(), err)); writeErr != nil {
		log.Printf("FATAL failed to write result document: %v", writeErr)
	}
	return err
}
