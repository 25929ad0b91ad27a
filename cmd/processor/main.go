package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"cashflow-pipeline/internal/domain"
	"cashflow-pipeline/internal/gateway"
	"cashflow-pipeline/internal/usecase"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; flags still win over the environment.
	_ = godotenv.Load()

	inputPath := flag.String("input", getEnv("INPUT_FILE", "sample_data.csv"), "Path to the transactions CSV file")
	outputDir := flag.String("output", getEnv("OUTPUT_DIR", "output"), "Directory for the generated CSV reports")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	// --- Dependency Injection (Wiring the application) ---
	repo := gateway.NewCSVTransactionRepository()
	writer := gateway.NewCSVReportWriter(*outputDir)
	sink := &progressLogger{logger: logger}

	processor := usecase.NewProcessingUseCase(repo, writer, sink)

	// --- Execute the Usecase ---
	logger.Info("Reading transactions", "file", *inputPath)
	result, err := processor.Process(context.Background(), *inputPath)
	if err != nil {
		logger.Fatal("Processing failed", "err", err)
	}

	logger.Info("Saved clean transactions",
		"file", filepath.Join(*outputDir, gateway.CleanTransactionsFile),
		"rows", result.Report.CleanRows)
	logger.Info("Saved monthly summary",
		"file", filepath.Join(*outputDir, gateway.MonthlySummaryFile),
		"months", result.Report.Months)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// progressLogger renders the pipeline's structured diagnostics as log lines.
type progressLogger struct {
	logger *log.Logger
}

func (p *progressLogger) RecordsLoaded(total int, columns []string) {
	p.logger.Info("Loaded transactions", "rows", total, "columns", strings.Join(columns, ","))
}

func (p *progressLogger) DatesResolved(stats domain.DateResolutionStats) {
	if stats.PrimaryFailures == 0 && stats.FallbackFailures == 0 {
		p.logger.Info("All dates resolved by the day-first parse")
		return
	}
	p.logger.Warn("Some dates needed the fallback parse or stayed unresolved",
		"primary_failures", stats.PrimaryFailures,
		"unresolved", stats.FallbackFailures,
		"samples", strings.Join(stats.FailedSamples, ", "))
}

func (p *progressLogger) RowsDropped(dropped, kept int) {
	if dropped == 0 {
		p.logger.Info("All rows passed validation", "rows", kept)
		return
	}
	p.logger.Warn("Dropped rows with missing or invalid data", "dropped", dropped, "kept", kept)
}

func (p *progressLogger) SummaryReady(months int) {
	p.logger.Info("Generated monthly summary", "months", months)
}
