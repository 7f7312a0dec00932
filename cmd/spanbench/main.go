package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamNilotpal/spanbench/config"
	"github.com/iamNilotpal/spanbench/internal/adapters/archive"
	"github.com/iamNilotpal/spanbench/internal/adapters/buffer"
	"github.com/iamNilotpal/spanbench/internal/adapters/fingerprint"
	"github.com/iamNilotpal/spanbench/internal/adapters/hostinfo"
	"github.com/iamNilotpal/spanbench/internal/adapters/report"
	"github.com/iamNilotpal/spanbench/internal/core/domain"
	"github.com/iamNilotpal/spanbench/internal/core/services/bench"
	"github.com/iamNilotpal/spanbench/pkg/errors"
	"github.com/iamNilotpal/spanbench/pkg/logger"
	"github.com/iamNilotpal/spanbench/pkg/system"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	history := flag.Bool("history", false, "print the archived runs and exit")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "spanbench: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log := logger.New("spanbench", cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, *history, os.Stdin, os.Stdout, log)
	stop()

	code := exitCode(log, err)
	log.Sync()
	if code != 0 {
		os.Exit(code)
	}
}

// exitCode logs err and returns the process status for it. A fatal error
// means the measured numbers are wrong, so it panics instead of returning.
func exitCode(log *zap.SugaredLogger, err error) int {
	if err == nil {
		return 0
	}

	if errors.IsFatal(err) {
		log.Errorw("benchmark aborted", "category", errors.CategoryName(errors.CategoryOf(err)), "error", err)
		log.Sync()
		panic(err)
	}

	if ve := errors.AsValidationError(err); ve != nil {
		log.Errorw("invalid options", "field", ve.Field, "value", ve.Value, "error", ve.Err)
	} else {
		log.Errorw("benchmark failed", "error", err)
	}
	return 1
}

// run executes one benchmark, or prints the archive when history is set.
// The pid line and report lines go to stdout; stdin answers the attach prompt.
func run(
	ctx context.Context, cfg *config.Config, history bool,
	stdin io.Reader, stdout io.Writer, log *zap.SugaredLogger,
) (err error) {
	var runArchive *archive.Archive
	if cfg.Archive.Path != "" {
		runArchive, err = archive.Open(cfg.ArchiveOptions())
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, runArchive.Close())
		}()
	}

	if history {
		if runArchive == nil {
			return errors.Validationf("archive.path", "", "-history needs an archive path")
		}
		reports, err := runArchive.ReadAll()
		if err != nil {
			return err
		}
		return report.WriteHistory(stdout, reports)
	}

	rep := &domain.Report{
		StartedAt:            time.Now(),
		PID:                  os.Getpid(),
		BufferSize:           cfg.Buffer.Size,
		Iterations:           cfg.Bench.Iterations,
		Seed:                 cfg.Buffer.Seed,
		Source:               domain.ByteSource(cfg.Buffer.Source),
		Memory:               domain.MemoryKind(cfg.Buffer.Memory),
		FingerprintAlgorithm: domain.FingerprintAlgorithm(cfg.Report.Fingerprint),
	}

	// Attach point for an external profiler.
	fmt.Fprintf(stdout, "(Id: %d)\n", rep.PID)
	if cfg.Attach.WaitForKey {
		if err := system.WaitForKey(ctx, stdin); err != nil {
			return err
		}
	}

	host, herr := hostinfo.Collect(ctx)
	if herr != nil {
		log.Warnw("host info incomplete", "error", herr)
	}
	rep.Host = host
	log.Infow(
		"host", "cpu", host.CPUModel, "cores", host.LogicalCores,
		"memory", host.TotalMemory, "features", host.CPUFeatures,
	)

	buf, err := buffer.Generate(cfg.BufferOptions())
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, errors.NewBenchError(errors.ErrorBuffer, "release", buf.Release()))
	}()

	fp, err := fingerprint.New(rep.FingerprintAlgorithm)
	if err != nil {
		return err
	}
	rep.Fingerprint = fp.Calculate(buf.Bytes())
	log.Infow(
		"buffer ready", "size", buf.Len(), "seed", cfg.Buffer.Seed, "source", cfg.Buffer.Source,
		"memory", buf.Memory(), "fingerprint", fmt.Sprintf("%s:%016x", fp.Name(), rep.Fingerprint),
	)

	reporter, err := report.New(report.Format(cfg.Report.Format), stdout)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, errors.NewBenchError(errors.ErrorReport, "close", reporter.Close()))
	}()

	b, err := bench.New(cfg.BenchOptions(), bench.Dependencies{Reporter: reporter, Logger: log})
	if err != nil {
		return err
	}

	rep.Runs, err = b.Execute(ctx, buf)
	if err != nil {
		return err
	}

	if runArchive != nil {
		if err := runArchive.Append(rep); err != nil {
			return err
		}
		log.Infow("run archived", "path", runArchive.Path(), "runs", len(rep.Runs))
	}

	return nil
}
