package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/rviscarra/multi-screenshot/internal/api"
	"github.com/rviscarra/multi-screenshot/internal/capture"
	"github.com/rviscarra/multi-screenshot/internal/logging"
	"github.com/rviscarra/multi-screenshot/internal/rdisplay"
)

func main() {

	output := flag.String("output", capture.DefaultPattern, "Output file pattern, %d is replaced by the monitor number")
	screen := flag.Int("screen", rdisplay.ScopeEach, "-1 for all monitors in one file, 0 for one file per monitor, N for monitor N only")
	platform := flag.String("platform", runtime.GOOS, fmt.Sprintf("Capture backend %v", rdisplay.Platforms()))
	overwrite := flag.Bool("overwrite", true, "Overwrite existing files")
	scale := flag.Float64("scale", 0, "Downscale factor in (0, 1], 0 or 1 keeps the native size")
	logLevel := flag.String("log.level", "info", "Log level (debug, info, warn, error)")
	logFormat := flag.String("log.format", "text", "Log format (text, json)")
	httpPort := flag.String("http.port", "", "Serve the HTTP API on this port instead of capturing once")
	httpDir := flag.String("http.dir", ".", "Directory receiving captures requested over HTTP")
	flag.Parse()

	logger, err := logging.New(logging.Options{Level: *logLevel, Format: *logFormat})
	if err != nil {
		log.Fatalf("Can't init logging: %v", err)
	}

	display, err := rdisplay.NewService(*platform)
	if err != nil {
		log.Fatalf("Can't init capture backend: %v", err)
	}
	logger.Debug("capture backend ready", "platform", *platform, "arch", rdisplay.Arch())

	orch, err := capture.New(capture.Options{
		Display: display,
		Logger:  logger,
		Scale:   *scale,
	})
	if err != nil {
		log.Fatalf("Can't init capture: %v", err)
	}

	if *httpPort != "" {
		serve(*httpPort, *httpDir, display, orch, logger)
		return
	}

	var policy capture.OverwritePolicy = capture.AcceptAll
	if !*overwrite {
		policy = capture.SkipExisting
	}
	failed := false
	for path, err := range orch.Capture(*output, *screen, policy).Seq() {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			failed = true
			continue
		}
		fmt.Println(path)
	}
	if failed {
		os.Exit(1)
	}
}

func serve(port, dir string, display rdisplay.Service, orch *capture.Orchestrator, logger *slog.Logger) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		log.Fatalf("Can't resolve %q: %v", dir, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", api.MakeHandler(display, orch, abs, logger)))

	errors := make(chan error, 2)
	go func() {
		logger.Info("starting capture API", "port", port, "dir", abs)
		errors <- http.ListenAndServe(fmt.Sprintf(":%s", port), mux)
	}()

	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
		errors <- fmt.Errorf("Received %v signal", <-interrupt)
	}()

	err = <-errors
	logger.Info("exiting", "reason", err)
}
