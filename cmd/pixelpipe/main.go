package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ironsheep/pixel-pipeline/internal/codec"
	"github.com/ironsheep/pixel-pipeline/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	outDir     = flag.String("out", "out", "output directory")
	format     = flag.String("format", "", "output format (png/jpg/gif/bmp/tif), defaults to the input's")
	sampling   = flag.String("sampling", "full", "scan sampling: full, half or quarter")
	fit        = flag.String("fit", "", "pre-fit the input into WxH before processing")
	channelStr = flag.String("channels", "rgb", "channel selector: r, g, b, a or rgb")
	keepAlpha  = flag.Bool("keep-alpha", true, "grayscale keeps the source alpha")
	fillColor  = flag.String("color", "", "fill color for transparent pixels (#RRGGBB)")
	demoSize   = flag.String("size", "256x256", "demo image size as WxH")
	debug      = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pixelpipe %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	if err := flag.CommandLine.Parse(os.Args[2:]); err != nil {
		log.Fatal(err)
	}

	logger := buildLogger()

	switch cmd {
	case "channels":
		runChannels(requireInput(), logger)
	case "grayscale":
		runGrayscale(requireInput(), logger)
	case "invert":
		runInvert(requireInput(), logger)
	case "stats":
		runStats(requireInput(), logger)
	case "demo":
		runDemo(logger)
	default:
		fmt.Printf("unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("pixelpipe - deferred pixel-pipeline processor")
	fmt.Println()
	fmt.Println("Usage: pixelpipe <command> [options] [input]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  channels <in>    Split the image into per-channel maps")
	fmt.Println("  grayscale <in>   Convert the image to grayscale")
	fmt.Println("  invert <in>      Invert the selected channels")
	fmt.Println("  stats <in>       Print scan statistics for the image")
	fmt.Println("  demo             Generate demo images and run a sample pipeline")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
}

func requireInput() string {
	if flag.NArg() < 1 {
		log.Fatal("missing input file argument")
	}
	return flag.Arg(0)
}

func buildLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !*debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	return logger
}

func parseSampling(s string) pipeline.Sampling {
	switch strings.ToLower(s) {
	case "half":
		return pipeline.HalfSampling
	case "quarter":
		return pipeline.QuarterSampling
	default:
		return pipeline.FullSampling
	}
}

// parseSize parses a "WxH" string.
func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, expected WxH", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if w < 0 || h < 0 {
		return 0, 0, fmt.Errorf("invalid size %q, dimensions must not be negative", s)
	}
	return w, h, nil
}

// loadPipeline reads and decodes the input file, optionally pre-fitting it
// into the --fit box.
func loadPipeline(path string, logger *zap.Logger) *pipeline.Pipeline {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	opts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithSampling(parseSampling(*sampling)),
	}

	p, err := pipeline.Decode(data, opts...)
	if err != nil {
		log.Fatal(err)
	}

	if *fit != "" {
		w, h, err := parseSize(*fit)
		if err != nil {
			log.Fatal(err)
		}
		fitted := imaging.Fit(p.Primary(), w, h, imaging.Lanczos)
		if err := p.Close(); err != nil {
			log.Fatal(err)
		}
		p = pipeline.FromImage(fitted, opts...)
	}

	logger.With(
		zap.String("file", path),
		zap.Int("width", p.Primary().Width()),
		zap.Int("height", p.Primary().Height()),
	).Debug("input loaded")
	return p
}

// outFormat picks the output format from --format, or from the input
// path's extension when the flag is empty. Both fall back to PNG.
func outFormat(input string) codec.Format {
	if *format != "" {
		return codec.FormatFromExtension(*format)
	}
	return codec.FormatFromPath(input)
}

// savePrimary writes the primary buffer, which SaveEach skips.
func savePrimary(p *pipeline.Pipeline, name string, f codec.Format, logger *zap.Logger) {
	data, err := p.Encode("", f)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}
	file := filepath.Join(*outDir, name+"."+f.Extension())
	if err := os.WriteFile(file, data, 0644); err != nil {
		log.Fatal(err)
	}
	logger.With(zap.String("file", file)).Info("image saved")
}
