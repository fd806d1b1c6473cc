package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

const usageExamples = `
Examples:
  node app.js | prettylogs
  node app.js | prettylogs -l debug
  prettylogs -c api service.log
  prettylogs -c http,api service.log.gz
  prettylogs -c '!db' --utc service.log.zst
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole CLI behind main. It returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetFlags(0)
	log.SetPrefix("prettylogs: ")

	loadDotEnv()

	fs := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "prettylogs: %v\n", err)
		return 2
	}

	if showVersion, _ := fs.GetBool("version"); showVersion {
		fmt.Fprintf(stdout, "prettylogs - pino log prettifier\n")
		fmt.Fprintf(stdout, "  Version:    %s\n", version)
		fmt.Fprintf(stdout, "  Commit:     %s\n", commit)
		fmt.Fprintf(stdout, "  Built:      %s\n", buildTime)
		fmt.Fprintf(stdout, "  Go version: %s\n", goVersion)
		return 0
	}

	configPath, _ := fs.GetString("config")
	cfg, err := loadConfig(configPath, fs)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	ctx, stop := shutdownContext(context.Background())
	defer stop()

	if err := runPrettifier(ctx, cfg, fs.Args(), stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("prettylogs", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	fs.StringP("level", "l", defaultLevel, "minimum level to show: trace, debug, info, warn, error, fatal (default $LOG_LEVEL);\n"+
		"aliases such as warning, err and crit are accepted, any other name means info")
	fs.StringP("category", "c", "", "category filter, comma separated; prefix a name with ! to exclude it")
	fs.BoolP("utc", "u", false, "print timestamps in UTC")
	fs.BoolP("inline", "i", false, "print extra fields on the header line")
	fs.BoolP("quiet", "q", false, "do not print extra fields")
	fs.BoolP("discard", "d", false, "drop lines that are not pino records")
	fs.BoolP("no-color", "n", false, "disable colors")
	fs.String("skin", defaultSkin, "skin name or YAML file with the color palette")
	fs.Int("max-line-size", defaultMaxLineSize, "longest accepted input line in bytes")
	fs.Int("line-buffer", defaultLineBuffer, "lines buffered between reader and printer")
	fs.String("config", "", "config file (default is $HOME/.config/prettylogs/config.yml)")
	fs.BoolP("version", "V", false, "print version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: prettylogs [flags] [file ...]\n\n")
		fmt.Fprintf(stderr, "Prettifies pino NDJSON logs read from files or stdin.\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprint(stderr, usageExamples)
	}
	return fs
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: loading .env: %v", err)
	}
}
