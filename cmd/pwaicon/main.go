package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/trashhalo/pwaicon"
	"github.com/trashhalo/pwaicon/lib"
	"github.com/trashhalo/pwaicon/log"
	"github.com/trashhalo/pwaicon/pkg/backend"
	"github.com/trashhalo/pwaicon/pkg/config"
	"github.com/trashhalo/pwaicon/pkg/preview"
)

const usage = `pwaicon [flags]

Writes public/pwa-192x192.png and public/pwa-512x512.png.

Examples:
    pwaicon
    pwaicon -out web/static -sizes 48,192,512
    pwaicon -backend rsvg -install "apt-get install -y librsvg2-bin"
    pwaicon -dry-run -preview

Flags:`

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	configFlag := flag.String("config", "", "TOML config file")
	outFlag := flag.String("out", "", "output directory (default public)")
	sizesFlag := flag.String("sizes", "", "comma separated edge lengths (default 192,512)")
	backendFlag := flag.String("backend", "", "drawing backend: "+strings.Join(backend.Names(), ", "))
	installFlag := flag.String("install", "", "command that installs a missing backend")
	previewFlag := flag.Bool("preview", false, "show the icons in the terminal afterwards")
	dryRunFlag := flag.Bool("dry-run", false, "render in memory only, implies -preview")
	cycleFlag := flag.Duration("cycle", 0, "preview auto-advance interval, e.g. 2s")
	verboseFlag := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	log.Init(os.Stderr, *verboseFlag)

	cfg, err := loadConfig(*configFlag, *outFlag, *sizesFlag, *backendFlag, *installFlag)
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var sources []lib.Source
	if *dryRunFlag {
		sources, err = pwaicon.DryRun(ctx, cfg)
		if err != nil {
			fatal(err)
		}
	} else {
		paths, err := pwaicon.Generate(ctx, cfg)
		if err != nil {
			fatal(err)
		}
		for _, p := range paths {
			sources = append(sources, lib.FileImage{Filename: p})
		}
	}

	if *previewFlag || *dryRunFlag {
		if err := preview.Run(sources, *cycleFlag); err != nil {
			fatal(err)
		}
	}
}

func loadConfig(path, out, sizes, backendName, install string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}
	if out != "" {
		cfg.OutDir = out
	}
	if sizes != "" {
		parsed, err := config.ParseSizes(sizes)
		if err != nil {
			return cfg, err
		}
		cfg.Sizes = parsed
	}
	if backendName != "" {
		cfg.Backend = backendName
	}
	if install != "" {
		cfg.InstallCommand = strings.Fields(install)
	}
	return cfg, cfg.Validate()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "pwaicon:", err)
	os.Exit(1)
}
