// geotool prints, validates and exports the meshes the glance generators
// and OBJ loader produce.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Echtzeit-Computergrafik-WS23/glance/internal/config"
	"github.com/Echtzeit-Computergrafik-WS23/glance/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := &tool{cfg: cfg, log: logger.Named("geotool"), out: os.Stdout}
	if err := t.run(ctx, config.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			printUsage()
		} else {
			logger.Error("command failed", zap.Error(err))
		}
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `geotool - procedural mesh utility

Usage:
  geotool [flags] <command> [arguments]

Commands:
  info <source>              Show vertex, index and layout statistics
  validate <source>          Check that every index names a vertex
  export <source> <out.obj>  Write the mesh as OBJ ("-" for stdout)

Sources:
  cube, cylinder, sphere, skybox   built-in shapes, sized by the config file
  path/to/model.obj                an OBJ file
  https://host/model.obj           an OBJ file fetched over HTTP

Flags:
  -config <file>   config file (default ./config.yaml or the user config dir)
  -debug           enable debug logging
  -log <file>      also write logs to a file

Examples:
  geotool info sphere
  geotool validate assets/gear.obj
  geotool export cylinder cylinder.obj`)
}
