package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/healthgate/internal/buildinfo"
	"github.com/dmitrijs2005/healthgate/internal/client/cli"
	"github.com/dmitrijs2005/healthgate/internal/config"
	"github.com/dmitrijs2005/healthgate/internal/core"
	"github.com/dmitrijs2005/healthgate/internal/logging"

	gs "github.com/dmitrijs2005/healthgate/internal/server/grpc"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	backend, err := newBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app := cli.NewApp(backend, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}

// newBackend connects to a remote gateway when a server address is set and
// otherwise runs the core in-process with logs on stderr.
func newBackend(ctx context.Context, cfg *config.Config) (cli.Backend, error) {
	if cfg.ServerAddr != "" {
		c, err := gs.NewClient(cfg.ServerAddr)
		if err != nil {
			return nil, err
		}
		return cli.NewRemoteBackend(c), nil
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return nil, err
	}
	c, err := core.Build(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return cli.NewLocalBackend(c), nil
}
