package main

import (
	"context"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/spf13/cobra"

	"docket"
	"docket/conf"
)

var (
	serveAddr string
	serveConf string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the task API over HTTP",
	Long:  `Serve the task API over HTTP. The store is loaded once at startup and flushed back to the task file on graceful shutdown and on export requests.`,
	Run:   serveTasks,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	serveCmd.Flags().StringVarP(&serveConf, "config", "c", "", "Path to a yaml config file")
}

// newServeLogger applies the logging config: level filter always, caller
// annotation when asked for.
func newServeLogger(base log.Logger, c conf.Logging) log.Logger {
	if c.Caller {
		base = log.With(base, "caller", log.DefaultCaller)
	}
	return log.NewFilter(base, log.FilterLevel(log.ParseLevel(c.Level)))
}

func serveTasks(cmd *cobra.Command, args []string) {
	bc := conf.Default()
	if serveConf != "" {
		c := config.New(config.WithSource(file.NewSource(serveConf)))
		defer c.Close()

		if err := c.Load(); err != nil {
			fatal("Failed to load config %s: %v", serveConf, err)
		}
		if err := c.Scan(&bc); err != nil {
			fatal("Failed to parse config %s: %v", serveConf, err)
		}
	}
	if serveAddr != "" {
		bc.Server.Addr = serveAddr
	}
	if cmd.Flags().Changed("file") {
		bc.Storage.Path = taskFile
	}

	logger := newServeLogger(log.GetLogger(), bc.Logging)

	st := docket.Open(bc.Storage.Path,
		docket.WithLogger(logger),
		docket.WithExportPath(bc.Storage.ExportPath),
	)
	srv := docket.NewServer(bc.Server.Addr, st, logger)

	app := kratos.New(
		kratos.Name(name),
		kratos.Version(version),
		kratos.Logger(logger),
		kratos.Server(srv),
		kratos.AfterStart(func(context.Context) error {
			log.Infof("%s started, tasks from %s", name, bc.Storage.Path)
			return nil
		}),
		kratos.AfterStop(func(context.Context) error {
			// Flush-on-shutdown; a failed save is already logged by the store.
			_ = st.Persist()
			return nil
		}),
	)

	if err := app.Run(); err != nil {
		fatal("%v", err)
	}
}
