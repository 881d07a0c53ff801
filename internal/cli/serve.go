package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yaklabco/breeze/internal/channel"
	"github.com/yaklabco/breeze/internal/logging"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve editor requests over stdin and stdout",
		Long: `Read one JSON request per line from stdin and write one JSON response
per line to stdout. Each editor buffer gets its own session, so a buffer is
only re-parsed after it changes. Logs go to stderr.

Request:
  {"id":1,"op":"match-tag","buffer":1,"lines":["<p>","</p>"],
   "modified":true,"cursor":[1,0],"background":"dark"}

Response:
  {"id":1,"cursor":[2,0]}`,
		Args: exactArgs(0),
		RunE: runServe,
	}

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewWriter(cmd.ErrOrStderr(), cfg.LogLevel)

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := channel.NewServer(cfg, channel.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Debug("serving on stdin")
	return server.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}
