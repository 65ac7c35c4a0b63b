// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	emitCmdUsage = "emit LEVEL MESSAGE [key=value...]"
	emitCmdShort = "emit a single log record"
	emitCmdLong  = `Emit a single log record through a logger built from the environment,
	an optional configuration file and the command flags.

	Every key=value argument after the message becomes a metadata field of the
	record. Values are decoded as JSON when possible and kept as strings otherwise.

	Flags take precedence over the configuration file, which takes precedence
	over the LOGLANE_* environment variables.`

	emitCmdExample = `# Emit an info record with two fields
	loglane emit info "svc starting" port=8080 region=eu

	# Emit a JSON record with a prefix and a timestamp
	loglane emit warn "disk almost full" --format json --prefix storage --timestamp

	# Emit a record on the console and on a rotating file described in a config file
	loglane emit error "payment failed" -c loglane.yaml`
)

// EmitCmd returns the Cobra command that writes a single record.
func EmitCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     emitCmdUsage,
		Short:   heredoc.Doc(emitCmdShort),
		Long:    heredoc.Doc(emitCmdLong),
		Example: heredoc.Doc(emitCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: validArgsFunc(),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

const (
	serveCmdUsage = "serve"
	serveCmdShort = "start an HTTP server that emits the records it receives"
	serveCmdLong  = `Start an HTTP server that writes every record posted on /records through
	a logger built from the environment and an optional configuration file.

	The server also exposes the /-/healthz and /-/ready status routes and the
	/-/metrics route with the count of the emitted records. The listening address
	is read from the HTTP_HOST and HTTP_PORT environment variables.`

	serveCmdExample = `# Start the server and emit a record
	loglane serve -c loglane.yaml &
	curl -X POST localhost:3000/records -H 'Content-Type: application/json' \
		-d '{"level":"info","message":"svc starting","fields":{"port":8080}}'`
)

// ServeCmd returns the Cobra command that starts the records server.
func ServeCmd() *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:     serveCmdUsage,
		Short:   heredoc.Doc(serveCmdShort),
		Long:    heredoc.Doc(serveCmdLong),
		Example: heredoc.Doc(serveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.toOptions(cmd)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
