// Command screenshot-mcp serves desktop screenshot capture as MCP tools.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yushinna/screenshot-mcp/internal/capture"
	"github.com/yushinna/screenshot-mcp/internal/logging"
	"github.com/yushinna/screenshot-mcp/internal/server"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screenshot-mcp",
		Short: "MCP server for desktop screenshot capture",
		Long: "screenshot-mcp exposes the platform screenshot utility as callable tools:\n" +
			"full-desktop, window, and area captures plus a listing of saved shots.\n" +
			"It speaks MCP over stdio by default, or serves an HTTP facade with --http-addr.",
		SilenceUsage: true,
		RunE:         run,
	}

	flags := cmd.Flags()
	flags.String("dir", "", "screenshot directory (default ~/Desktop/mcp-screenshots)")
	flags.String("binary", "", "capture utility to invoke (default screencapture)")
	flags.Duration("timeout", 0, "bound for synchronous captures (0 waits forever)")
	flags.String("http-addr", "", "serve the HTTP facade on this address instead of stdio")
	flags.String("token", "", "bearer token required by the HTTP facade")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	viper.SetEnvPrefix("SCREENSHOT_MCP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlags(flags))

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	log, err := logging.New(logging.Options{
		Level:  viper.GetString("log-level"),
		Format: viper.GetString("log-format"),
	})
	if err != nil {
		return err
	}

	adapter, err := capture.New(capture.Config{
		Dir:     viper.GetString("dir"),
		Binary:  viper.GetString("binary"),
		Timeout: viper.GetDuration("timeout"),
	}, nil, log)
	if err != nil {
		return err
	}

	if addr := viper.GetString("http-addr"); addr != "" {
		token := viper.GetString("token")
		if token == "" {
			log.Warn("no token set; HTTP endpoints will be open")
		}
		srv := server.New(server.Config{Addr: addr, Token: token}, adapter, log)
		log.Info("serving HTTP", "addr", addr, "dir", adapter.Dir())
		return srv.Serve()
	}

	return server.ServeStdio(adapter, log)
}
