package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/Stasnislawe/TZ-1ST-IT-COMPANY/cascade"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds what every subcommand shares.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	cmd := &cobra.Command{
		Use:           "cashflowctl",
		Short:         "Inspect record form options and check record values",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("base-url", "http://localhost:8080", "catalog server base URL")
	flags.Duration("timeout", 10*time.Second, "HTTP request timeout")
	flags.String("catalog-path", cascade.DefaultCatalogPath, "bulk catalog endpoint path")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text or json)")

	_ = a.v.BindPFlag("client.base_url", flags.Lookup("base-url"))
	_ = a.v.BindPFlag("client.timeout", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("client.catalog_path", flags.Lookup("catalog-path"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))

	cmd.AddCommand(newOptionsCmd(a), newValidateCmd(a))
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	_ = godotenv.Load()

	a.v.SetEnvPrefix("CASHFLOW")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	a.log.SetOutput(cmd.ErrOrStderr())
	level, err := logrus.ParseLevel(a.v.GetString("log.level"))
	if err != nil {
		level = logrus.WarnLevel
	}
	a.log.SetLevel(level)
	if a.v.GetString("log.format") == "json" {
		a.log.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

func (a *app) source() *cascade.HTTPSource {
	return cascade.NewHTTPSource(a.v.GetString("client.base_url"),
		cascade.WithCatalogPath(a.v.GetString("client.catalog_path")),
		cascade.WithHTTPClient(&http.Client{Timeout: a.v.GetDuration("client.timeout")}),
	)
}
