package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"figstats/lib/configutil"
	"figstats/lib/figshare"
	"figstats/lib/restyutil"
	"figstats/lib/serviceutil"
	"figstats/lib/telemetry"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type Config struct {
	Figshare figshare.ClientOptions `json:"figshare"`
}

var configPath *string
var debugHttp *string
var verbose *bool

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "figstats.json5", "The path to a configuration file.")
	debugHttp = rootCmd.PersistentFlags().String("debug-http", "", "Write http exchanges to this directory for debugging.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
}

var telemetryShutdown = func() {}

var rootCmd = &cobra.Command{
	Use:   "figstats",
	Short: "figstats is a CLI for the figshare statistics and account APIs.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initSlog(*verbose)

		tel, err := telemetry.SetupFromEnv(cmd.Context(), "figstats")
		if err != nil && !os.IsNotExist(err) {
			serviceutil.Fatal("failed to setup telemetry", err)
		}
		if err == nil {
			telemetry.InstrumentPerfStats(cmd.Context())
			telemetryShutdown = func() {
				if err := tel.Shutdown(context.Background()); err != nil {
					slog.Error("failed to shutdown telemetry", "err", err.Error())
				}
			}
		}

		if *debugHttp != "" {
			figshare.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(*debugHttp))
		}
	},
}

func initSlog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}

// createClient builds a figshare client from the configuration file and
// the FIGSHARE_BASIC_TOKEN, FIGSHARE_API_TOKEN and FIGSHARE_INSTITUTE
// environment variables. Environment variables win over the file.
func createClient() *figshare.Client {
	cfg, err := configutil.ReadConfig[Config](*configPath)
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	if token, ok := os.LookupEnv("FIGSHARE_BASIC_TOKEN"); ok {
		cfg.Figshare.BasicToken = token
	}
	if token, ok := os.LookupEnv("FIGSHARE_API_TOKEN"); ok {
		cfg.Figshare.ApiToken = token
	}
	if institute, ok := os.LookupEnv("FIGSHARE_INSTITUTE"); ok {
		cfg.Figshare.Institute = institute
	}

	client, err := figshare.NewClient(cfg.Figshare)
	if err != nil {
		serviceutil.Fatal("failed to initialize figshare client", err)
	}
	return client
}

func ExecuteContext(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	telemetryShutdown()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
