package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/yomi-daytime/internal/clock"
	"github.com/username/yomi-daytime/internal/config"
	"github.com/username/yomi-daytime/internal/daemon"
	"github.com/username/yomi-daytime/internal/yomi"
	"github.com/username/yomi-daytime/pkg/dateutil"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := serveCmd()

	rootCmd := &cobra.Command{
		Use:   "yomi-daytime [host:port]",
		Short: "Daytime server speaking the Japanese reading of the time",
		Long: "Listens on TCP (default 0.0.0.0:13) and writes the current date and time, " +
			"read aloud in romanised Japanese, to every client that connects",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log)
				if err != nil {
					logger = initLogger(cfg.Log.Level) // Fallback to console
				}
			} else {
				logger = initLogger(cfg.Log.Level)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: serve.RunE,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Config file path (default: config.yaml in ., $HOME/.yomi-daytime, /etc/yomi-daytime)")

	rootCmd.AddCommand(serve, renderCmd())

	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve [host:port]",
		Short: "Run the daytime server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := resolveAddr(cfg, args)
			if err != nil {
				return err
			}

			d := daemon.New(
				addr,
				clock.NewSystem(cfg.Clock.GetLocation()),
				cfg.Server.GetWriteTimeout(),
				logger,
			)

			return d.Start()
		},
	}
}

// resolveAddr picks the bind address; a positional host:port beats config
func resolveAddr(cfg *config.Config, args []string) (string, error) {
	if len(args) == 0 {
		return cfg.Server.Addr, nil
	}
	if err := config.ValidateAddr(args[0]); err != nil {
		return "", fmt.Errorf("invalid address %q: %w", args[0], err)
	}
	return args[0], nil
}

func renderCmd() *cobra.Command {
	var at string
	var tz string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the reading for now or for --at and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := cfg.Clock.GetLocation()
			if tz != "" {
				var err error
				loc, err = clock.LoadLocation(tz)
				if err != nil {
					return err
				}
			}

			var c clock.Clock = clock.NewSystem(loc)
			if at != "" {
				t, err := dateutil.ParseDate(at, loc)
				if err != nil {
					return fmt.Errorf("failed to parse --at: %w", err)
				}
				c = clock.Fixed(t)
			}

			reading, err := yomi.Format(clock.Snapshot(c))
			if err != nil {
				return err
			}

			logger.Debug("Rendered reading",
				zap.Time("at", c.Now()),
				zap.String("reading", reading))

			fmt.Fprintln(cmd.OutOrStdout(), reading)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Moment to render, e.g. 2023-04-07T09:05:03 (default now)")
	cmd.Flags().StringVar(&tz, "tz", "", "Timezone name, e.g. Asia/Tokyo (default from config)")

	return cmd
}

func initLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return logger
}

func initFileLogger(lc config.LogConfig) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   lc.File,
		MaxSize:    lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAge:     lc.MaxAgeDays,
		Compress:   lc.Compress,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(lc.Level),
	)

	return zap.New(core), nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}
