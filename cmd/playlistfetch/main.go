// Package main provides the playlistfetch web service entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"playlistfetch/internal/core"
	httpserver "playlistfetch/internal/http"
	"playlistfetch/internal/spotify"
)

const (
	envPrefix          = "PLAYLISTFETCH"
	defaultEnvFile     = ".env"
	envExampleFile     = ".env.example"
	authCheckTimeout   = 10 * time.Second
	envFilePermissions = 0600
)

var (
	cfgFile string
	config  *core.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "playlistfetch",
	Short: "playlistfetch - list the tracks of a Spotify playlist",
	Long: `playlistfetch is a small web service that takes a Spotify playlist link
and returns the track names and artists of the playlist's first page.`,
	RunE: runPlaylistFetch,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "env file to load (default is .env)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("spotify-client-id", "", "Spotify client ID (env: CLIENT_ID)")
	rootCmd.PersistentFlags().String("spotify-client-secret", "", "Spotify client secret (env: CLIENT_SECRET)")
	rootCmd.PersistentFlags().String("spotify-token-url", core.DefaultSpotifyTokenURL, "Spotify Accounts token endpoint")
	rootCmd.PersistentFlags().String("spotify-api-url", core.DefaultSpotifyAPIBaseURL, "Spotify Web API base URL")
	rootCmd.PersistentFlags().String("server-host", core.DefaultServerHost, "HTTP server host")
	rootCmd.PersistentFlags().Int("server-port", core.DefaultServerPort, "HTTP server port")
	rootCmd.PersistentFlags().Bool("generate-env-example", false, "Generate .env.example file from current configuration and exit")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bind flags: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	envFile := defaultEnvFile
	if cfgFile != "" {
		envFile = cfgFile
	}

	if err := loadEnvFile(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading env file: %v\n", err)
	}

	bindEnv()

	config = buildConfig()
	logger = buildLogger(config.Log.Level)
}

// loadEnvFile loads variables from path without overriding the process environment.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if err := gotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func bindEnv() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// The credentials keep their short, unprefixed names.
	_ = viper.BindEnv("spotify-client-id", flagToEnvVar("spotify-client-id"), "CLIENT_ID")
	_ = viper.BindEnv("spotify-client-secret", flagToEnvVar("spotify-client-secret"), "CLIENT_SECRET")
}

func buildConfig() *core.Config {
	cfg := core.DefaultConfig()

	configureSpotify(cfg)
	configureServer(cfg)

	return cfg
}

func configureSpotify(cfg *core.Config) {
	cfg.Spotify.ClientID = viper.GetString("spotify-client-id")
	cfg.Spotify.ClientSecret = viper.GetString("spotify-client-secret")
	if tokenURL := viper.GetString("spotify-token-url"); tokenURL != "" {
		cfg.Spotify.TokenURL = tokenURL
	}
	if apiURL := viper.GetString("spotify-api-url"); apiURL != "" {
		cfg.Spotify.APIBaseURL = apiURL
	}
}

func configureServer(cfg *core.Config) {
	cfg.Server.Host = viper.GetString("server-host")
	if cfg.Server.Host == "" {
		cfg.Server.Host = core.DefaultServerHost
	}
	cfg.Server.Port = viper.GetInt("server-port")
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = core.DefaultServerPort
	}
	cfg.Log.Level = viper.GetString("log-level")
}

func buildLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	builtLogger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to build logger: %v", err))
	}

	return builtLogger
}

func runPlaylistFetch(cmd *cobra.Command, _ []string) error {
	if viper.GetBool("generate-env-example") {
		return generateEnvExample(cmd)
	}

	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("Starting playlistfetch",
		zap.String("addr", fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)),
		zap.Bool("spotify_credentials_set", config.Spotify.HasCredentials()))

	spotifyClient := spotify.NewClient(&config.Spotify, logger.Named("spotify"))
	checkCredentials(ctx, spotifyClient)

	httpServer := httpserver.NewServer(&config.Server, logger.Named("http"), spotifyClient)

	return runServices(ctx, httpServer)
}

// checkCredentials reports credential problems at startup. Requests are still served
// so that failures reach clients as errors.
func checkCredentials(ctx context.Context, client *spotify.Client) {
	if !config.Spotify.HasCredentials() {
		logger.Warn("Spotify credentials are not set, playlist requests will fail",
			zap.String("env", "CLIENT_ID, CLIENT_SECRET"))
		return
	}

	authCtx, cancel := context.WithTimeout(ctx, authCheckTimeout)
	defer cancel()

	if err := client.Authenticate(authCtx); err != nil {
		logger.Warn("Spotify authentication check failed", zap.Error(err))
	}
}

func runServices(ctx context.Context, httpServer *httpserver.Server) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return httpServer.Start(gCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("playlistfetch stopped with error", zap.Error(err))
		return err
	}

	logger.Info("playlistfetch stopped gracefully")
	return nil
}

func generateEnvExample(cmd *cobra.Command) error {
	fmt.Println("Generating .env.example file from current configuration...")

	content := generateEnvExampleContent(cmd)

	if err := os.WriteFile(envExampleFile, []byte(content), envFilePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", envExampleFile, err)
	}

	fmt.Println("Successfully generated .env.example file")
	return nil
}

func generateEnvExampleContent(cmd *cobra.Command) string {
	var content strings.Builder

	content.WriteString("# =============================================================================\n")
	content.WriteString("# playlistfetch Configuration\n")
	content.WriteString("# =============================================================================\n")
	content.WriteString("#\n")
	content.WriteString("# Copy this file to .env and update with your values\n")
	content.WriteString("# All settings have CLI flag equivalents (use --help to see them)\n")
	content.WriteString("#\n\n")

	generateSpotifySection(&content, cmd)
	generateServerSection(&content, cmd)
	generateLoggingSection(&content, cmd)

	return content.String()
}

func flagToEnvVar(flagName string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

func getDefaultValueString(cmd *cobra.Command, flagName string) string {
	if f := cmd.PersistentFlags().Lookup(flagName); f != nil {
		return f.DefValue
	}
	return ""
}

func generateSpotifySection(content *strings.Builder, cmd *cobra.Command) {
	content.WriteString("# -----------------------------------------------------------------------------\n")
	content.WriteString("# Spotify Configuration - Required\n")
	content.WriteString("# -----------------------------------------------------------------------------\n")
	content.WriteString("# Get these from https://developer.spotify.com/dashboard\n")
	content.WriteString("# CLI: --spotify-client-id, --spotify-client-secret\n")
	content.WriteString("CLIENT_ID=your_spotify_client_id_here\n")
	content.WriteString("CLIENT_SECRET=your_spotify_client_secret_here\n")
	fmt.Fprintf(content, "# %s=%s\n", flagToEnvVar("spotify-token-url"), getDefaultValueString(cmd, "spotify-token-url"))
	fmt.Fprintf(content, "# %s=%s\n", flagToEnvVar("spotify-api-url"), getDefaultValueString(cmd, "spotify-api-url"))
	content.WriteString("\n")
}

func generateServerSection(content *strings.Builder, cmd *cobra.Command) {
	content.WriteString("# -----------------------------------------------------------------------------\n")
	content.WriteString("# HTTP Server Configuration\n")
	content.WriteString("# -----------------------------------------------------------------------------\n")
	content.WriteString("# CLI: --server-host, --server-port\n")

	hostDefault := getDefaultValueString(cmd, "server-host")
	portDefault := getDefaultValueString(cmd, "server-port")

	fmt.Fprintf(content, "%s=%s     # Server bind address (default: %s)\n",
		flagToEnvVar("server-host"), hostDefault, hostDefault)
	fmt.Fprintf(content, "%s=%s          # Server port (default: %s)\n",
		flagToEnvVar("server-port"), portDefault, portDefault)
	content.WriteString("\n")
}

func generateLoggingSection(content *strings.Builder, cmd *cobra.Command) {
	content.WriteString("# -----------------------------------------------------------------------------\n")
	content.WriteString("# Logging Configuration\n")
	content.WriteString("# -----------------------------------------------------------------------------\n")
	content.WriteString("# CLI: --log-level\n")

	logDefault := getDefaultValueString(cmd, "log-level")

	fmt.Fprintf(content, "%s=%s            # Log level: debug, info, warn, error (default: %s)\n",
		flagToEnvVar("log-level"), logDefault, logDefault)
	content.WriteString("\n")
}
