package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/instroom/minio-file/pkg/config"
	"github.com/instroom/minio-file/pkg/logger"
	"github.com/instroom/minio-file/pkg/selftest"
	"github.com/instroom/minio-file/pkg/storage"
)

var envFile string

const envHelp = `Environment variables:
  MINIO_ACCESS_KEY            access key (required)
  MINIO_SECRET_KEY            secret key (required)
  MINIO_ENDPOINT              endpoint URL or host:port (required)
  MINIO_BUCKET                target bucket (default: ` + config.DefaultBucket + `)
  MINIO_INSECURE_SKIP_VERIFY  set to true to accept self-signed TLS certificates
  MINIO_LOG_LEVEL             debug, info, warn, error (default: info)
  MINIO_LOG_FORMAT            console, json (default: console)`

func main() {
	logger.Init("info", "console")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "minio-file [path]",
		Short: "Upload files or directories to a MinIO bucket",
		Long: `minio-file uploads a local file or directory tree to a MinIO bucket
using credentials from the environment. Without arguments it runs a
self-test that uploads generated sample files and verifies a round trip.

` + envHelp,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runUpload,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "file with environment variables to load before reading the environment")

	root.AddCommand(newLsCmd())
	root.AddCommand(newGetCmd())

	return root
}

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "ls [prefix]",
		Short:         "List objects in the bucket",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, log, err := connect(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}

			objects, err := store.List(ctx, prefix)
			if err != nil {
				log.Error().Err(err).Str("bucket", store.Bucket()).Msg("listing failed")
				return err
			}

			for _, obj := range objects {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", obj.Key, obj.Size, obj.LastModified.Format("2006-01-02 15:04:05"))
			}
			log.Info().Int("objects", len(objects)).Str("bucket", store.Bucket()).Msg("listing complete")
			return nil
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "get <key> <dest>",
		Short:         "Download an object to a local path",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, log, err := connect(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Download(ctx, args[0], args[1]); err != nil {
				log.Error().Err(err).Str("key", args[0]).Msg("download failed")
				return err
			}
			return nil
		},
	}
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 0 {
		store, log, err := connect(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := selftest.Run(ctx, store, "", *log); err != nil {
			log.Error().Err(err).Msg("self-test failed")
			return err
		}
		return nil
	}

	path := args[0]

	// The local path is checked before any session is established, so a
	// typo never touches the network.
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = storage.WrapError("upload", path, storage.ErrNotFound)
		}
		logger.Get().Error().Err(err).Str("path", path).Msg("local path not usable")
		return err
	}

	store, log, err := connect(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if info.IsDir() {
		summary, err := store.UploadDir(ctx, path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("directory upload failed")
			return err
		}

		event := log.Info()
		if summary.Failed > 0 {
			event = log.Warn()
		}
		event.
			Int("uploaded", summary.Uploaded).
			Int("failed", summary.Failed).
			Int64("bytes", summary.Bytes).
			Str("bucket", store.Bucket()).
			Msg("directory upload complete")

		for _, failure := range summary.Failures() {
			log.Warn().Str("file", failure.Path).Err(failure.Error).Msg("file was not uploaded")
		}

		// Partial failures are reported above but do not fail the run.
		return nil
	}

	key, err := store.Upload(ctx, path, "")
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("upload failed")
		return err
	}
	log.Info().Str("key", key).Str("bucket", store.Bucket()).Msg("upload complete")
	return nil
}

// connect loads the configuration, initializes logging and establishes
// the bucket-scoped client session
func connect(ctx context.Context) (storage.ObjectStore, *zerolog.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		logger.Get().Error().Err(err).Msg("configuration incomplete, see --help for the recognized variables")
		return nil, nil, err
	}

	logger.Init(cfg.GetLogLevel(), cfg.GetLogFormat())
	log := logger.Get()

	store, err := storage.New(ctx, cfg, *log)
	if err != nil {
		hint := "verify MINIO_ENDPOINT and credentials"
		if errors.Is(err, storage.ErrAccessDenied) {
			hint = "credentials lack rights on bucket " + cfg.Bucket
		}
		log.Error().Err(err).Str("endpoint", cfg.Endpoint).Str("hint", hint).Msg("could not establish storage session")
		return nil, nil, err
	}

	return store, log, nil
}
