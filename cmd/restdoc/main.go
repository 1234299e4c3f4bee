package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Zachacious/go-restdoc/internal/analyzer"
	"github.com/Zachacious/go-restdoc/internal/assembler"
	"github.com/Zachacious/go-restdoc/internal/config"
	"github.com/Zachacious/go-restdoc/internal/logging"
	"github.com/Zachacious/go-restdoc/internal/model"
	"github.com/Zachacious/go-restdoc/internal/wiki"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// These variables are set at build time by the Makefile's ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	formatMediaWiki = "mediawiki"
	formatOpenAPI   = "openapi"
)

type options struct {
	outputDir  string
	format     string
	privateAPI bool
	jobs       int
	configPath string
	verbose    bool
	json       bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	var rootCmd = &cobra.Command{
		Use:   "restdoc [flags] <file|dir>...",
		Short: "restdoc generates REST API documentation from annotated service sources.",
		Long: `restdoc scans service sources for resource registrations, pairs every
handler declaration with the /** ... */ comment before it and renders the
result as MediaWiki pages plus a table of contents, or as an OpenAPI document.

Comments understand @pparam, @qparam, @visibility and @return tags.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(opts.verbose)
			return run(cmd.Context(), opts, args, log)
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of restdoc",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "restdoc version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
			fmt.Fprintf(cmd.OutOrStdout(), "built at: %s\n", date)
		},
	}
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.outputDir, "output-dir", "o", "./restdoc-output", "The output directory for the API documentation files")
	flags.StringVarP(&opts.format, "format", "f", formatMediaWiki, "The output format (mediawiki or openapi)")
	flags.BoolVarP(&opts.privateAPI, "private-api", "p", false, "Generate private API documentation")
	flags.IntVarP(&opts.jobs, "jobs", "j", 1, "Number of files to extract concurrently")
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultFile, "Path to the restdoc configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&opts.json, "json", false, "Write the OpenAPI document as JSON instead of YAML")

	return rootCmd
}

func run(ctx context.Context, opts *options, inputs []string, log *logrus.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.format != formatMediaWiki && opts.format != formatOpenAPI {
		return errors.Errorf("unknown format %q", opts.format)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	log.Debug("Configuration loaded.")

	a, err := analyzer.New(cfg, log)
	if err != nil {
		return errors.Wrap(err, "initializing analyzer")
	}
	a.Jobs = opts.jobs

	reg, err := a.Analyze(ctx, inputs)
	if err != nil {
		return errors.Wrap(err, "extracting services")
	}

	outputDir, err := homedir.Expand(opts.outputDir)
	if err != nil {
		return errors.Wrapf(err, "expanding %s", opts.outputDir)
	}

	switch opts.format {
	case formatOpenAPI:
		err = writeOpenAPI(reg, cfg, opts, outputDir, log)
	default:
		err = writeWiki(reg, cfg, opts, outputDir, log)
	}
	if err != nil {
		return err
	}

	log.Infof("Processed %d web services.", reg.Len())
	return nil
}

func writeWiki(reg *model.Registry, cfg *config.Config, opts *options, outputDir string, log *logrus.Logger) error {
	r := wiki.New(cfg.Wiki, log)
	r.Private = opts.privateAPI
	written, err := r.Write(reg, outputDir)
	if err != nil {
		return err
	}
	for _, path := range written {
		log.Debugf("Wrote %s", path)
	}
	return nil
}

func writeOpenAPI(reg *model.Registry, cfg *config.Config, opts *options, outputDir string, log *logrus.Logger) error {
	spec, err := assembler.BuildSpec(reg, cfg, assembler.Options{Private: opts.privateAPI, Log: log})
	if err != nil {
		return errors.Wrap(err, "assembling specification")
	}
	if err := spec.Validate(context.Background()); err != nil {
		log.WithError(err).Warn("Generated OpenAPI document does not validate.")
	}

	var data []byte
	name := "openapi.yaml"
	if opts.json {
		name = "openapi.json"
		data, err = json.MarshalIndent(spec, "", "  ")
	} else {
		data, err = yaml.Marshal(spec)
	}
	if err != nil {
		return errors.Wrap(err, "marshaling specification")
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", outputDir)
	}
	path := filepath.Join(outputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	log.Infof("Successfully generated OpenAPI spec at: %s", path)
	return nil
}
