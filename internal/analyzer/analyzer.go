package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zachacious/go-restdoc/internal/config"
	"github.com/Zachacious/go-restdoc/internal/model"
	"github.com/Zachacious/go-restdoc/internal/scan"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// snippetLen is how much text is quoted when a registration is malformed.
const snippetLen = 10

// Analyzer holds the state for a single extraction run.
type Analyzer struct {
	cfg *config.Config
	log logrus.FieldLogger
	// Jobs is the number of files extracted concurrently. Values below one
	// mean one.
	Jobs int
}

// New creates an Analyzer for the given configuration.
func New(cfg *config.Config, log logrus.FieldLogger) (*Analyzer, error) {
	if cfg == nil {
		return nil, errors.New("analyzer: nil config")
	}
	if cfg.Markers.Resource == "" {
		return nil, errors.New("analyzer: no resource marker configured")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Analyzer{cfg: cfg, log: log, Jobs: 1}, nil
}

// Analyze extracts every service from the given files and directories and
// returns them in input order. Per-file problems are logged and skipped;
// the only error returned is the cancellation of ctx.
func (a *Analyzer) Analyze(ctx context.Context, inputs []string) (*model.Registry, error) {
	files := a.discoverFiles(inputs)
	a.log.Debugf("Found %d service sources.", len(files))

	results := make([][]*model.ServiceRecord, len(files))

	jobs := a.Jobs
	if jobs < 1 {
		jobs = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, file := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.ProcessFile(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reg := model.NewRegistry()
	for _, records := range results {
		reg.Append(records...)
	}
	return reg, nil
}

// ProcessFile extracts the services of one file and completes their URLs
// from the module source next to it.
func (a *Analyzer) ProcessFile(path string) []*model.ServiceRecord {
	log := a.log.WithField("file", path)
	log.Info("Processing")

	records := a.ExtractFile(path, log)
	if len(records) > 0 {
		a.ResolveURLs(path, records, log)
	}
	return records
}

// ExtractFile reads path and extracts its services. A file that cannot be
// read contributes nothing.
func (a *Analyzer) ExtractFile(path string, log logrus.FieldLogger) []*model.ServiceRecord {
	text, err := readSource(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Errorf("A file named '%s' doesn't exist, skipping.", path)
		} else {
			log.WithError(err).Error("Failed to read file, skipping.")
		}
		return nil
	}
	return a.ExtractText(path, text, log)
}

// ExtractText finds every resource registration in text and extracts the
// services declared after it.
func (a *Analyzer) ExtractText(path, text string, log logrus.FieldLogger) []*model.ServiceRecord {
	var records []*model.ServiceRecord

	base := filepath.Base(path)
	group := strings.ToLower(strings.ReplaceAll(base, a.cfg.Files.ServiceSuffix, ""))
	class := strings.ReplaceAll(base, a.cfg.Files.SourceExt, "")

	cur := scan.NewCursor(text)
	for !cur.Done() {
		at, ok := cur.Find(a.cfg.Markers.Resource)
		if !ok {
			break
		}

		end, partialURL, ok := at.Value(scan.Quote, scan.Quote)
		if !ok {
			near := at.Snippet(snippetLen)
			log.WithField("near", near).Warnf("Invalid partial URL near %q", near)
			cur = at
			continue
		}

		res := Resource{PartialURL: partialURL, Group: group, Class: class, File: path}
		records = append(records, ExtractServices(text, end.Pos(), res, a.cfg.Markers, log)...)
		cur = end
	}

	return records
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(data), nil
}
