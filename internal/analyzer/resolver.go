package analyzer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Zachacious/go-restdoc/internal/model"
	"github.com/Zachacious/go-restdoc/internal/scan"
	"github.com/sirupsen/logrus"
)

// ResolveURLs prefixes each record's partial URL with the base URL its class
// is constructed with in the module source living next to file.
func (a *Analyzer) ResolveURLs(file string, records []*model.ServiceRecord, log logrus.FieldLogger) {
	moduleFile, err := a.findModuleFile(filepath.Dir(file))
	if err != nil {
		log.WithError(err).Error("Failed to list service directory, URLs left partial.")
		return
	}
	if moduleFile == "" {
		log.Errorf("No *%s next to %s, URLs left partial.", a.cfg.Files.ModuleSuffix, file)
		return
	}

	text, err := readSource(moduleFile)
	if err != nil {
		log.WithError(err).Errorf("A file named '%s' doesn't exist. Failed to update full URLs.", moduleFile)
		return
	}

	for _, rec := range records {
		rec.URL = completeURL(text, rec.Class, rec.URL, a.cfg.Markers.Constructor)
	}
}

// completeURL looks for "<constructor><class>(" in module text and joins the
// first quoted string after it with partial. A trailing slash is dropped.
func completeURL(moduleText, class, partial, constructor string) string {
	url := partial
	cur := scan.NewCursor(moduleText)
	if at, ok := cur.Find(constructor + class + "("); ok {
		if _, base, ok := at.Value(scan.Quote, scan.Quote); ok {
			url = base + url
		}
	}
	return strings.TrimSuffix(url, "/")
}

// findModuleFile returns the last module source in dir, or "" if none.
func (a *Analyzer) findModuleFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), a.cfg.Files.ModuleSuffix) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", nil
	}
	sort.Strings(names)
	return filepath.Join(dir, names[len(names)-1]), nil
}
