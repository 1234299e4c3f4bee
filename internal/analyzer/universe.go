package analyzer

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// discoverFiles expands the inputs into the list of sources to extract.
// Directories are walked for files ending in the service suffix, in lexical
// order. Anything else is passed through, so a missing file is reported by
// the extraction step like any other unreadable source.
func (a *Analyzer) discoverFiles(inputs []string) []string {
	var files []string
	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil || !info.IsDir() {
			files = append(files, in)
			continue
		}

		walkErr := filepath.WalkDir(in, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				a.log.WithError(err).WithField("file", path).Warn("Skipping unreadable path.")
				return nil
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), a.cfg.Files.ServiceSuffix) {
				files = append(files, path)
			}
			return nil
		})
		if walkErr != nil {
			a.log.WithError(walkErr).WithField("file", in).Warn("Directory walk stopped early.")
		}
	}
	return files
}
