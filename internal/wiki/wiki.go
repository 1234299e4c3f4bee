// Package wiki renders extracted services as MediaWiki pages: one page per
// service URL and a table of contents listing the public URLs by group.
package wiki

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Zachacious/go-restdoc/internal/config"
	"github.com/Zachacious/go-restdoc/internal/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// queryPlaceholder stands in for query parameter values in entry headings.
const queryPlaceholder = "XYZ"

// Renderer turns a registry into wiki text.
type Renderer struct {
	cfg config.Wiki
	log logrus.FieldLogger
	// Private includes services whose visibility is not public.
	Private bool
}

// New returns a renderer using the titles in cfg.
func New(cfg config.Wiki, log logrus.FieldLogger) *Renderer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Renderer{cfg: cfg, log: log}
}

// PageName turns a service URL into a wiki page name: surrounding slashes
// are dropped and inner ones become dashes.
func PageName(url string) string {
	name := strings.TrimPrefix(url, "/")
	name = strings.TrimSuffix(name, "/")
	return strings.ReplaceAll(name, "/", "-")
}

// ServiceEntry formats a single service as a wiki section.
func ServiceEntry(rec *model.ServiceRecord) string {
	var head strings.Builder
	head.WriteString("== " + string(rec.Method) + " " + rec.URL)
	for _, pp := range rec.PathParameters {
		head.WriteString("/<" + pp.Name + ">")
	}

	var b strings.Builder
	b.WriteString(strings.ReplaceAll(head.String(), "//", "/"))

	for i, qp := range rec.QueryParameters {
		if i == 0 {
			b.WriteString("?")
		} else {
			b.WriteString("&")
		}
		b.WriteString(qp.Name + "=" + queryPlaceholder)
	}
	b.WriteString(" ==\n\n")

	b.WriteString(rec.Description + "\n\n")
	b.WriteString("<i>Authentication</i>: " + rec.Authentication + "<br />\n")
	b.WriteString("<i>Returns</i>: " + rec.Return + "\n\n")

	writeParams(&b, "Path Parameters", rec.PathParameters)
	writeParams(&b, "Query Parameters", rec.QueryParameters)

	return b.String()
}

func writeParams(b *strings.Builder, title string, params []model.Parameter) {
	if len(params) == 0 {
		return
	}
	fmt.Fprintf(b, "=== %s ===\n", title)
	for _, p := range params {
		fmt.Fprintf(b, "* <b>%s</b> - %s\n", p.Name, p.Description)
	}
	b.WriteString("\n")
}

// PageText renders every not yet rendered service for url, GET first, then
// POST, PUT and DELETE, and marks them processed.
func (r *Renderer) PageText(reg *model.Registry, url string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "= %s =\n\n", r.cfg.Title)
	fmt.Fprintf(&b, "This page documents the %s %s web service.\n\n", r.cfg.Product, url)

	for _, method := range model.Methods() {
		for _, rec := range reg.Pending(url, method) {
			if !r.include(rec) {
				continue
			}
			b.WriteString(ServiceEntry(rec))
			reg.MarkProcessed(rec)
		}
	}
	return b.String()
}

// TOC renders the table of contents. Only public services are listed and
// groups without any are left out.
func (r *Renderer) TOC(reg *model.Registry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "= %s =\n\n", r.cfg.TOCTitle)
	b.WriteString("This section contains all of the developer documentation\n")
	fmt.Fprintf(&b, "for interacting with the %s network via a standard\n", r.cfg.Product)
	b.WriteString("set of REST-based API calls. Programs written in Javascript,\n")
	b.WriteString("Python, Ruby, C, C++, C#, Perl, and a number of other\n")
	b.WriteString("programming languages can be written to interact with\n")
	fmt.Fprintf(&b, "%s via the following Web Services.\n\n", r.cfg.Product)

	byGroup := reg.PublicURLsByGroup()
	groups := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, group := range groups {
		urls := byGroup[group]
		if len(urls) == 0 {
			continue
		}
		fmt.Fprintf(&b, "== %s ==\n\n", group)
		for _, url := range urls {
			fmt.Fprintf(&b, "* [[%s|%s]]\n", PageName(url), url)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Write renders one page per service URL into dir, followed by the table of
// contents, and returns the paths written. Failing to write a single page is
// logged; failing to create dir is returned.
func (r *Renderer) Write(reg *model.Registry, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating output directory %s", dir)
	}

	var written []string
	seen := make(map[string]bool)
	for _, rec := range reg.Records() {
		if rec.Processed || !r.include(rec) {
			continue
		}
		name := PageName(rec.URL)
		if seen[name] {
			continue
		}
		seen[name] = true

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(r.PageText(reg, rec.URL)), 0o644); err != nil {
			r.log.WithError(err).WithField("url", rec.URL).Error("Failed to write REST API to disk.")
			continue
		}
		written = append(written, path)
	}

	tocPath := filepath.Join(dir, r.cfg.TOCPage)
	if err := os.WriteFile(tocPath, []byte(r.TOC(reg)), 0o644); err != nil {
		r.log.WithError(err).Error("Failed to write REST API Table of Contents to disk.")
	} else {
		written = append(written, tocPath)
	}
	return written, nil
}

func (r *Renderer) include(rec *model.ServiceRecord) bool {
	return r.Private || rec.IsPublic()
}
