package config

import (
	"os"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = ".restdoc.yaml"

// ValueMarker is a marker string followed by a delimited value.
type ValueMarker struct {
	Marker string `yaml:"marker"`
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
}

// Markers are the literal strings searched for in service sources.
type Markers struct {
	// Resource precedes the quoted partial URL of a resource registration.
	Resource string `yaml:"resource"`
	// Message precedes the HTTP method of a declaration.
	Message ValueMarker `yaml:"message"`
	// Auth precedes the authentication requirement of a declaration.
	Auth ValueMarker `yaml:"auth"`
	// Constructor is the text before the class name in a module source,
	// followed by the base URL of the service.
	Constructor string `yaml:"constructor"`
}

// Files describes how service and module sources are named.
type Files struct {
	ServiceSuffix string `yaml:"serviceSuffix"`
	SourceExt     string `yaml:"sourceExt"`
	ModuleSuffix  string `yaml:"moduleSuffix"`
}

// Wiki holds the fixed text of the generated MediaWiki pages.
type Wiki struct {
	Title    string `yaml:"title"`
	TOCTitle string `yaml:"tocTitle"`
	Product  string `yaml:"product"`
	TOCPage  string `yaml:"tocPage"`
}

// Config is the full restdoc configuration.
type Config struct {
	Markers Markers        `yaml:"markers"`
	Files   Files          `yaml:"files"`
	Wiki    Wiki           `yaml:"wiki"`
	Info    *openapi3.Info `yaml:"info"`
}

// Default returns the configuration used for Bitmunk service sources.
func Default() *Config {
	return &Config{
		Markers: Markers{
			Resource:    "addResource",
			Message:     ValueMarker{Marker: "BtpMessage:", Start: ":", End: ","},
			Auth:        ValueMarker{Marker: "BtpAction::Aut", Start: "h", End: ")"},
			Constructor: " = new ",
		},
		Files: Files{
			ServiceSuffix: "Service.cpp",
			SourceExt:     ".cpp",
			ModuleSuffix:  "Module.cpp",
		},
		Wiki: Wiki{
			Title:    "Bitmunk WebServices API Documentation",
			TOCTitle: "Bitmunk REST API Calls",
			Product:  "Bitmunk",
			TOCPage:  "rest-api",
		},
		Info: &openapi3.Info{Title: "Bitmunk REST API", Version: "1.0.0"},
	}
}

// Load reads the configuration at path on top of the defaults. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultFile
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "expanding config path %q", path)
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, errors.Wrapf(unmarshalErr, "parsing %s", path)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	return cfg, nil
}
