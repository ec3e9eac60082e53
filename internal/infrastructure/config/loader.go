package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// DefaultCatalog is the catalog loaded by LoadAll
const DefaultCatalog = "default"

// catalogExts are tried in order when a catalog name has no extension
var catalogExts = []string{".json", ".yaml", ".yml"}

// AppConfig holds all loaded configurations
type AppConfig struct {
	Viewer  *ViewerConfig
	Catalog *CatalogConfig
}

// Loader loads configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadViewer loads viewer.json, filling unset fields with defaults
func (l *Loader) LoadViewer() (*ViewerConfig, error) {
	data, err := fs.ReadFile(l.fsys, "viewer.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read viewer.json: %w", err)
	}

	var cfg ViewerConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse viewer.json: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// LoadCatalog loads bugs/<name>. A name without an extension is looked up
// as .json, then .yaml, then .yml.
func (l *Loader) LoadCatalog(name string) (*CatalogConfig, error) {
	file, data, err := l.readCatalog(name)
	if err != nil {
		return nil, err
	}

	var cfg CatalogConfig
	if err := decode(file, data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}

	return &cfg, nil
}

// ListCatalogs returns the names of every catalog file under bugs/
func (l *Loader) ListCatalogs() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, "bugs")
	if err != nil {
		return nil, fmt.Errorf("failed to list catalogs: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		for _, known := range catalogExts {
			if ext == known {
				names = append(names, e.Name())
				break
			}
		}
	}
	return names, nil
}

// LoadAll loads the viewer config and the default catalog
func (l *Loader) LoadAll() (*AppConfig, error) {
	viewer, err := l.LoadViewer()
	if err != nil {
		return nil, err
	}

	catalog, err := l.LoadCatalog(DefaultCatalog)
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Viewer:  viewer,
		Catalog: catalog,
	}, nil
}

func (l *Loader) readCatalog(name string) (string, []byte, error) {
	if path.Ext(name) != "" {
		file := "bugs/" + name
		data, err := fs.ReadFile(l.fsys, file)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
		}
		return file, data, nil
	}

	for _, ext := range catalogExts {
		file := "bugs/" + name + ext
		data, err := fs.ReadFile(l.fsys, file)
		if err == nil {
			return file, data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
		}
	}
	return "", nil, fmt.Errorf("failed to read catalog %s: %w", name, fs.ErrNotExist)
}

func decode(file string, data []byte, out any) error {
	switch path.Ext(file) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	case ".json":
		return json.Unmarshal(data, out)
	default:
		return fmt.Errorf("unsupported config format %q", path.Ext(file))
	}
}
