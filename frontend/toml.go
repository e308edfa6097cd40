package frontend

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/gluax-lang/dpp/frontend/lexer"
)

const (
	ConfigFile   = "dpp.toml"
	DefaultEntry = "src/main.dpp"
)

type DppToml struct {
	Name       string           `toml:"name" validate:"required"`
	Version    string           `toml:"version" validate:"required"`
	Entry      string           `toml:"entry" validate:"required"`
	Keywords   []string         `toml:"keywords" validate:"dive,ident"`
	Optimize   OptimizeConfig   `toml:"optimize"`
	Preprocess PreprocessConfig `toml:"preprocess"`
	Cache      CacheConfig      `toml:"cache"`
}

type OptimizeConfig struct {
	FoldConstants bool `toml:"fold_constants"`
}

type PreprocessConfig struct {
	Enabled bool              `toml:"enabled"`
	Defines map[string]string `toml:"defines" validate:"dive,keys,ident,endkeys"`
}

// CacheConfig locates the compile cache, relative to the project directory.
// An empty path disables it.
type CacheConfig struct {
	Path string `toml:"path"`
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
		return lexer.IsValidIdent(fl.Field().String())
	})
	return v
}()

func HandleDppToml(tomlContent string) (DppToml, error) {
	var dt DppToml
	md, err := toml.Decode(tomlContent, &dt)
	if err != nil {
		return dt, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return dt, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if dt.Entry == "" {
		dt.Entry = DefaultEntry
	}
	if err := validate.Struct(dt); err != nil {
		return dt, err
	}
	return dt, nil
}

// LoadDppToml reads and validates the dpp.toml of the project in dir.
func LoadDppToml(dir string) (DppToml, error) {
	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DppToml{}, fmt.Errorf("no %s in %s", ConfigFile, dir)
		}
		return DppToml{}, fmt.Errorf("reading %s: %w", ConfigFile, err)
	}
	dt, err := HandleDppToml(string(data))
	if err != nil {
		return dt, fmt.Errorf("parsing %s: %w", path, err)
	}
	return dt, nil
}

// EntryPath is the absolute path of the entry file of the project in dir.
func (dt DppToml) EntryPath(dir string) string {
	return filepath.Join(dir, filepath.FromSlash(dt.Entry))
}

// CachePath is the cache database path, or "" when caching is off.
func (dt DppToml) CachePath(dir string) string {
	if dt.Cache.Path == "" {
		return ""
	}
	if filepath.IsAbs(dt.Cache.Path) {
		return dt.Cache.Path
	}
	return filepath.Join(dir, filepath.FromSlash(dt.Cache.Path))
}

// Template is the dpp.toml written for a new project.
func Template(name string) string {
	return fmt.Sprintf("name = %q\nversion = \"0.1\"\nentry = %q\n\n[optimize]\nfold_constants = false\n\n[cache]\npath = \".dpp/cache.db\"\n", name, DefaultEntry)
}
