package compiler

import (
	"fmt"
	"os"

	"github.com/gluax-lang/dpp/artifact"
	"github.com/gluax-lang/dpp/cache"
	"github.com/gluax-lang/dpp/frontend"
	"github.com/gluax-lang/dpp/frontend/common"
)

// Build is the outcome of compiling a project.
type Build struct {
	Dir      string
	Config   frontend.DppToml
	Result   *Result // nil when the artifact came from the cache
	Artifact *artifact.Artifact
	Cached   bool
}

func ProjectOptions(dt frontend.DppToml) Options {
	return Options{
		Keywords:      dt.Keywords,
		FoldConstants: dt.Optimize.FoldConstants,
		Preprocess:    dt.Preprocess.Enabled,
		Defines:       dt.Preprocess.Defines,
	}
}

// CompileProject loads dir/dpp.toml, compiles its entry file and returns the
// resulting artifact. With a cache configured, an unchanged entry file and
// configuration is served from the cache.
func CompileProject(dir string) (*Build, error) {
	dt, err := frontend.LoadDppToml(dir)
	if err != nil {
		return nil, err
	}

	entry := dt.EntryPath(dir)
	data, err := os.ReadFile(entry)
	if err != nil {
		return nil, fmt.Errorf("reading entry file: %w", err)
	}
	code := string(data)

	opts := ProjectOptions(dt)
	key := common.SHA256Hex(dt.Name, dt.Version, dt.Entry, opts.Key(), code)
	build := &Build{Dir: dir, Config: dt}

	var c *cache.Cache
	if path := dt.CachePath(dir); path != "" {
		c, err = cache.Open(path)
		if err != nil {
			return nil, err
		}
		defer c.Close()

		if a, ok := lookup(c, key); ok {
			log.Infof("%s: up to date (build %s)", dt.Name, a.BuildID)
			build.Artifact, build.Cached = a, true
			return build, nil
		}
	}

	res, err := Compile(dt.Entry, code, opts)
	if err != nil {
		return nil, err
	}
	build.Result = res

	a := artifact.New(dt.Name, dt.Version, dt.Entry, key)
	a.Symbols = res.Symbols.Map()
	a.SetIR(res.IR)
	a.Asm = res.Asm
	build.Artifact = a

	if c != nil {
		store(c, key, a)
	}

	log.Infof("%s: built %s (build %s)", dt.Name, dt.Entry, a.BuildID)
	return build, nil
}

// store saves a in the cache. A failure only costs a rebuild next time.
func store(c *cache.Cache, key string, a *artifact.Artifact) {
	enc, err := artifact.Marshal(a)
	if err != nil {
		log.Warningf("cache: encoding %s: %s", key, err)
		return
	}
	if err := c.Put(key, enc); err != nil {
		log.Warningf("cache: %s", err)
	}
}

// lookup treats an entry that no longer decodes as a miss.
func lookup(c *cache.Cache, key string) (*artifact.Artifact, bool) {
	data, ok, err := c.Get(key)
	if err != nil {
		log.Warningf("cache: %s", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	a, err := artifact.Unmarshal(data)
	if err != nil {
		log.Warningf("cache: dropping %s: %s", key, err)
		if err := c.Delete(key); err != nil {
			log.Warningf("cache: %s", err)
		}
		return nil, false
	}
	return a, true
}
