package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"themedstyler/archive"
	"themedstyler/css"
	"themedstyler/style"
)

// Loader reads theme definitions from files and directories.
type Loader struct {
	log    *zap.Logger
	reader *css.Reader
}

func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log.Named("themes"), reader: css.NewReader(log)}
}

// supported theme file extensions
var loaders = map[string]func(*Loader, string, []byte) (*Bundle, error){
	".json": (*Loader).loadJSON,
	".yaml": (*Loader).loadYAML,
	".yml":  (*Loader).loadYAML,
	".css":  (*Loader).loadCSS,
}

// theme packs
const packExt = ".zip"

// KeyFromPath derives theme key from file name.
func KeyFromPath(path string) string {
	name := filepath.Base(path)
	return slug.Make(strings.TrimSuffix(name, filepath.Ext(name)))
}

// TitleFromKey makes display name out of theme key ("dark-blue" becomes
// "Dark Blue").
func TitleFromKey(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '-' || r == '_' || r == '.' })
	return cases.Title(language.Und).String(strings.Join(words, " "))
}

// Load reads every path in order. Directories are scanned (not recursively)
// for supported files in natural name order. Failures are accumulated and
// returned together with everything that was loaded.
func (l *Loader) Load(paths ...string) (*Bundle, error) {
	out := NewBundle()
	var errs error
	for _, path := range paths {
		files, err := l.expand(path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		for _, file := range files {
			b, err := l.LoadFile(file)
			if err != nil {
				errs = multierr.Append(errs, err)
			}
			if b != nil {
				out.Add(b)
			}
		}
	}
	l.log.Debug("Themes loaded", zap.Strings("paths", paths), zap.Strings("themes", out.Themes.Keys()), zap.Error(errs))
	return out, errs
}

func (l *Loader) expand(path string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("unable to access themes '%s': %w", path, err)
	}
	if !fi.IsDir() {
		return []string{path}, nil
	}
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read themes directory '%s': %w", path, err)
	}
	var names []string
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		if ext := strings.ToLower(filepath.Ext(de.Name())); ext == packExt || loaders[ext] != nil {
			names = append(names, de.Name())
		}
	}
	sort.Sort(natural.StringSlice(names))
	files := make([]string, 0, len(names))
	for _, name := range names {
		files = append(files, filepath.Join(path, name))
	}
	return files, nil
}

// LoadFile reads single theme file. JSON and YAML files hold either one
// theme entry (keyed by file name) or a bundle document with "themes".
// Theme pack may be partially loaded, in which case both bundle and error
// are returned.
func (l *Loader) LoadFile(path string) (*Bundle, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == packExt {
		return l.loadPack(path)
	}
	load, ok := loaders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported theme file '%s'", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read theme file '%s': %w", path, err)
	}
	b, err := load(l, path, data)
	if err != nil {
		return nil, fmt.Errorf("unable to load theme file '%s': %w", path, err)
	}
	return b, nil
}

// loadPack reads every supported file inside zip archive in natural name
// order. Entry failures are accumulated.
func (l *Loader) loadPack(path string) (*Bundle, error) {
	out := NewBundle()
	var errs error
	supported := func(name string) bool {
		_, ok := loaders[strings.ToLower(filepath.Ext(name))]
		return ok
	}
	err := archive.Walk(path, supported, func(name string, data []byte) error {
		b, err := loaders[strings.ToLower(filepath.Ext(name))](l, name, data)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to load theme '%s' from pack '%s': %w", name, path, err))
			return nil
		}
		out.Add(b)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to read theme pack '%s': %w", path, err)
	}
	l.log.Debug("Theme pack loaded", zap.String("file", path), zap.Strings("themes", out.Themes.Keys()), zap.Error(errs))
	return out, errs
}

func single(path string, e *Entry) *Bundle {
	key := KeyFromPath(path)
	if e.Name == "" {
		e.Name = TitleFromKey(key)
	}
	b := NewBundle()
	b.Themes.Set(key, e)
	return b
}

func (l *Loader) loadJSON(path string, data []byte) (*Bundle, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if _, ok := probe["themes"]; ok {
		b := NewBundle()
		if err := json.Unmarshal(data, b); err != nil {
			return nil, err
		}
		return b, nil
	}
	e := NewEntry()
	if err := json.Unmarshal(data, e); err != nil {
		return nil, err
	}
	return single(path, e), nil
}

func (l *Loader) loadYAML(path string, data []byte) (*Bundle, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected mapping", root.Line)
	}
	for i := 0; i < len(root.Content); i += 2 {
		if root.Content[i].Value == "themes" {
			b := NewBundle()
			if err := root.Decode(b); err != nil {
				return nil, err
			}
			return b, nil
		}
	}
	e := NewEntry()
	if err := root.Decode(e); err != nil {
		return nil, err
	}
	return single(path, e), nil
}

// loadCSS turns rule sets into theme selectors and custom properties into
// variables. Grouped selectors are kept as written.
func (l *Loader) loadCSS(path string, data []byte) (*Bundle, error) {
	sheet := l.reader.Read(data, path)
	for _, w := range sheet.Warnings {
		l.log.Warn("Theme stylesheet", zap.String("file", path), zap.String("warning", w))
	}
	e := NewEntry()
	for _, r := range sheet.Rules {
		dst, ok := e.Selectors.Get(r.Selector)
		if !ok {
			dst = style.NewProps()
			e.Selectors.Set(r.Selector, dst)
		}
		dst.Merge(r.Properties)
	}
	e.Variables.Merge(sheet.Variables)
	return single(path, e), nil
}
