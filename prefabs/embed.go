package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Dir is the on-disk override directory, relative to the working
// directory. Files found there shadow the embedded copies.
const Dir = "prefabs"

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript reads a scenario script by name, with or without the
// scripts/ prefix and .tengo extension.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// Scripts lists the embedded scenario names.
func Scripts() []string {
	entries, err := fs.ReadDir(ScriptsFS, "scripts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".tengo"))
	}
	sort.Strings(names)
	return names
}

func cleanPrefabPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(p string) string {
	if p == "" {
		return ""
	}

	s := filepath.ToSlash(p)

	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	if path.Ext(s) != ".tengo" {
		s += ".tengo"
	}

	return path.Join("scripts", s)
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
