// Package seed loads record seed files (YAML, JSON, or TOML) and writes
// their contents through the store. Each file carries a zone_root and a map
// of names to per-type record values; every name's list fully replaces what
// the store held for that (name, type).
package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"

	"github.com/redstore-dns/redstore/internal/dns/domain"
)

// Writer is the slice of the store's write surface the loader needs.
type Writer interface {
	Set(ctx context.Context, name string, rrtype domain.RRType, values []any) error
}

// LoadDirectory walks dir, loading every supported seed file into w.
// Returns the number of (name, type) lists written, or an error on the
// first file that fails to parse or write.
func LoadDirectory(ctx context.Context, dir string, w Writer) (int, error) {
	total := 0
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		n, err := LoadFile(ctx, path, w)
		if err != nil {
			return fmt.Errorf("seed file %s: %w", path, err)
		}
		total += n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// LoadFile loads one seed file into w, choosing the parser by extension.
// Unsupported extensions are skipped silently so seed directories can carry
// documentation alongside data.
func LoadFile(ctx context.Context, path string, w Writer) (int, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	case ".toml":
		parser = toml.Parser()
	default:
		return 0, nil
	}

	// seed labels may contain dots ("mail.internal"), so the koanf
	// delimiter must be something that cannot appear in a domain label
	k := koanf.New("/")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return 0, fmt.Errorf("failed to load: %w", err)
	}

	root := k.String("zone_root")
	if root == "" {
		return 0, fmt.Errorf("missing 'zone_root'")
	}

	count := 0
	for _, name := range sortedKeys(k.Raw()) {
		if name == "zone_root" {
			continue
		}
		rawMap, ok := k.Raw()[name].(map[string]any)
		if !ok {
			continue
		}
		fqdn := expandName(name, root)
		for tag, val := range rawMap {
			rrtype := domain.RRTypeFromString(tag)
			if rrtype == 0 {
				return 0, fmt.Errorf("unknown record type %q for %q", tag, fqdn)
			}
			values := toValues(val)
			if len(values) == 0 {
				continue
			}
			if err := w.Set(ctx, fqdn, rrtype, values); err != nil {
				return 0, fmt.Errorf("writing %s %s: %w", fqdn, tag, err)
			}
			count++
		}
	}
	return count, nil
}

// expandName returns the full domain name for a seed-file label, expanding
// '@' to the zone root and suffixing relative labels with it.
func expandName(label, root string) string {
	if label == "@" {
		return root
	}
	if label == root || strings.HasSuffix(label, "."+root) {
		return label
	}
	return label + "." + root
}

// toValues converts a parsed seed value (scalar or list, string or
// structured) into the value list to store, skipping nils.
func toValues(val any) []any {
	switch v := val.(type) {
	case nil:
		return nil
	case []any:
		out := make([]any, 0, len(v))
		for _, elem := range v {
			if elem == nil {
				continue
			}
			out = append(out, elem)
		}
		return out
	default:
		return []any{v}
	}
}

func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
