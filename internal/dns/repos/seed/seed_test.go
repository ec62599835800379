package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/redstore-dns/redstore/internal/dns/common/log"
	"github.com/redstore-dns/redstore/internal/dns/domain"
	"github.com/redstore-dns/redstore/internal/dns/repos/records"
	"github.com/redstore-dns/redstore/internal/dns/repos/records/memory"
	"github.com/redstore-dns/redstore/internal/dns/repos/seed"
	"github.com/redstore-dns/redstore/internal/dns/services/store"
)

const seedYAML = `zone_root: example.com
"@":
  A:
    - 192.0.2.1
    - 192.0.2.2
  TXT: "v=spf1 -all"
www:
  CNAME: example.com
"*":
  A: 192.0.2.10
`

func writeSeedFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func newSeedStore() *store.Store {
	repo := records.New(memory.New(), log.NewNoopLogger())
	return store.New(store.Options{Records: repo, Logger: log.NewNoopLogger()})
}

func TestLoadDirectory_YAML(t *testing.T) {
	ctx := context.Background()
	s := newSeedStore()
	dir := writeSeedFile(t, "example.yaml", seedYAML)

	n, err := seed.LoadDirectory(ctx, dir, s)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("LoadDirectory wrote %d lists, want 4", n)
	}

	a, err := s.Get(ctx, "example.com", domain.RRTypeA, false)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, []any{"192.0.2.1", "192.0.2.2"}) {
		t.Errorf("apex A = %v", a)
	}

	txt, _ := s.Get(ctx, "example.com", domain.RRTypeTXT, false)
	if !reflect.DeepEqual(txt, []any{"v=spf1 -all"}) {
		t.Errorf("apex TXT = %v", txt)
	}

	cname, _ := s.Get(ctx, "www.example.com", domain.RRTypeCNAME, false)
	if !reflect.DeepEqual(cname, []any{"example.com"}) {
		t.Errorf("www CNAME = %v", cname)
	}

	// wildcard label seeds the wildcard key; any sibling resolves to it
	wild, _ := s.Get(ctx, "anything.example.com", domain.RRTypeA, true)
	if !reflect.DeepEqual(wild, []any{"192.0.2.10"}) {
		t.Errorf("wildcard A = %v", wild)
	}
}

func TestLoadDirectory_JSON(t *testing.T) {
	ctx := context.Background()
	s := newSeedStore()
	dir := writeSeedFile(t, "example.json", `{
  "zone_root": "example.org",
  "mail": {"A": ["198.51.100.1"]}
}`)

	if _, err := seed.LoadDirectory(ctx, dir, s); err != nil {
		t.Fatal(err)
	}
	a, _ := s.Get(ctx, "mail.example.org", domain.RRTypeA, false)
	if !reflect.DeepEqual(a, []any{"198.51.100.1"}) {
		t.Errorf("mail A = %v", a)
	}
}

func TestLoadDirectory_DottedLabels(t *testing.T) {
	ctx := context.Background()
	s := newSeedStore()
	dir := writeSeedFile(t, "dotted.yaml", `zone_root: example.com
mail.internal:
  A: 192.0.2.5
`)

	if _, err := seed.LoadDirectory(ctx, dir, s); err != nil {
		t.Fatal(err)
	}
	a, _ := s.Get(ctx, "mail.internal.example.com", domain.RRTypeA, false)
	if !reflect.DeepEqual(a, []any{"192.0.2.5"}) {
		t.Errorf("dotted label A = %v", a)
	}
}

func TestLoadFile_MissingZoneRoot(t *testing.T) {
	ctx := context.Background()
	s := newSeedStore()
	dir := writeSeedFile(t, "broken.yaml", "www:\n  A: 192.0.2.1\n")

	if _, err := seed.LoadDirectory(ctx, dir, s); err == nil {
		t.Error("expected error for missing zone_root")
	}
}

func TestLoadFile_UnknownType(t *testing.T) {
	ctx := context.Background()
	s := newSeedStore()
	dir := writeSeedFile(t, "bad.yaml", "zone_root: example.com\nwww:\n  BOGUS: nope\n")

	if _, err := seed.LoadDirectory(ctx, dir, s); err == nil {
		t.Error("expected error for unknown record type")
	}
}

func TestLoadFile_SkipsUnsupportedExtensions(t *testing.T) {
	ctx := context.Background()
	s := newSeedStore()
	dir := writeSeedFile(t, "README.md", "# not a seed file")

	n, err := seed.LoadDirectory(ctx, dir, s)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("wrote %d lists from unsupported file", n)
	}
}
