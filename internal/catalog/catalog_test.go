package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinCatalog(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, key := range []string{"wh40", "toiletreset", "lavrough"} {
		tmpl, ok := c.Get(key)
		if !ok {
			t.Errorf("expected built-in template %q", key)
			continue
		}
		if len(tmpl.Items) == 0 {
			t.Errorf("template %q has no items", key)
		}
		for _, item := range tmpl.Items {
			if item.Qty < 1 {
				t.Errorf("template %q item %q has qty %d", key, item.Item, item.Qty)
			}
		}
	}

	if tmpl, _ := c.Get("lavrough"); len(tmpl.Items) != 5 || tmpl.Items[2].Qty != 2 {
		t.Errorf("unexpected lavrough items: %+v", tmpl.Items)
	}
}

func TestLoadMissingDirIsBuiltinsOnly(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("Load with missing dir: %v", err)
	}
	if len(c.List()) != 3 {
		t.Errorf("expected 3 built-in templates, got %d", len(c.List()))
	}
}

func TestUserTemplatesOverrideBuiltins(t *testing.T) {
	dir := t.TempDir()
	custom := `templates:
  - key: toiletreset
    name: Toilet reset (shop standard)
    items:
      - item: Wax-free seal
  - key: gastest
    name: Gas pressure test
    items:
      - item: Gauge
      - item: Test caps
        qty: 3
`
	if err := os.WriteFile(filepath.Join(dir, "shop.yaml"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tmpl, ok := c.Get("toiletreset")
	if !ok || tmpl.Name != "Toilet reset (shop standard)" {
		t.Errorf("expected overridden template, got %+v", tmpl)
	}
	if _, ok := c.Get("gastest"); !ok {
		t.Error("expected user template gastest")
	}
	if len(c.List()) != 4 {
		t.Errorf("expected 4 templates, got %d", len(c.List()))
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	bad := []string{
		"",
		"templates:\n  - name: no key\n    items:\n      - item: x\n",
		"templates:\n  - key: k\n    name: n\n",
		"templates:\n  - key: k\n    name: n\n    items:\n      - item: \"\"\n",
	}
	for i, payload := range bad {
		if _, err := Parse([]byte(payload)); err == nil {
			t.Errorf("case %d: expected parse error", i)
		}
	}
}
