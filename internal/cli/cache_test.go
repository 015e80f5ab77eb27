package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/svgtheme/pkg/cache"
)

func TestNewCacheNoCache(t *testing.T) {
	c, err := newCache(true)
	if err != nil {
		t.Fatalf("newCache(true) error: %v", err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("newCache(true) = %T, want *cache.NullCache", c)
	}
}

func TestCacheClearCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)

	c, err := newCache(false)
	if err != nil {
		t.Fatalf("newCache(false) error: %v", err)
	}
	ctx := context.Background()
	for _, key := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, key, []byte("x"), cache.TTLResult); err != nil {
			t.Fatal(err)
		}
	}

	var out, errOut bytes.Buffer
	cli := &CLI{Logger: newLogger(&errOut, LogInfo), Out: &out}
	cmd := cli.cacheClearCommand()
	cmd.SetErr(&errOut)
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache clear: %v", err)
	}

	for _, key := range []string{"a", "b", "c"} {
		if _, hit, _ := c.Get(ctx, key); hit {
			t.Errorf("key %q still cached after clear", key)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, appName)); err != nil {
		t.Errorf("cache dir should remain: %v", err)
	}
}
