//go:build unix

package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"src.weir.sh/pkg/env"
	"src.weir.sh/pkg/must"
	"src.weir.sh/pkg/testutil"
)

func TestPaths(t *testing.T) {
	dir := testutil.InTempDir(t)
	testutil.Setenv(t, env.HOME, dir)
	testutil.Setenv(t, env.XDG_CONFIG_HOME, dir)

	tests := []struct {
		name string
		path func() (string, error)
		base string
	}{
		{"rcPath", rcPath, "rc.weir"},
		{"dbPath", dbPath, "weir.db"},
		{"settingsPath", settingsPath, "settings.yaml"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := must.OK1(test.path())
			if !strings.HasPrefix(p, dir) {
				t.Errorf("%v = %q, want a path under %q", test.name, p, dir)
			}
			if base := filepath.Base(p); base != test.base {
				t.Errorf("%v has base %q, want %q", test.name, base, test.base)
			}
			// The weir directory is created as a side effect.
			fi, err := os.Stat(filepath.Dir(p))
			if err != nil || !fi.IsDir() {
				t.Errorf("parent of %q is not a directory", p)
			}
		})
	}
}
