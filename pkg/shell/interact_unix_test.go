//go:build unix

package shell

import (
	"os"
	"testing"

	"src.weir.sh/pkg/env"
	"src.weir.sh/pkg/must"
	"src.weir.sh/pkg/prog"
	. "src.weir.sh/pkg/prog/progtest"
	"src.weir.sh/pkg/testutil"
)

func TestInteract_TTY(t *testing.T) {
	f := SetupInteractive(t)
	setupCleanHome(t)
	f.FeedIn("echo hello\n\x04")

	exit := prog.Run(f.Fds(), []string{"weir", "-norc", "-db", "history.db"}, Program{})

	if exit != 0 {
		t.Errorf("got exit code %v, want 0", exit)
	}
	f.TestOut(t, 1, "▶ hello\n")
	// The input is a terminal, so the session shows a prompt on stderr.
	f.TestOutSnippet(t, 2, "> ")
	if _, err := os.Stat("history.db"); err != nil {
		t.Errorf("history db not created: %v", err)
	}
}

func TestInteract_TTY_Settings(t *testing.T) {
	f := SetupInteractive(t)
	setupCleanHome(t)
	must.WriteFile(must.OK1(settingsPath()), "prompt: 'weir? '\nvalue-prefix: '= '\n")
	f.FeedIn("echo hello\n\x04")

	exit := prog.Run(f.Fds(), []string{"weir", "-norc", "-db", "history.db"}, Program{})

	if exit != 0 {
		t.Errorf("got exit code %v, want 0", exit)
	}
	f.TestOut(t, 1, "= hello\n")
	f.TestOutSnippet(t, 2, "weir? ")
}

func TestInteract_TTY_RCFile(t *testing.T) {
	f := SetupInteractive(t)
	setupCleanHome(t)
	must.WriteFile(must.OK1(rcPath()), "echo salutations")
	f.FeedIn("\x04")

	exit := prog.Run(f.Fds(), []string{"weir", "-db", "history.db"}, Program{})

	if exit != 0 {
		t.Errorf("got exit code %v, want 0", exit)
	}
	f.TestOut(t, 1, "▶ salutations\n")
}

// Program-level test of a session fed from a pipe: no prompt is shown, and
// the value prefix still applies.
func TestInteract_Pipe(t *testing.T) {
	testutil.InTempDir(t)
	setupCleanHome(t)

	Test(t, Program{},
		ThatWeir("-norc", "-db", "history.db").
			WithStdin("echo hello\n").
			WritesStdout("▶ hello\n").
			WritesStderr(""),
	)
}

// Points the home and config environment at the working directory, so that
// a test session cannot see or touch the user's real files.
func setupCleanHome(c testutil.Cleanuper) {
	wd := must.OK1(os.Getwd())
	testutil.Setenv(c, env.HOME, wd)
	testutil.Setenv(c, env.XDG_CONFIG_HOME, wd)
}
