package buildinfo

import (
	"fmt"
	"runtime"
	"testing"

	. "src.weir.sh/pkg/prog/progtest"
)

func TestProgram(t *testing.T) {
	fullVersion := Version + VersionSuffix

	Test(t, Program,
		ThatWeir("-version").WritesStdout(fullVersion+"\n"),

		ThatWeir("-buildinfo").WritesStdout(
			fmt.Sprintf("Version: %v\nGo version: %v\nReproducible build: %v\n",
				fullVersion, runtime.Version(), Reproducible)),
		ThatWeir("-buildinfo", "-json").WritesStdout(
			fmt.Sprintf(`{"version":%s,"goversion":%s,"reproducible":%v}`+"\n",
				quoteJSON(fullVersion), quoteJSON(runtime.Version()), Reproducible)),

		ThatWeir().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}
