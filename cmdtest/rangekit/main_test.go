package rangekit

import (
	"flag"
	"testing"

	"github.com/vipcxj/rangekit/cmd"
	"github.com/vipcxj/rangekit/cmdtest"
)

var update = flag.Bool("update", false, "update test files with results")

func TestCLI(t *testing.T) {
	ts, err := cmdtest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Register("rangekit", cmd.Execute)
	ts.RunWithUpdate(t, *update)
}
