package app

import (
	"os"
	"testing"

	"github.com/specialistvlad/daypack/internal/config"
	"github.com/specialistvlad/daypack/internal/registry"
	"github.com/specialistvlad/daypack/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. It returns the
// app together with the buffers capturing printed results and logs.
func SetupAppTest(t *testing.T, appConfig *Config, loader config.Loader, modules ...registry.Module) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	appConfig.LogLevel = "debug"
	testApp := NewApp(outBuffer, logBuffer, appConfig, loader, modules...)

	t.Cleanup(func() {
		if os.Getenv("DAYPACK_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
