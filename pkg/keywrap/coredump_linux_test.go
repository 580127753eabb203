//go:build linux

package keywrap

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parentCoreHardLimit reads the hard core file size limit of the process that
// launched the test binary, as reported by /proc.
func parentCoreHardLimit(t *testing.T) string {
	t.Helper()

	f, err := os.Open(fmt.Sprintf("/proc/%d/limits", os.Getppid()))
	if err != nil {
		t.Skipf("parent limits unavailable: %v", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "Max core file size") {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, "Max core file size"))
		if len(fields) >= 2 {
			return fields[1]
		}
	}
	t.Skip("core file size limit not reported")

	return ""
}

// Linking the package must leave the process core dump limit alone.
func TestImportKeepsCoreDumpLimit(t *testing.T) {
	parentHard := parentCoreHardLimit(t)
	if parentHard == "0" {
		t.Skip("core dumps already disabled by the parent process")
	}

	var lim syscall.Rlimit
	require.NoError(t, syscall.Getrlimit(syscall.RLIMIT_CORE, &lim))
	assert.NotZero(t, lim.Max, "hard RLIMIT_CORE was lowered to 0 (parent hard limit %s)", parentHard)

	// The package still works without touching process limits.
	require.NoError(t, SelfTest())
}
