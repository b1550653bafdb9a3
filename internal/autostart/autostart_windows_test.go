//go:build windows

package autostart

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows/registry"
)

func scratchRunValue(t *testing.T) *runValue {
	t.Helper()
	key := fmt.Sprintf(`Software\dblt-test-%d`, os.Getpid())
	k, _, err := registry.CreateKey(registry.CURRENT_USER, key, registry.ALL_ACCESS)
	require.NoError(t, err)
	require.NoError(t, k.Close())
	t.Cleanup(func() { _ = registry.DeleteKey(registry.CURRENT_USER, key) })
	return &runValue{key: key, name: "DBLT", exePath: `C:\Program Files\dblt\dblt.exe`}
}

func TestRunValueLifecycle(t *testing.T) {
	r := scratchRunValue(t)

	assert.False(t, r.IsEnabled())
	require.NoError(t, r.Disable())

	require.NoError(t, r.Enable())
	assert.True(t, r.IsEnabled())

	k, err := registry.OpenKey(registry.CURRENT_USER, r.key, registry.QUERY_VALUE)
	require.NoError(t, err)
	v, _, err := k.GetStringValue("DBLT")
	k.Close()
	require.NoError(t, err)
	assert.Equal(t, `"C:\Program Files\dblt\dblt.exe"`, v)

	require.NoError(t, r.Disable())
	assert.False(t, r.IsEnabled())
}

func TestRunValueNonStringCountsAsEnabled(t *testing.T) {
	r := scratchRunValue(t)

	k, err := registry.OpenKey(registry.CURRENT_USER, r.key, registry.SET_VALUE)
	require.NoError(t, err)
	require.NoError(t, k.SetDWordValue("DBLT", 1))
	k.Close()

	assert.True(t, r.IsEnabled())
	require.NoError(t, r.Disable())
	assert.False(t, r.IsEnabled())
}
