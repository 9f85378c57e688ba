package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrationsSorted(t *testing.T) {
	ms, err := Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, ms)

	for i := 1; i < len(ms); i++ {
		require.Less(t, ms[i-1].Name, ms[i].Name)
	}
	require.True(t, strings.Contains(ms[0].SQL, "CREATE TABLE IF NOT EXISTS kv"))
}
