package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashpursglove/traycalc/internal/library"
)

func TestAdhocEntries(t *testing.T) {
	c, err := library.Load()
	require.NoError(t, err)

	entries, err := AdhocEntries(c, []string{"CAT7 S/FTP:12", "Cu 3C 2.5mm² PVC"})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "CAT7 S/FTP", entries[0].Cable.Name)
	assert.Equal(t, 12, entries[0].Quantity)
	assert.Equal(t, 1, entries[1].Quantity, "quantity defaults to 1 when omitted")
}

func TestAdhocEntriesRejectsBadSpecs(t *testing.T) {
	c, err := library.Load()
	require.NoError(t, err)

	_, err = AdhocEntries(c, []string{"CAT7 S/FTP:0"})
	assert.ErrorContains(t, err, "positive integer")

	_, err = AdhocEntries(c, []string{"CAT7 S/FTP:many"})
	assert.ErrorContains(t, err, "positive integer")

	_, err = AdhocEntries(c, []string{"no such cable:2"})
	assert.ErrorContains(t, err, "unknown cable")
}
