package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTripWithSalt(t *testing.T) {
	salt := bytes.Repeat([]byte{0x11}, 16)

	var buf bytes.Buffer
	iv, err := writeHeader(&buf, salt)
	require.NoError(t, err)
	require.Len(t, iv, 16)

	gotSalt, gotIV, err := readHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, salt, gotSalt)
	require.Equal(t, iv, gotIV)
}

func TestHeaderRoundTripWithoutSalt(t *testing.T) {
	var buf bytes.Buffer
	iv, err := writeHeader(&buf, nil)
	require.NoError(t, err)

	gotSalt, gotIV, err := readHeader(&buf)
	require.NoError(t, err)
	require.Nil(t, gotSalt)
	require.Equal(t, iv, gotIV)
}
