package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64ConverterInvertible(t *testing.T) {
	conv := Base64Converter{}

	cases := [][]byte{
		{},
		[]byte("plain text"),
		{0x00, 0x01, 0xfe, 0xff},
		[]byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"),
	}
	for _, raw := range cases {
		encoded, err := conv.Encode(raw)
		require.NoError(t, err)

		got, err := conv.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, got)
	}
}

func TestBase64ConverterRejectsGarbage(t *testing.T) {
	_, err := Base64Converter{}.Decode("!!! not base64 !!!")
	assert.Error(t, err)
}
