package imagecodec

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	data, ext, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
	assert.Equal(t, "png", ext)
}

func TestDecodeInvalid(t *testing.T) {
	cases := []struct {
		name string
		uri  string
		want error
	}{
		{"非数据URI", "http://example.com/a.png", ErrInvalidDataURI},
		{"缺少base64分隔符", "data:image/png,abcd", ErrInvalidDataURI},
		{"空载荷", "data:image/png;base64,", ErrInvalidDataURI},
		{"空扩展名", "data:image/;base64,YWJjZA==", ErrInvalidDataURI},
		{"扩展名带路径字符", "data:image/../x;base64,YWJjZA==", ErrInvalidDataURI},
		{"载荷不是合法base64", "data:image/png;base64,%%%%", ErrInvalidPayload},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Decode(tc.uri)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:image/jpeg;base64,abcd"))
	assert.False(t, IsDataURI("https://example.com/a.jpg"))
	assert.False(t, IsDataURI(""))
}
