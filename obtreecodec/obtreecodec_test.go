package obtreecodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harudb/obtree/obtree"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := obtree.NewOrdered[string, int]()
	for i, k := range []string{"apple", "banana", "cherry", "date"} {
		m.Insert(k, i)
	}

	data, err := Encode(m)
	require.NoError(t, err)

	decoded, err := Decode[string, int](data)
	require.NoError(t, err)
	require.Equal(t, m.Len(), decoded.Len())

	it := m.Entries()
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		got, ok := decoded.Get(k)
		require.True(t, ok)
		require.Equal(t, v, got)
	}
}

func TestDecodeFuncWithByteArrayKeys(t *testing.T) {
	lexCompare := func(a, b [4]byte) int {
		for i := range a {
			if a[i] != b[i] {
				if a[i] < b[i] {
					return -1
				}
				return 1
			}
		}
		return 0
	}

	m := obtree.NewFunc[[4]byte, int](lexCompare)
	m.Insert([4]byte{0, 0, 0, 1}, 1)
	m.Insert([4]byte{0, 0, 0, 2}, 2)

	data, err := Encode(m)
	require.NoError(t, err)

	decoded, err := DecodeFunc[[4]byte, int](data, lexCompare)
	require.NoError(t, err)
	v, ok := decoded.Get([4]byte{0, 0, 0, 2})
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode[string, int]([]byte{0xff, 0xff, 0xff})
	require.Error(t, err)
}
