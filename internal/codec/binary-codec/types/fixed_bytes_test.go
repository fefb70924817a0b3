package types

import (
	"bytes"
	"net/netip"
	"sort"
	"testing"

	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/types/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedBytesEncodeDecodeHasNoPrefix(t *testing.T) {
	var key BLSPublicKey
	for i := range key {
		key[i] = byte(i)
	}

	var buf bytes.Buffer
	n, err := Encode(serdes.NewBinarySerializer(&buf), key)
	require.NoError(t, err)
	require.Equal(t, BLSPublicKeySize, n)
	require.Equal(t, key[:], buf.Bytes())

	decoded, err := Decode[BLSPublicKey](serdes.NewBinaryParserBytes(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, key, decoded)
}

func TestFixedBytesShortRead(t *testing.T) {
	_, err := Decode[BLSSignature](serdes.NewBinaryParserBytes(testutil.Repeat(0x01, 95)))
	require.ErrorIs(t, err, binarycodec.ErrStreamExhausted)
}

func TestFixedBytesOrdering(t *testing.T) {
	a := QuorumHash{0x00, 0xff}
	b := QuorumHash{0x01}
	c := QuorumHash{0x01, 0x01}

	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(c, b))
	assert.Equal(t, 0, Compare(c, c))

	hashes := []QuorumHash{c, a, b}
	sort.Slice(hashes, func(i, j int) bool { return Compare(hashes[i], hashes[j]) < 0 })
	assert.Equal(t, []QuorumHash{a, b, c}, hashes)

	seen := map[QuorumHash]bool{a: true}
	assert.True(t, seen[QuorumHash{0x00, 0xff}])
	assert.False(t, seen[b])
}

func TestHexRenderings(t *testing.T) {
	const display = "fd39755edfe1eb9c200433eecc0ef9641bea3b86ec8e5658111c4bb89d09723a"
	const wire = "3a72099db84b1c1158568eec863bea1b64f90eccee3304209cebe1df5e7539fd"

	txid, err := FromDisplayHex[Txid](display)
	require.NoError(t, err)
	assert.Equal(t, wire, ToHex(txid))
	assert.Equal(t, display, txid.String())

	fromWire, err := FromHex[Txid](wire)
	require.NoError(t, err)
	assert.Equal(t, txid, fromWire)

	text, err := txid.MarshalText()
	require.NoError(t, err)
	var parsed Txid
	require.NoError(t, parsed.UnmarshalText(text))
	assert.Equal(t, txid, parsed)

	_, err = FromHex[Txid]("abcd")
	require.Error(t, err)
	_, err = FromHex[Txid]("zz")
	require.Error(t, err)

	assert.True(t, IsZero(Txid{}))
	assert.False(t, IsZero(txid))
}

func TestBLSRendersInWireOrder(t *testing.T) {
	var sig BLSSignature
	sig[0] = 0x85
	sig[95] = 0xb8
	assert.Equal(t, "85", sig.String()[:2])
	assert.Equal(t, "b8", sig.String()[190:])

	var parsed BLSSignature
	require.NoError(t, parsed.UnmarshalText([]byte(sig.String())))
	assert.Equal(t, sig, parsed)
}

func TestIPAddress(t *testing.T) {
	addr := netip.MustParseAddr("52.36.64.148")
	ip := IPAddressFromAddr(addr)

	expected := append(testutil.Repeat(0x00, 10), 0xff, 0xff, 52, 36, 64, 148)
	assert.Equal(t, expected, ip[:])
	assert.Equal(t, addr, ip.Addr())
	assert.Equal(t, "52.36.64.148", ip.String())

	var parsed IPAddress
	require.NoError(t, parsed.UnmarshalText([]byte("52.36.64.148")))
	assert.Equal(t, ip, parsed)
	require.Error(t, parsed.UnmarshalText([]byte("not-an-ip")))
}
