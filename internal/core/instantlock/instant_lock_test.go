package instantlock

import (
	"bytes"
	"testing"

	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/types"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/types/testutil"
	jsoncodec "github.com/LeJamon/goDashTx/internal/codec/json-codec"
	"github.com/LeJamon/goDashTx/internal/core/types/transactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	islockHex = "01" +
		"01" + "01102862a43d122e6675aba4b507ae307af8e1e17febc77907e08b3efa28f41b" + "00000000" +
		"4b446de00a592c67402c0a65649f4ad69f29084b3e9054f5aa6b85a50b497fe1" +
		"36a56617591a6a89237bada6af1f9b46eba47b5d89a8c4e49ff2d0236182307c" +
		islockSignatureHex

	islockSignatureHex = "85e12d70ca7118c5034004f93e45384079f46c6c2928b45cfc5d3ad640e70dfd" +
		"87a9a3069899adfb3b1622daeeead19809b74354272ccf95290678f55c13728e" +
		"3c5ee8f8417fcce3dfdca2a7c9c33ec981abdff1ec35a2e4b558c3698f01c1b8"
)

func TestInstantLockFixture(t *testing.T) {
	raw := testutil.MustDecodeHex(t, islockHex)
	require.Len(t, raw, 198)

	l, err := Parse(raw, binarycodec.DefaultLimits())
	require.NoError(t, err)

	assert.Equal(t, DefaultVersion, l.Version)
	require.Len(t, l.Inputs, 1)
	assert.Equal(t, "1bf428fa3e8be00779c7eb7fe1e1f87a30ae07b5a4ab75662e123da462281001", l.Inputs[0].Hash.String())
	assert.Equal(t, uint32(0), l.Inputs[0].Index)
	assert.Equal(t, "e17f490ba5856baaf554903e4b08299fd64a9f64650a2c40672c590ae06d444b", l.Txid.String())
	assert.Equal(t, "7c30826123d0f29fe4c4a8895d7ba4eb469b1fafa6ad7b23896a1a591766a536", l.CycleHash.String())
	assert.Equal(t, islockSignatureHex, l.Signature.String())

	assert.Equal(t, "4ee6a4ed2b6c70efd401c6c91dfaf6c61badd13f80ec07c281bb93d5270fcd58", l.Hash().String())
	assert.Equal(t, "495be44677e82895a9396fef02c6e9afc1f01d4aff70622b9f78e0e10d57064c", l.RequestID().String())

	require.Equal(t, len(raw), l.Size())
	encoded, err := l.Serialize()
	require.NoError(t, err)
	require.Equal(t, raw, encoded)
}

func TestInstantLockJSON(t *testing.T) {
	in := `{
		"version": 1,
		"inputs": [
			{
				"outpointHash": "1bf428fa3e8be00779c7eb7fe1e1f87a30ae07b5a4ab75662e123da462281001",
				"outpointIndex": 0
			}
		],
		"txid": "e17f490ba5856baaf554903e4b08299fd64a9f64650a2c40672c590ae06d444b",
		"cyclehash": "7c30826123d0f29fe4c4a8895d7ba4eb469b1fafa6ad7b23896a1a591766a536",
		"signature": "` + islockSignatureHex + `"
	}`

	var l InstantLock
	require.NoError(t, jsoncodec.Unmarshal([]byte(in), &l))

	encoded, err := l.Serialize()
	require.NoError(t, err)
	require.Equal(t, testutil.MustDecodeHex(t, islockHex), encoded)

	out, err := jsoncodec.Marshal(&l)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestNewInstantLock(t *testing.T) {
	txid, err := types.FromDisplayHex[types.Txid]("e17f490ba5856baaf554903e4b08299fd64a9f64650a2c40672c590ae06d444b")
	require.NoError(t, err)

	l := New(txid, nil, types.CycleHash{}, types.BLSSignature{})
	assert.Equal(t, uint8(1), l.Version)
	assert.Equal(t, 1+1+32+32+96, l.Size())

	encoded, err := l.Serialize()
	require.NoError(t, err)
	decoded, err := Parse(encoded, binarycodec.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, l, decoded)
}

func TestRequestIDDependsOnInputsOnly(t *testing.T) {
	inputs := []transactions.OutPoint{{Index: 1}, {Index: 2}}
	a := New(types.Txid{0x01}, inputs, types.CycleHash{0x02}, types.BLSSignature{0x03})
	b := New(types.Txid{0x04}, inputs, types.CycleHash{0x05}, types.BLSSignature{0x06})
	assert.Equal(t, a.RequestID(), b.RequestID())
	assert.NotEqual(t, a.Hash(), b.Hash())

	c := New(types.Txid{0x01}, inputs[:1], types.CycleHash{0x02}, types.BLSSignature{0x03})
	assert.NotEqual(t, a.RequestID(), c.RequestID())
}

func TestInstantLockDecodeErrors(t *testing.T) {
	raw := testutil.MustDecodeHex(t, islockHex)

	hostile := binarycodec.AppendCompactSize([]byte{0x01}, 0xffffffff)

	tt := []struct {
		description string
		input       []byte
		limits      binarycodec.Limits
		expected    error
	}{
		{"truncated signature", raw[:len(raw)-1], binarycodec.DefaultLimits(), binarycodec.ErrStreamExhausted},
		{"trailing byte", append(append([]byte{}, raw...), 0x00), binarycodec.DefaultLimits(), binarycodec.ErrTrailingBytes},
		{"hostile input count", hostile, binarycodec.DefaultLimits(), binarycodec.ErrOversizedLength},
		{"message over vec size", raw, binarycodec.Limits{MaxVecSize: 100}, binarycodec.ErrOversizedLength},
	}

	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			l, err := Parse(tc.input, tc.limits)
			require.ErrorIs(t, err, tc.expected)
			require.Nil(t, l)
		})
	}
}

func TestReadBoundsMessage(t *testing.T) {
	raw := testutil.MustDecodeHex(t, islockHex)

	l, err := Read(bytes.NewReader(raw), binarycodec.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, l.Hash().String(), "4ee6a4ed2b6c70efd401c6c91dfaf6c61badd13f80ec07c281bb93d5270fcd58")

	// A count that fits the list limit still cannot read past MaxVecSize.
	_, err = Read(bytes.NewReader(raw), binarycodec.Limits{MaxVecSize: 100})
	require.ErrorIs(t, err, binarycodec.ErrStreamExhausted)
}
