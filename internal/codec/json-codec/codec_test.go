package jsoncodec

import (
	"net/netip"
	"strings"
	"testing"

	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/types"
	"github.com/LeJamon/goDashTx/internal/core/tx/special"
	"github.com/LeJamon/goDashTx/internal/core/types/transactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const proTxHashDisplay = "fd39755edfe1eb9c200433eecc0ef9641bea3b86ec8e5658111c4bb89d09723a"

func TestProviderUpdateServiceJSON(t *testing.T) {
	proTxHash, err := types.FromDisplayHex[types.Txid](proTxHashDisplay)
	require.NoError(t, err)
	var sig types.BLSSignature
	sig[0], sig[95] = 0xab, 0xcd

	payload := &special.ProviderUpdateServicePayload{
		Version:      1,
		ProTxHash:    proTxHash,
		IPAddress:    types.IPAddressFromAddr(netip.MustParseAddr("52.36.64.148")),
		Port:         19999,
		ScriptPayout: transactions.Script{0x6a},
		PayloadSig:   sig,
	}

	out, err := Marshal(payload)
	require.NoError(t, err)

	expected := `{
		"version": 1,
		"proTxHash": "` + proTxHashDisplay + `",
		"service": "52.36.64.148",
		"port": 19999,
		"scriptPayout": "6a",
		"inputsHash": "` + strings.Repeat("0", 64) + `",
		"payloadSig": "ab` + strings.Repeat("0", 188) + `cd"
	}`
	assert.JSONEq(t, expected, string(out))

	var decoded special.ProviderUpdateServicePayload
	require.NoError(t, Unmarshal(out, &decoded))
	assert.Equal(t, payload, &decoded)
}

func TestQuorumCommitmentJSON(t *testing.T) {
	index := int16(1)
	payload := &special.QuorumCommitmentPayload{
		Version: 1,
		Height:  42,
		FinalizationCommitment: special.QuorumFinalizationCommitment{
			Version:      2,
			LLMQType:     6,
			QuorumIndex:  &index,
			Signers:      []bool{true, false, true},
			ValidMembers: []bool{true, true, true},
		},
	}

	out, err := Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"quorumIndex":1`)
	assert.Contains(t, string(out), `"signers":[true,false,true]`)

	var decoded special.QuorumCommitmentPayload
	require.NoError(t, Unmarshal(out, &decoded))
	assert.Equal(t, payload, &decoded)

	// Unindexed versions leave the field out.
	payload.FinalizationCommitment.Version = 1
	payload.FinalizationCommitment.QuorumIndex = nil
	out, err = Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "quorumIndex")
}

func TestAssetLockJSON(t *testing.T) {
	in := []byte(`{"version":1,"count":1,"creditOutputs":[{"value":100000,"scriptPubKey":"51"}]}`)

	var decoded special.AssetLockPayload
	require.NoError(t, Unmarshal(in, &decoded))
	assert.Equal(t, uint8(1), decoded.Count)
	require.Len(t, decoded.CreditOutputs, 1)
	assert.Equal(t, int64(100000), decoded.CreditOutputs[0].Value)
	assert.Equal(t, transactions.Script{0x51}, decoded.CreditOutputs[0].ScriptPubKey)

	out, err := Marshal(&decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
}

func TestUnmarshalRejectsBadHash(t *testing.T) {
	var decoded special.ProviderUpdateServicePayload
	err := Unmarshal([]byte(`{"proTxHash":"abcd"}`), &decoded)
	require.Error(t, err)

	err = Unmarshal([]byte(`{"service":"not an ip"}`), &decoded)
	require.Error(t, err)
}
