package sign

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/walletkit/pkg/keys"
)

type failingSigner struct{}

func (failingSigner) PublicKey() keys.PublicKey { return keys.PublicKey{} }
func (failingSigner) Sign([]byte) (Signature, error) {
	return nil, ErrNoDeviceSession
}

func TestInstrumentedSignerCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	signer := NewInstrumentedSigner(NewMockSigner("metrics-seed"), reg)

	for i := 0; i < 3; i++ {
		sig, err := signer.Sign([]byte("payload"))
		require.NoError(t, err)
		assert.Equal(t, TypeCompact, sig.Type())
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(signer.ops.WithLabelValues("success")))
	assert.Equal(t, float64(0), testutil.ToFloat64(signer.ops.WithLabelValues("failure")))
}

func TestInstrumentedSignerFailureCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	signer := NewInstrumentedSigner(failingSigner{}, reg)

	_, err := signer.Sign([]byte("payload"))
	assert.ErrorIs(t, err, ErrNoDeviceSession)

	assert.Equal(t, float64(1), testutil.ToFloat64(signer.ops.WithLabelValues("failure")))
	assert.Equal(t, float64(0), testutil.ToFloat64(signer.ops.WithLabelValues("success")))
}

func TestInstrumentedSignerPublicKey(t *testing.T) {
	inner := NewMockSigner("pubkey-seed")
	signer := NewInstrumentedSigner(inner, prometheus.NewRegistry())
	assert.Equal(t, inner.PublicKey().Hex(), signer.PublicKey().Hex())
}
