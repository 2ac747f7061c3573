package sign

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/erc7824/walletkit/pkg/keys"
)

var _ Signer = (*InstrumentedSigner)(nil)

// InstrumentedSigner decorates a Signer with Prometheus counters for signing
// attempts by outcome.
type InstrumentedSigner struct {
	inner Signer
	ops   *prometheus.CounterVec
}

// NewInstrumentedSigner wraps the signer, registering its metrics with the
// given registry. A nil registry falls back to the default registerer.
func NewInstrumentedSigner(inner Signer, registry prometheus.Registerer) *InstrumentedSigner {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &InstrumentedSigner{
		inner: inner,
		ops: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "walletkit_sign_operations_total",
			Help: "Number of signing operations by outcome",
		}, []string{"outcome"}),
	}
}

// PublicKey returns the public key of the wrapped signer.
func (s *InstrumentedSigner) PublicKey() keys.PublicKey {
	return s.inner.PublicKey()
}

// Sign delegates to the wrapped signer and counts the outcome.
func (s *InstrumentedSigner) Sign(payload []byte) (Signature, error) {
	sig, err := s.inner.Sign(payload)
	if err != nil {
		s.ops.WithLabelValues("failure").Inc()
		return nil, err
	}
	s.ops.WithLabelValues("success").Inc()
	return sig, nil
}
