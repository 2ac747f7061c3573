// Package sign provides the signer capability boundary of the wallet SDK.
//
// It defines a small Signer interface that local keys, test doubles and
// external devices all implement, so signing callers never depend on where
// key material lives.
//
// The implementations are:
//
//   - LocalSigner: an in-process key from the keys package
//   - RemoteSigner/HardwareSigner: the external-signer boundary; transport
//     and device sessions are managed outside this module
//   - MockSigner: deterministic keys for tests
//   - InstrumentedSigner: Prometheus counters around any Signer
//
// # Security Design
//
// The interfaces never expose private key material: a Signer offers only its
// public key and the signing operation, which keeps hardware and remote key
// management services representable behind the same boundary.
//
// Usage
//
//	signer, err := sign.NewLocalSignerFromHex(secretHex)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := signer.Sign([]byte("hello world"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Address:", signer.Address())
//	fmt.Println("Signature:", sig)
package sign
