// Package keys implements the secp256k1 key-management core of the wallet SDK.
//
// It models a one-directional derivation pipeline:
//
//	Mnemonic/RawSecret -> PrivateKey -> PublicKey -> Address
//
// A PrivateKey owns the 32-byte secret scalar and is immutable after
// construction, so independent instances can be used concurrently without
// coordination. Keys are created by generating a fresh BIP39 mnemonic, by
// deriving from an existing mnemonic along a BIP32 path, or by parsing a raw
// hex/byte secret.
//
// Signing is exposed through two named strategies that must stay
// interchangeable with downstream verifiers:
//
//   - Sign/SignHashed route through go-ethereum's signing routine and return
//     the signature's r and s components re-assembled into 64 bytes.
//   - SignEcda/SignHashedEcda call the secp256k1 primitive directly and return
//     its 64-byte compact r||s output.
//
// Both strategies are RFC 6979 deterministic and agree bit-for-bit on r||s for
// the same digest and key. SignTypedData is the one exception in output shape:
// it returns 65 bytes, keeping the trailing recovery byte that typed-data
// verifiers need for ecrecover.
//
// # Security Design
//
// The scalar is never exposed except through an explicit Hex/Bytes request,
// the mnemonic is not retained after derivation, and no signing path keeps
// reusable scratch state that concurrent callers could clobber.
package keys
