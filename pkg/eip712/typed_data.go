// Package eip712 models structured typed-data payloads for EIP-712 signing.
//
// A payload is a tagged structure of domain, type definitions, primary type
// and message, validated before hashing rather than treated as an untyped
// blob. Hashing itself is delegated to go-ethereum's apitypes, which computes
// the domain separator and message struct hash per the standard.
package eip712

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// domainTypeName is the reserved type key every payload must define.
const domainTypeName = "EIP712Domain"

var validate = validator.New(validator.WithRequiredStructEnabled())

// TypedData is a validated EIP-712 payload: domain, type definitions, the
// primary type to hash, and the message values.
type TypedData struct {
	Types       apitypes.Types            `json:"types" validate:"required,min=1"`
	PrimaryType string                    `json:"primaryType" validate:"required"`
	Domain      apitypes.TypedDataDomain  `json:"domain"`
	Message     apitypes.TypedDataMessage `json:"message" validate:"required,min=1"`
}

// Validate checks the structural integrity of the payload before it is
// hashed: required fields are present, the reserved EIP712Domain type is
// defined, and the primary type refers to a defined type.
func (td TypedData) Validate() error {
	if err := validate.Struct(td); err != nil {
		return errors.Wrap(err, "invalid typed data")
	}
	if _, ok := td.Types[domainTypeName]; !ok {
		return errors.Errorf("typed data must define the %s type", domainTypeName)
	}
	if td.PrimaryType == domainTypeName {
		return errors.Errorf("primary type must not be %s", domainTypeName)
	}
	if _, ok := td.Types[td.PrimaryType]; !ok {
		return errors.Errorf("primary type %q is not defined in types", td.PrimaryType)
	}
	return nil
}

// Hash validates the payload and returns the 32-byte EIP-712 structured
// digest: keccak256(0x1901 || domainSeparator || structHash).
func (td TypedData) Hash() ([]byte, error) {
	if err := td.Validate(); err != nil {
		return nil, err
	}
	digest, _, err := apitypes.TypedDataAndHash(td.toAPITypes())
	if err != nil {
		return nil, errors.Wrap(err, "hash typed data")
	}
	return digest, nil
}

// MarshalJSON keeps the payload wire-compatible with the canonical EIP-712
// JSON layout.
func (td TypedData) MarshalJSON() ([]byte, error) {
	type alias TypedData
	return json.Marshal(alias(td))
}

// UnmarshalJSON parses the canonical JSON layout without validating; callers
// validate (or hash, which validates) before signing.
func (td *TypedData) UnmarshalJSON(data []byte) error {
	type alias TypedData
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*td = TypedData(a)
	return nil
}

func (td TypedData) toAPITypes() apitypes.TypedData {
	return apitypes.TypedData{
		Types:       td.Types,
		PrimaryType: td.PrimaryType,
		Domain:      td.Domain,
		Message:     td.Message,
	}
}
