// Package keystore wraps the turnover key for storage at rest using
// deterministic authenticated encryption (AES-SIV via Tink).
package keystore

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tink-crypto/tink-go/v2/daead"
	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	aes_sivpb "github.com/tink-crypto/tink-go/v2/proto/aes_siv_go_proto"
	tinkpb "github.com/tink-crypto/tink-go/v2/proto/tink_go_proto"
	"github.com/tink-crypto/tink-go/v2/tink"

	"google.golang.org/protobuf/proto"
)

const (
	// WrappingKeySize is the AES-SIV key size required by Tink.
	WrappingKeySize = 64
	// TurnoverKeySize is the AES-256 turnover key size.
	TurnoverKeySize = 32
)

var (
	// ErrInvalidWrappingKey is returned when the key-encryption key has the wrong size.
	ErrInvalidWrappingKey = errors.New("wrapping key must be 64 bytes")
	// ErrInvalidTurnoverKey is returned when the key to be wrapped has the wrong size.
	ErrInvalidTurnoverKey = errors.New("turnover key must be 32 bytes")
)

// associatedData binds wrapped blobs to their purpose so a blob cannot be
// replayed as some other AES-SIV payload under the same wrapping key.
var associatedData = []byte("rksv/turnover-key/v1")

// Wrap encrypts the turnover key under the wrapping key. The result is
// deterministic: wrapping the same key twice yields the same blob.
func Wrap(wrappingKey, turnoverKey []byte) ([]byte, error) {
	if len(turnoverKey) != TurnoverKeySize {
		return nil, ErrInvalidTurnoverKey
	}

	primitive, err := newPrimitive(wrappingKey)
	if err != nil {
		return nil, err
	}

	blob, err := primitive.EncryptDeterministically(turnoverKey, associatedData)
	if err != nil {
		return nil, fmt.Errorf("wrapping key: %w", err)
	}

	return blob, nil
}

// Unwrap recovers the turnover key from a wrapped blob, authenticating it in
// the process.
func Unwrap(wrappingKey, blob []byte) ([]byte, error) {
	primitive, err := newPrimitive(wrappingKey)
	if err != nil {
		return nil, err
	}

	turnoverKey, err := primitive.DecryptDeterministically(blob, associatedData)
	if err != nil {
		return nil, fmt.Errorf("unwrapping key: %w", err)
	}

	if len(turnoverKey) != TurnoverKeySize {
		return nil, ErrInvalidTurnoverKey
	}

	return turnoverKey, nil
}

// newPrimitive builds the deterministic AEAD scoped to a single call.
func newPrimitive(wrappingKey []byte) (tink.DeterministicAEAD, error) {
	if len(wrappingKey) != WrappingKeySize {
		return nil, ErrInvalidWrappingKey
	}

	handle, err := newDeterministicAEADKeyHandle(wrappingKey)
	if err != nil {
		return nil, fmt.Errorf("creating keyset handle: %w", err)
	}

	primitive, err := daead.New(handle)
	if err != nil {
		return nil, fmt.Errorf("creating DeterministicAEAD: %w", err)
	}

	return primitive, nil
}

// newDeterministicAEADKeyHandle creates a Tink keyset handle for AES-SIV from
// raw key bytes.
func newDeterministicAEADKeyHandle(key []byte) (*keyset.Handle, error) {
	// Create an AesSivKey proto message
	aesSivKey := &aes_sivpb.AesSivKey{
		Version:  0,
		KeyValue: key,
	}

	serializedKey, err := proto.Marshal(aesSivKey)
	if err != nil {
		return nil, fmt.Errorf("serializing AesSivKey: %w", err)
	}

	keyData := &tinkpb.KeyData{
		TypeUrl:         "type.googleapis.com/google.crypto.tink.AesSivKey",
		Value:           serializedKey,
		KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
	}

	// Create a Keyset containing the key
	keySet := &tinkpb.Keyset{
		PrimaryKeyId: 1,
		Key: []*tinkpb.Keyset_Key{
			{
				KeyData:          keyData,
				Status:           tinkpb.KeyStatusType_ENABLED,
				KeyId:            1,
				OutputPrefixType: tinkpb.OutputPrefixType_RAW,
			},
		},
	}

	// Serialize the Keyset
	serializedKeyset, err := proto.Marshal(keySet)
	if err != nil {
		return nil, fmt.Errorf("serializing keyset: %w", err)
	}

	// Use insecurecleartextkeyset.Read with keyset.NewBinaryReader
	keySetHandle, err := insecurecleartextkeyset.Read(
		keyset.NewBinaryReader(bytes.NewReader(serializedKeyset)))
	if err != nil {
		return nil, fmt.Errorf("creating keyset handle: %w", err)
	}

	return keySetHandle, nil
}
