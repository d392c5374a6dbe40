package chain

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// App data hash errors
var (
	ErrInvalidAppDataHash = errors.New("invalid app data hash")
)

// EmptyAppDataHash is the hash of the default, empty app data
var EmptyAppDataHash = common.Hash{}

// HashAppData computes the canonical app data hash: keccak256 over the exact bytes of full
func HashAppData(full string) common.Hash {
	return crypto.Keccak256Hash([]byte(full))
}

// ParseAppDataHash parses a 0x-prefixed 32 byte hex hash.
// An empty string parses to EmptyAppDataHash.
func ParseAppDataHash(s string) (common.Hash, error) {
	if s == "" {
		return EmptyAppDataHash, nil
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %q: %v", ErrInvalidAppDataHash, s, err)
	}
	if len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAppDataHash, common.HashLength, len(b))
	}
	return common.BytesToHash(b), nil
}
