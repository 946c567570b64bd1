package journal

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/jjquek/custodia/common"
	"github.com/jjquek/custodia/common/amount"
)

// ErrCorruptedRecord is reported when a stored record fails to decode
// or its digest does not match its content.
const ErrCorruptedRecord = common.ConstError("corrupted journal record")

// wireRecord is the RLP shape of a record. Amounts are stored as
// minimal big-endian byte strings.
type wireRecord struct {
	Seq     uint64
	Kind    uint8
	Account common.Address
	TokenA  common.Token
	TokenB  common.Token
	AmountA []byte
	AmountB []byte
	Unix    uint64
}

// encodePayload encodes everything of a record except its digest.
func encodePayload(r Record) ([]byte, error) {
	a := r.AmountA.Uint256()
	b := r.AmountB.Uint256()
	return rlp.EncodeToBytes(wireRecord{
		Seq:     r.Seq,
		Kind:    uint8(r.Kind),
		Account: r.Account,
		TokenA:  r.TokenA,
		TokenB:  r.TokenB,
		AmountA: a.Bytes(),
		AmountB: b.Bytes(),
		Unix:    r.Unix,
	})
}

func decodePayload(data []byte) (Record, error) {
	var wire wireRecord
	if err := rlp.DecodeBytes(data, &wire); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}
	if len(wire.AmountA) > 32 || len(wire.AmountB) > 32 {
		return Record{}, fmt.Errorf("%w: oversized amount", ErrCorruptedRecord)
	}
	return Record{
		Seq:     wire.Seq,
		Kind:    Kind(wire.Kind),
		Account: wire.Account,
		TokenA:  wire.TokenA,
		TokenB:  wire.TokenB,
		AmountA: amount.NewFromBytes(wire.AmountA...),
		AmountB: amount.NewFromBytes(wire.AmountB...),
		Unix:    wire.Unix,
	}, nil
}

// encodeRecord produces the stored form of a sealed record: the RLP
// payload followed by the 32-byte digest.
func encodeRecord(r Record) ([]byte, error) {
	payload, err := encodePayload(r)
	if err != nil {
		return nil, err
	}
	return append(payload, r.Digest[:]...), nil
}

func decodeRecord(data []byte) (Record, error) {
	if len(data) < 32 {
		return Record{}, fmt.Errorf("%w: truncated record", ErrCorruptedRecord)
	}
	record, err := decodePayload(data[:len(data)-32])
	if err != nil {
		return Record{}, err
	}
	copy(record.Digest[:], data[len(data)-32:])
	return record, nil
}

// chainDigest computes the digest of a record given the digest of its
// parent and its encoded payload.
func chainDigest(parent common.Hash, payload []byte) common.Hash {
	data := make([]byte, 0, len(parent)+len(payload))
	data = append(data, parent[:]...)
	data = append(data, payload...)
	return common.Keccak256(data)
}

// Seal fills in the digest of a record based on the digest of its
// parent record.
func Seal(r *Record, parent common.Hash) error {
	payload, err := encodePayload(*r)
	if err != nil {
		return err
	}
	r.Digest = chainDigest(parent, payload)
	return nil
}

// VerifyChain walks all records of the given store and re-computes the
// digest chain, reporting the first record whose digest does not match
// its content.
func VerifyChain(store Store) error {
	parent := common.Hash{}
	next := uint64(0)
	return store.Visit(0, func(r Record) error {
		if r.Seq != next {
			return fmt.Errorf("%w: expected sequence %d, got %d", ErrCorruptedRecord, next, r.Seq)
		}
		payload, err := encodePayload(r)
		if err != nil {
			return err
		}
		if want := chainDigest(parent, payload); want != r.Digest {
			return fmt.Errorf("%w: digest mismatch at sequence %d", ErrCorruptedRecord, r.Seq)
		}
		parent = r.Digest
		next++
		return nil
	})
}
