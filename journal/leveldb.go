package journal

import (
	"encoding/binary"
	"fmt"

	"github.com/golang/snappy"
	"github.com/pbnjay/memory"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/jjquek/custodia/common"
)

// levelDbStore persists journal records in a LevelDB database, keyed
// by big-endian sequence number. Payloads are snappy-compressed.
type levelDbStore struct {
	db *leveldb.DB
}

// NewLevelDbStore opens (or creates) a LevelDB-backed journal store in
// the given directory.
func NewLevelDbStore(path string) (Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{
		BlockCacheCapacity: blockCacheSize(),
		// Records are compressed with snappy before insertion, no
		// need to compress twice.
		Compression: opt.NoCompression,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}
	return &levelDbStore{db: db}, nil
}

// blockCacheSize sizes the LevelDB block cache to a small fraction of
// the available system memory, clamped to [8 MiB, 256 MiB].
func blockCacheSize() int {
	size := memory.TotalMemory() / 256
	if size < 8<<20 {
		size = 8 << 20
	}
	if size > 256<<20 {
		size = 256 << 20
	}
	return int(size)
}

func sequenceKey(seq uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, seq)
}

func (s *levelDbStore) Append(record Record) error {
	data, err := encodeRecord(record)
	if err != nil {
		return err
	}
	return s.db.Put(sequenceKey(record.Seq), snappy.Encode(nil, data), nil)
}

func (s *levelDbStore) Visit(from uint64, visit func(Record) error) error {
	iter := s.db.NewIterator(&util.Range{Start: sequenceKey(from)}, nil)
	defer iter.Release()
	for iter.Next() {
		data, err := snappy.Decode(nil, iter.Value())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
		}
		record, err := decodeRecord(data)
		if err != nil {
			return err
		}
		if err := visit(record); err != nil {
			return err
		}
	}
	return iter.Error()
}

func (s *levelDbStore) Head() (uint64, common.Hash, error) {
	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()
	if !iter.Last() {
		return 0, common.Hash{}, iter.Error()
	}
	data, err := snappy.Decode(nil, iter.Value())
	if err != nil {
		return 0, common.Hash{}, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}
	record, err := decodeRecord(data)
	if err != nil {
		return 0, common.Hash{}, err
	}
	return record.Seq + 1, record.Digest, nil
}

func (s *levelDbStore) Flush() error {
	// LevelDB writes go through its journal, there is no extra buffer
	// to drain on this layer.
	return nil
}

func (s *levelDbStore) Close() error {
	return s.db.Close()
}
