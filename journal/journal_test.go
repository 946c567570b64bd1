package journal

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jjquek/custodia/common"
	"github.com/jjquek/custodia/common/amount"
)

// openTestStores produces one fresh store per backend, each backed by
// its own temporary location.
func openTestStores(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	stores := map[string]Store{}
	for _, backend := range []Backend{Memory, LevelDB, SQLite} {
		store, err := Open(Config{
			Backend: backend,
			Path:    filepath.Join(dir, string(backend)),
		})
		require.NoError(t, err)
		stores[string(backend)] = store
	}
	return stores
}

func testRecords(count int) []Record {
	records := make([]Record, 0, count)
	parent := common.Hash{}
	for i := 0; i < count; i++ {
		record := Record{
			Seq:     uint64(i),
			Kind:    Kind(i % 7),
			Account: common.Address{byte(i)},
			TokenA:  common.Token{0xaa},
			TokenB:  common.Token{0xbb},
			AmountA: amount.New(uint64(i) * 10),
			AmountB: amount.New(uint64(i) * 3),
			Unix:    1700000000 + uint64(i),
		}
		if err := Seal(&record, parent); err != nil {
			panic(err)
		}
		parent = record.Digest
		records = append(records, record)
	}
	return records
}

func TestStore_AppendedRecordsCanBeVisited(t *testing.T) {
	for name, store := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			records := testRecords(5)
			for _, record := range records {
				require.NoError(store.Append(record))
			}

			restored := []Record{}
			require.NoError(store.Visit(0, func(r Record) error {
				restored = append(restored, r)
				return nil
			}))
			require.Equal(records, restored)

			// A partial visit starts at the requested sequence.
			restored = restored[:0]
			require.NoError(store.Visit(3, func(r Record) error {
				restored = append(restored, r)
				return nil
			}))
			require.Equal(records[3:], restored)

			require.NoError(store.Close())
		})
	}
}

func TestStore_HeadReflectsLastRecord(t *testing.T) {
	for name, store := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			next, head, err := store.Head()
			require.NoError(err)
			require.Equal(uint64(0), next)
			require.Equal(common.Hash{}, head)

			records := testRecords(3)
			for _, record := range records {
				require.NoError(store.Append(record))
			}

			next, head, err = store.Head()
			require.NoError(err)
			require.Equal(uint64(3), next)
			require.Equal(records[2].Digest, head)

			require.NoError(store.Close())
		})
	}
}

func TestStore_VisitStopsAtFirstError(t *testing.T) {
	for name, store := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			for _, record := range testRecords(4) {
				require.NoError(store.Append(record))
			}

			injected := fmt.Errorf("injected")
			seen := 0
			err := store.Visit(0, func(r Record) error {
				seen++
				if seen == 2 {
					return injected
				}
				return nil
			})
			require.ErrorIs(err, injected)
			require.Equal(2, seen)

			require.NoError(store.Close())
		})
	}
}

func TestStore_PersistentBackendsSurviveReopening(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range []Backend{LevelDB, SQLite} {
		t.Run(string(backend), func(t *testing.T) {
			require := require.New(t)
			config := Config{Backend: backend, Path: filepath.Join(dir, string(backend))}

			store, err := Open(config)
			require.NoError(err)
			records := testRecords(4)
			for _, record := range records {
				require.NoError(store.Append(record))
			}
			require.NoError(store.Close())

			store, err = Open(config)
			require.NoError(err)
			next, head, err := store.Head()
			require.NoError(err)
			require.Equal(uint64(4), next)
			require.Equal(records[3].Digest, head)
			require.NoError(VerifyChain(store))
			require.NoError(store.Close())
		})
	}
}

func TestOpen_UnknownBackendIsRejected(t *testing.T) {
	_, err := Open(Config{Backend: "papyrus"})
	require.ErrorContains(t, err, "unknown journal backend")
}

func TestVerifyChain_DetectsTampering(t *testing.T) {
	require := require.New(t)
	store := NewMemoryStore()
	records := testRecords(3)
	for _, record := range records {
		require.NoError(store.Append(record))
	}
	require.NoError(VerifyChain(store))

	// Raising an amount without re-sealing breaks the chain.
	tampered := records[1]
	tampered.AmountA = amount.New(1 << 40)
	store.(*memoryStore).records[1] = tampered
	require.ErrorIs(VerifyChain(store), ErrCorruptedRecord)
}

func TestVerifyChain_DetectsSequenceGaps(t *testing.T) {
	require := require.New(t)
	store := &memoryStore{}
	records := testRecords(3)
	store.records = []Record{records[0], records[2]}
	err := VerifyChain(store)
	require.ErrorIs(err, ErrCorruptedRecord)
	require.ErrorContains(err, "expected sequence 1")
}

func TestWriter_SealsAndPersistsRecords(t *testing.T) {
	require := require.New(t)
	store := NewMemoryStore()
	writer, err := NewWriter(store)
	require.NoError(err)

	for i := 0; i < 5; i++ {
		require.NoError(writer.Log(Record{
			Kind:    KindValueDeposited,
			Account: common.Address{1},
			AmountA: amount.New(uint64(i)),
		}))
	}
	next, _ := writer.Head()
	require.Equal(uint64(5), next)

	require.NoError(writer.Flush())
	require.NoError(VerifyChain(store))

	count := 0
	require.NoError(store.Visit(0, func(r Record) error {
		require.Equal(uint64(count), r.Seq)
		count++
		return nil
	}))
	require.Equal(5, count)
	require.NoError(writer.Close())
}

func TestWriter_ResumesChainFromStoreHead(t *testing.T) {
	require := require.New(t)
	store := NewMemoryStore()

	writer, err := NewWriter(store)
	require.NoError(err)
	require.NoError(writer.Log(Record{Kind: KindValueDeposited}))
	require.NoError(writer.Close())

	writer, err = NewWriter(store)
	require.NoError(err)
	next, _ := writer.Head()
	require.Equal(uint64(1), next)
	require.NoError(writer.Log(Record{Kind: KindValueWithdrawn}))
	require.NoError(writer.Close())

	require.NoError(VerifyChain(store))
}

func TestWriter_PersistenceErrorsSurfaceAtFlush(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	injected := fmt.Errorf("disk on fire")
	store.EXPECT().Head().Return(uint64(0), common.Hash{}, nil)
	store.EXPECT().Append(gomock.Any()).Return(injected)
	store.EXPECT().Flush().Return(nil)

	writer, err := NewWriter(store)
	require.NoError(err)
	require.NoError(writer.Log(Record{Kind: KindValueStaked}))
	require.ErrorIs(writer.Flush(), injected)
}
