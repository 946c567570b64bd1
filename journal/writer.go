package journal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/0xsoniclabs/tracy"

	"github.com/jjquek/custodia/common"
	"github.com/jjquek/custodia/common/future"
)

// Writer sequences and seals records and hands them to a backing
// store through a background worker, so that emitting a notification
// does not block the emitting operation on store latency. Persistence
// errors are collected and surfaced at the next Flush or Close.
type Writer struct {
	store Store

	lock   sync.Mutex
	next   uint64      // < sequence number of the next record
	parent common.Hash // < digest of the last sealed record

	commands chan<- command  // < commands to background worker
	done     <-chan struct{} // < closed when background work is done
}

type command struct {
	record *Record
	sync   future.Promise[error]
}

// NewWriter creates a writer on top of the given store, resuming the
// sequence and digest chain from the store's current head.
func NewWriter(store Store) (*Writer, error) {
	next, parent, err := store.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to read journal head: %w", err)
	}

	commands := make(chan command, 1024)
	done := make(chan struct{})

	go func() {
		defer close(done)
		var issues []error
		extraIssues := 0
		for command := range commands {
			if command.record != nil {
				zone := tracy.ZoneBegin("journal::append")
				err := store.Append(*command.record)
				zone.End()
				if err != nil {
					if len(issues) < 10 {
						issues = append(issues, fmt.Errorf("record %d: %w", command.record.Seq, err))
					} else {
						extraIssues++
					}
				}
			} else {
				if extraIssues > 0 {
					issues = append(issues, fmt.Errorf("%d additional errors truncated", extraIssues))
					extraIssues = 0
				}
				command.sync.Fulfill(errors.Join(issues...))
				issues = issues[:0]
			}
		}
	}()

	return &Writer{
		store:    store,
		next:     next,
		parent:   parent,
		commands: commands,
		done:     done,
	}, nil
}

// Log seals the given record -- assigning its sequence number and
// chain digest -- and schedules it for persistence. The record's Seq
// and Digest fields are ignored on input.
func (w *Writer) Log(record Record) error {
	w.lock.Lock()
	defer w.lock.Unlock()
	record.Seq = w.next
	if err := Seal(&record, w.parent); err != nil {
		return err
	}
	w.next++
	w.parent = record.Digest
	w.commands <- command{record: &record}
	return nil
}

// Head returns the sequence number of the next record and the digest
// of the last sealed record, including records not yet persisted.
func (w *Writer) Head() (uint64, common.Hash) {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.next, w.parent
}

func (w *Writer) sync() error {
	promise, result := future.Create[error]()
	w.commands <- command{sync: promise}
	return result.Await()
}

// Flush blocks until all scheduled records have been handed to the
// store and reports any persistence errors encountered since the last
// flush.
func (w *Writer) Flush() error {
	return errors.Join(
		w.sync(),
		w.store.Flush(),
	)
}

// Close flushes the writer and closes the underlying store.
func (w *Writer) Close() error {
	err := w.sync()
	w.lock.Lock()
	defer w.lock.Unlock()
	close(w.commands)
	<-w.done
	return errors.Join(err, w.store.Close())
}
