package tile

import (
	"errors"
	"iter"
)

var errVisitCancelled = errors.New("visit cancelled")

// IterTiles returns an iterator over all records in the snapshot.
// It yields tile indices and records. Iteration may panic on unrecoverable errors.
func IterTiles(r Visitor) iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		err := r.VisitTiles(func(record Record) error {
			if !yield(record.Index, record) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && err != errVisitCancelled {
			panic(err)
		}
	}
}

// ReadAll collects all records of the snapshot in visiting order.
func ReadAll(r Visitor) ([]Record, error) {
	records := make([]Record, 0)
	err := r.VisitTiles(func(record Record) error {
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
