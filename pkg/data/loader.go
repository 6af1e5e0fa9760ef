package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var ErrMalformedRecord = errors.New("data: malformed record")

// StreamIrisCSV streams rows of sepalLength,sepalWidth,species through out.
// A header row whose first field is not numeric is skipped. Malformed rows are
// reported to onSkip (may be nil) with their 1-based line number and dropped.
// out is closed when the input is exhausted; close the returned done chan to
// stop early.
func StreamIrisCSV(r io.Reader, out chan<- IrisSample, onSkip func(line int, err error)) (done chan struct{}) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.ReuseRecord = true
	reader.FieldsPerRecord = -1
	done = make(chan struct{})
	skip := func(line int, err error) {
		if onSkip != nil {
			onSkip(line, err)
		}
	}

	go func() {
		defer close(out)
		for line := 1; ; line++ {
			select {
			case <-done:
				return
			default:
			}
			rec, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				skip(line, fmt.Errorf("%w: %v", ErrMalformedRecord, err))
				continue
			}
			if line == 1 && isHeader(rec) {
				continue
			}
			s, err := parseIrisRecord(rec)
			if err != nil {
				skip(line, err)
				continue
			}
			select {
			case out <- s:
			case <-done:
				return
			}
		}
	}()
	return done
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(rec[0], 64)
	return err != nil
}

func parseIrisRecord(rec []string) (IrisSample, error) {
	if len(rec) != 3 {
		return IrisSample{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedRecord, len(rec))
	}
	sl, err := strconv.ParseFloat(rec[0], 64)
	if err != nil {
		return IrisSample{}, fmt.Errorf("%w: sepal length %q", ErrMalformedRecord, rec[0])
	}
	sw, err := strconv.ParseFloat(rec[1], 64)
	if err != nil {
		return IrisSample{}, fmt.Errorf("%w: sepal width %q", ErrMalformedRecord, rec[1])
	}
	sp, err := ParseSpecies(rec[2])
	if err != nil {
		return IrisSample{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return IrisSample{SepalLength: sl, SepalWidth: sw, Species: sp}, nil
}

// ReadIrisCSV loads a whole CSV file. Unlike StreamIrisCSV it is strict: the
// first malformed row fails the load so callers never see a partial table.
func ReadIrisCSV(r io.Reader) ([]IrisSample, error) {
	ch := make(chan IrisSample)
	var firstErr error
	StreamIrisCSV(r, ch, func(line int, err error) {
		if firstErr == nil {
			firstErr = fmt.Errorf("line %d: %w", line, err)
		}
	})
	var out []IrisSample
	for s := range ch {
		out = append(out, s)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedRecord)
	}
	return out, nil
}
