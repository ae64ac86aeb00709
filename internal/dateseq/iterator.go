package dateseq

import "time"

// iteratorState tracks the iterator's position in its lifecycle.
type iteratorState int

const (
	// statePendingHeader means the header row has not been emitted yet.
	statePendingHeader iteratorState = iota

	// stateIterating means pulls produce dates.
	stateIterating

	// stateFailed means a pull failed; the stream is terminated.
	stateFailed
)

// Iterator is the pull-based unbounded sequence (Mode B).
//
// Each Next call yields exactly one line: the header first when present,
// then one passing date per pull, with filtered dates skipped inside the
// pull. The iterator never terminates on its own - stopping is the
// caller's job (stop pulling, close the downstream pipe, interrupt the
// process). It is not restartable; a fresh sequence needs a fresh
// Iterator.
//
// Not safe for concurrent use: an Iterator belongs to the single caller
// that pulls it.
type Iterator struct {
	req       Request
	inc       Duration
	formatter Formatter

	state   iteratorState
	cursor  time.Time // next candidate to consider
	started bool      // false until the first date pull
	err     error     // sticky failure once state == stateFailed
}

// Iterator creates the lazy sequence for req. Unlike Generate it accepts
// bounded and unbounded requests alike, but the end bound is ignored - the
// caller owns termination.
func (e *Engine) Iterator(req Request) (*Iterator, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	formatter, err := e.formatterFor(&req)
	if err != nil {
		return nil, err
	}

	state := stateIterating
	if req.Header != "" {
		state = statePendingHeader
	}
	return &Iterator{
		req:       req,
		inc:       req.increment(),
		formatter: formatter,
		state:     state,
		cursor:    req.From,
	}, nil
}

// Next produces the next line of the sequence.
//
// The first pull returns the header when one is set, without consuming a
// date. Every date pull advances from the previously returned cursor,
// skipping filtered dates, and formats the first survivor. A formatting
// error fails that pull and every pull after it.
//
// A filter that can never match the step pattern (a Sunday-only filter
// stepped in whole weeks off a Monday) makes Next spin without returning.
func (it *Iterator) Next() (string, error) {
	switch it.state {
	case stateFailed:
		return "", it.err

	case statePendingHeader:
		it.state = stateIterating
		return it.req.Header, nil
	}

	// First date pull starts at From itself; later pulls step off the
	// previously returned cursor.
	if it.started {
		it.cursor = it.inc.step(it.cursor, it.req.Reverse)
	}
	it.started = true

	for !it.req.Filter.Keep(it.cursor) {
		it.cursor = it.inc.step(it.cursor, it.req.Reverse)
	}

	line, err := it.formatter.Format(it.cursor)
	if err != nil {
		it.state = stateFailed
		it.err = err
		return "", err
	}
	return line, nil
}
