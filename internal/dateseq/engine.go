package dateseq

// Engine produces formatted date sequences from resolved requests.
//
// An Engine holds no per-sequence state: every Generate or Iterator call
// owns its cursor exclusively, so one Engine may serve any number of
// independent generations. The only configurable piece is the formatter
// override used by tests to exercise the formatting-error path.
type Engine struct {
	formatter Formatter // nil selects the strftime formatter per request
}

// New creates an engine using strftime formatting.
func New() *Engine {
	return &Engine{}
}

// NewWithFormatter creates an engine that renders every cursor with f
// instead of the request's strftime pattern. Pattern resolution and
// validation are skipped; f owns formatting entirely.
func NewWithFormatter(f Formatter) *Engine {
	return &Engine{formatter: f}
}

// formatterFor resolves the formatter for one request.
func (e *Engine) formatterFor(r *Request) (Formatter, error) {
	if e.formatter != nil {
		return e.formatter, nil
	}
	return newPatternFormatter(r)
}

// Generate eagerly produces the full bounded sequence for req.
//
// The request must be bounded by an end date, a limit, or both (whichever
// fires first stops the walk). Unbounded requests are a configuration
// error; use Iterator for streaming.
//
// The walk per element: stop if the cursor crossed the end bound (forward
// excludes To, reverse includes it), emit if the business filter keeps the
// cursor, stop once emitted rows reach the limit, then step. The header,
// when present, is the first row, bypasses the filter, and counts against
// the limit. On any error the whole call fails with no partial result.
//
// A limit-only request whose filter can never match the step pattern (a
// Sunday-only filter stepped in whole weeks off a Monday) never reaches its
// limit and never returns. Such requests need an end date as the bound.
func (e *Engine) Generate(req Request) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.Bounded() {
		return nil, &ConfigError{
			Code:    ErrCodeUnboundedRequest,
			Message: "neither end date nor limit set; use Iterator for unbounded sequences",
		}
	}
	formatter, err := e.formatterFor(&req)
	if err != nil {
		return nil, err
	}

	var out []string
	if req.Header != "" {
		out = append(out, req.Header)
		if req.Limit > 0 && len(out) >= req.Limit {
			return out, nil
		}
	}

	inc := req.increment()
	for cursor := req.From; !req.pastEnd(cursor); cursor = inc.step(cursor, req.Reverse) {
		if !req.Filter.Keep(cursor) {
			continue
		}
		line, err := formatter.Format(cursor)
		if err != nil {
			return nil, err
		}
		out = append(out, line)
		if req.Limit > 0 && len(out) >= req.Limit {
			break
		}
	}
	return out, nil
}
