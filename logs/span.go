package logs

// Span identifies one unit of work, usually a machine run, across log records.
type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanOf(ctx interface{ Value(any) any }) Span {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span)
	}
	return ""
}
