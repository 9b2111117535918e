package aql

// Join interpolates values in order, inlining sep verbatim between each
// adjacent pair. The separator defaults to a single space. Join is sugar
// for one Build invocation: classification and bind-name deduplication
// behave exactly as if the values had been interpolated by hand into a
// single template.
//
// An empty list yields the empty query with no bindings; a single value
// yields the same result as interpolating it alone.
func Join(values []any, sep ...string) *GeneratedQuery {
	separator := " "
	if len(sep) > 0 {
		separator = sep[0]
	}
	if len(values) == 0 {
		return Build([]string{""})
	}
	parts := make([]string, len(values)+1)
	for i := 1; i < len(values); i++ {
		parts[i] = separator
	}
	return Build(parts, values...)
}
