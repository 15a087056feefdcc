package queryerr

// UnsupportedLanguage reports that path carries no registered grammar.
func UnsupportedLanguage(path string) *Error {
	return New(KindUnsupportedLanguage, "no registered language for "+path)
}

// ParsePartial reports that path parsed with one or more ERROR nodes but
// indexing continued on the recoverable portion of the tree.
func ParsePartial(path string) *Error {
	return New(KindParsePartial, "parsed with errors, results may be incomplete: "+path)
}

// UnresolvedSymbol reports that name could not be attributed to any
// Definition.
func UnresolvedSymbol(name string) *Error {
	return New(KindUnresolvedSymbol, "could not resolve symbol: "+name)
}

// AmbiguousSymbol reports that name matched more than one candidate and the
// tie-break rules could not narrow it to one.
func AmbiguousSymbol(name string) *Error {
	return New(KindAmbiguousSymbol, "symbol is ambiguous: "+name)
}

// NotFound reports that entity does not exist in the current snapshot.
func NotFound(entity string) *Error {
	return New(KindNotFound, entity+" not found")
}

// Timeout reports that a query's context deadline elapsed before it
// completed.
func Timeout(operation string) *Error {
	return New(KindTimeout, operation+" timed out")
}

// Internal wraps an unexpected failure. The caller should roll back
// whatever batch or query produced it and log at slog.Error.
func Internal(cause error) *Error {
	return Wrap(KindInternal, "internal error", cause)
}
