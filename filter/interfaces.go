package filter

// Projection transforms a decoded API response into the value to display
type Projection interface {
	// Apply evaluates the projection against a decoded response body
	Apply(data any) (any, error)

	// Expression returns the original expression
	Expression() string
}

// Compiler compiles expressions into projections
type Compiler interface {
	// Compile parses and compiles an expression
	Compile(expression string) (Projection, error)
}

// CachingCompiler provides caching for compiled projections
type CachingCompiler interface {
	Compiler

	// Clear removes all cached projections
	Clear()

	// Size returns the number of cached projections
	Size() int
}
