package filter

import (
	"maps"
	"net/url"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// BodyVariable names the whole decoded response inside an expression.
// Top-level keys of object responses are also exposed as variables.
const BodyVariable = "body"

// exprProjection implements Projection using the expr language
type exprProjection struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables projection caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based projection compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements CachingCompiler for expr-based projections
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// Compile compiles an expression into a projection
func (c *exprCompiler) Compile(expression string) (Projection, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(), // Response fields are only known at run time
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	projection := &exprProjection{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, projection)
	}

	return projection, nil
}

// Clear removes all cached projections
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached projections
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Apply evaluates the projection against a decoded response
func (p *exprProjection) Apply(data any) (any, error) {
	result, err := expr.Run(p.program, createRuntimeEnvironment(data, p.helpers))
	if err != nil {
		return nil, &EvaluationError{Expression: p.expression, Err: err}
	}
	return result, nil
}

// Expression returns the original expression
func (p *exprProjection) Expression() string {
	return p.expression
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 8)

	// URL helpers
	funcs["domainOf"] = func(raw string) string {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return ""
		}
		return strings.TrimPrefix(u.Hostname(), "www.")
	}
	funcs["pathOf"] = func(raw string) string {
		u, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		return u.Path
	}
	funcs["queryParam"] = func(raw, key string) string {
		u, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		return u.Query().Get(key)
	}
	// Case-insensitive match, common for comparing SERP titles
	funcs["sameText"] = func(a, b string) bool {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}

	return funcs
}

// createRuntimeEnvironment exposes the response body and its top-level keys
func createRuntimeEnvironment(data any, helpers map[string]any) map[string]any {
	obj, _ := data.(map[string]any)

	env := make(map[string]any, len(helpers)+len(obj)+1)
	for k, v := range obj {
		env[k] = v
	}
	// Helpers win over response keys of the same name
	maps.Copy(env, helpers)
	env[BodyVariable] = data

	return env
}
