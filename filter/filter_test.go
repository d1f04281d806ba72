package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serpBody() map[string]any {
	return map[string]any{
		"data": map[string]any{
			"results_count": 2.0,
			"results": []any{
				map[string]any{"title": "Coffee", "url": "https://www.example.com/coffee?ref=a", "ranking": 1.0},
				map[string]any{"title": "Tea", "url": "https://shop.example.org/tea", "ranking": 2.0},
			},
		},
	}
}

func TestProjection(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       any
	}{
		{
			name:       "top level key",
			expression: "data.results_count",
			want:       2.0,
		},
		{
			name:       "map titles",
			expression: "map(data.results, .title)",
			want:       []any{"Coffee", "Tea"},
		},
		{
			name:       "domain helper",
			expression: "map(data.results, domainOf(.url))",
			want:       []any{"example.com", "shop.example.org"},
		},
		{
			name:       "path helper",
			expression: "pathOf(data.results[1].url)",
			want:       "/tea",
		},
		{
			name:       "query helper",
			expression: "queryParam(data.results[0].url, 'ref')",
			want:       "a",
		},
		{
			name:       "filter by ranking",
			expression: "map(filter(data.results, .ranking > 1), .title)",
			want:       []any{"Tea"},
		},
		{
			name:       "whole body",
			expression: "len(body.data.results)",
			want:       2,
		},
		{
			name:       "case insensitive compare",
			expression: "sameText(data.results[0].title, ' coffee ')",
			want:       true,
		},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := compiler.Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.expression, p.Expression())

			got, err := p.Apply(serpBody())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProjectionOnNonObjectBody(t *testing.T) {
	p, err := NewExprCompiler().Compile("body")
	require.NoError(t, err)

	got, err := p.Apply("<html></html>")
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", got)
}

func TestCompileErrors(t *testing.T) {
	compiler := NewExprCompiler()

	_, err := compiler.Compile("   ")
	var compErr *CompilationError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "empty expression", compErr.Reason)

	_, err = compiler.Compile("map(data.results,")
	require.ErrorAs(t, err, &compErr)
	assert.NotNil(t, compErr.Err)
	assert.Contains(t, err.Error(), "map(data.results,")
}

func TestEvaluationError(t *testing.T) {
	p, err := NewExprCompiler().Compile("domainOf(data)")
	require.NoError(t, err)

	_, err = p.Apply(map[string]any{"data": 1.0})
	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "domainOf(data)", evalErr.Expression)
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"twice": func(s string) string { return s + s },
	}))

	p, err := compiler.Compile("twice(data.results[1].title)")
	require.NoError(t, err)

	got, err := p.Apply(serpBody())
	require.NoError(t, err)
	assert.Equal(t, "TeaTea", got)
}

func TestCompilerCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile("data")
	require.NoError(t, err)
	again, err := compiler.Compile(" data ")
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, 1, compiler.Size())

	_, err = compiler.Compile("body")
	require.NoError(t, err)
	_, err = compiler.Compile("len(body)")
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.Size())

	// "data" was least recently used and is evicted
	evicted, err := compiler.Compile("data")
	require.NoError(t, err)
	assert.NotSame(t, first, evicted)

	compiler.Clear()
	assert.Equal(t, 0, compiler.Size())
}

func TestCompilerWithoutCache(t *testing.T) {
	compiler := NewExprCompiler()
	_, err := compiler.Compile("data")
	require.NoError(t, err)
	assert.Equal(t, 0, compiler.Size())
}
