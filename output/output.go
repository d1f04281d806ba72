// Package output renders FetchSERP response payloads for the terminal.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"gopkg.in/yaml.v3"
)

// Format selects how a payload is written
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatRaw      Format = "raw"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// ErrUnknownFormat is returned for formats other than the Format constants
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists every supported format
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatRaw, FormatMarkdown, FormatText}
}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Render writes v to w in the given format.
//
// Markdown and text convert HTML strings, either v itself or any string
// nested inside maps and slices, before writing. Non-string payloads are
// then written as indented JSON.
func Render(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON, "":
		return writeJSON(w, v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatRaw:
		if s, ok := v.(string); ok {
			return writeLine(w, s)
		}
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return writeLine(w, string(data))
	case FormatMarkdown:
		return renderConverted(w, v, htmlToMarkdown)
	case FormatText:
		return renderConverted(w, v, htmlToText)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderConverted(w io.Writer, v any, convert func(string) (string, error)) error {
	converted, err := convertHTML(v, convert)
	if err != nil {
		return err
	}
	if s, ok := converted.(string); ok {
		return writeLine(w, s)
	}
	return writeJSON(w, converted)
}

// convertHTML walks decoded JSON and converts strings that look like HTML
func convertHTML(v any, convert func(string) (string, error)) (any, error) {
	switch t := v.(type) {
	case string:
		if !looksLikeHTML(t) {
			return t, nil
		}
		return convert(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			c, err := convertHTML(item, convert)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			c, err := convertHTML(item, convert)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	default:
		return v, nil
	}
}

func looksLikeHTML(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">")
}

func htmlToMarkdown(html string) (string, error) {
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert html to markdown: %w", err)
	}
	return strings.TrimSpace(md), nil
}

func htmlToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	lines := strings.Split(doc.Text(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), nil
}

func writeJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeLine(w io.Writer, s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}
