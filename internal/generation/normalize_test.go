package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeResponse(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want string
	}{
		"plain json":        {raw: `{"a":1}`, want: `{"a":1}`},
		"surrounding space": {raw: "  \n{\"a\":1}\n ", want: `{"a":1}`},
		"json fence":        {raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		"bare fence":        {raw: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		"prose around":      {raw: "Sure! Here it is:\n{\"a\":{\"b\":2}}\nEnjoy.", want: `{"a":{"b":2}}`},
		"fence and prose":   {raw: "Here you go:\n```json\n{\"a\":1}\n```\nThanks", want: `{"a":1}`},
		"no braces":         {raw: "  just some prose  ", want: "just some prose"},
		"only open brace":   {raw: "Sure! Here's your thread: {not valid json", want: "Sure! Here's your thread: {not valid json"},
		"reversed braces":   {raw: "} then {", want: "} then {"},
		"empty":             {raw: "", want: ""},
		"fence only":        {raw: "```json\n```", want: ""},
		"upper json fence":  {raw: "```JSON\n{\"a\":1}```", want: `{"a":1}`},
		"word after fence":  {raw: "```Sure here it is", want: "Sure here it is"},
		"jsonish word":      {raw: "```jsonify this", want: "jsonify this"},
		"code in string":    {raw: "{\"content\":\"```go\\nfmt.Println()\\n```\"}", want: "{\"content\":\"go\\nfmt.Println()\\n\"}"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeResponse(tc.raw))
		})
	}
}

func TestNormalizeResponseIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"prose only",
		"```json\n{\"hook\":\"h\"}\n```",
		"before ``` {\"a\": \"```\"} after",
		"`````json {x} ``",
		"} {",
		"{ unterminated",
		"text {\"a\":1} more {\"b\":2} tail",
		"```python\nprint('hi')\n```",
	}

	for _, in := range inputs {
		once := NormalizeResponse(in)
		assert.Equal(t, once, NormalizeResponse(once), "input %q", in)
	}
}
