package firecrawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.udemy.com/course/go-bootcamp/", "Udemy"},
		{"https://www.coursera.org/learn/golang", "Coursera"},
		{"https://www.linkedin.com/learning/go-essential", "Linkedin"},
		{"https://www.EDX.org/course/x", "Edx"},
		{"https://example.com/course", "Unknown"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectPlatform(tc.url), "url=%q", tc.url)
	}
}

func TestExtractTitleFromMetadata(t *testing.T) {
	got := ExtractTitle("", "Go: The Complete Guide | Udemy")
	assert.Equal(t, "Go: The Complete Guide", got)
}

func TestExtractTitleFromHeading(t *testing.T) {
	md := "some intro\n\n# Learn Go Fast\n\ncontent"
	assert.Equal(t, "Learn Go Fast", ExtractTitle(md, ""))
}

func TestExtractTitleFallback(t *testing.T) {
	assert.Equal(t, "Untitled Course", ExtractTitle("no headings here", ""))
}
