package parser

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// blockSelector lists the elements whose text becomes one line of output.
const blockSelector = "h1,h2,h3,h4,h5,h6,p,li,blockquote,pre,td,th"

type Parser struct{}

// Document is the readable text of an HTML page.
type Document struct {
	Title string
	Lines []string
}

// Text joins the document lines with newlines.
func (d *Document) Text() string {
	return strings.Join(d.Lines, "\n")
}

// ExtractText uses go-readability to find the main article content, then
// walks it with goquery to produce one line of text per block element.
// If readability finds nothing usable, the whole page body is used instead.
func (p *Parser) ExtractText(rawURL, html string) (*Document, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid document URL: %w", err)
	}

	content := html
	var title string
	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		content = article.Content
		title = normalizeText(article.Title)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	if title == "" {
		title = normalizeText(doc.Find("title").First().Text())
	}

	var lines []string
	doc.Find(blockSelector).Each(func(i int, s *goquery.Selection) {
		// nested blocks (li > p) are picked up by their innermost element
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		if text := normalizeText(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		doc.Find("script,style,noscript").Remove()
		if text := normalizeText(doc.Text()); text != "" {
			lines = append(lines, text)
		}
	}

	return &Document{Title: title, Lines: lines}, nil
}

// IsHTMLPath reports whether a file name looks like an HTML document.
func IsHTMLPath(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}

// normalizeText collapses every run of whitespace, newlines included, into a
// single space and trims the ends.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
