// Package parsing - html.go extracts line-oriented text from a saved profile
// HTML page so it can be fed to the same heuristic scanner as a manual paste.
package parsing

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector lists elements whose boundaries become line breaks so that
// the scanner sees one logical item per line.
const blockSelector = "p, li, h1, h2, h3, h4, h5, h6, dt, dd, td, section, article, div"

// ExtractText parses profile page HTML and returns its visible text with one
// trimmed line per block element, the form Parse expects.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Remove common unwanted elements (nav, footer, scripts, ads, etc.)
	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	doc.Find("br").ReplaceWithHtml("\n")

	body := doc.Find("body")
	if body.Length() == 0 {
		return cleanLines(doc.Text()), nil
	}

	var sb strings.Builder
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, node *goquery.Selection) {
			if node.Is(blockSelector) {
				sb.WriteString("\n")
				walk(node)
				sb.WriteString("\n")
				return
			}
			if goquery.NodeName(node) == "#text" {
				sb.WriteString(node.Text())
				return
			}
			walk(node)
		})
	}
	walk(body)

	return cleanLines(sb.String()), nil
}

// cleanLines trims every line, collapses runs of inner whitespace, and drops
// empty lines.
func cleanLines(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
