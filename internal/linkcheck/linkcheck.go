// Package linkcheck verifies that internal references in the rendered site
// resolve to files in the output tree.
package linkcheck

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Issue is one unresolvable internal reference.
type Issue struct {
	Page        string // output-relative path of the page holding the link
	Destination string // the href/src as written
}

// VerifyDir parses every HTML file under outputDir and checks its internal
// anchors, images and stylesheet links against the output tree.
func VerifyDir(outputDir string) ([]Issue, error) {
	var issues []Issue

	err := filepath.WalkDir(outputDir, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			return nil
		}

		rel, err := filepath.Rel(outputDir, p)
		if err != nil {
			return err
		}

		refs, err := extractRefs(p)
		if err != nil {
			return fmt.Errorf("parse %s: %w", rel, err)
		}
		for _, ref := range refs {
			if !isInternal(ref) {
				continue
			}
			if !resolves(outputDir, rel, ref) {
				issues = append(issues, Issue{Page: rel, Destination: ref})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// extractRefs collects href/src attributes from one HTML file.
func extractRefs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, err
	}

	var refs []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			var attr string
			switch n.Data {
			case "a", "link":
				attr = "href"
			case "img", "script":
				attr = "src"
			}
			if attr != "" {
				for _, a := range n.Attr {
					if a.Key == attr && a.Val != "" {
						refs = append(refs, a.Val)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return refs, nil
}

func isInternal(ref string) bool {
	if strings.HasPrefix(ref, "#") {
		return false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

// resolves reports whether ref, found in page (output-relative), points at
// an existing file. Directory-style URLs resolve through index.html.
func resolves(outputDir, page, ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	target := u.Path
	if target == "" {
		return true // pure fragment or query
	}

	var relTarget string
	if strings.HasPrefix(target, "/") {
		relTarget = strings.TrimPrefix(target, "/")
	} else {
		relTarget = path.Join(path.Dir(filepath.ToSlash(page)), target)
	}

	full := filepath.Join(outputDir, filepath.FromSlash(relTarget))
	if st, err := os.Stat(full); err == nil {
		if !st.IsDir() {
			return true
		}
		_, err := os.Stat(filepath.Join(full, "index.html"))
		return err == nil
	}
	// "/proxy/" style with the trailing slash trimmed by path.Join is
	// handled above; a bare "/proxy" still counts when the directory with
	// an index exists.
	_, err = os.Stat(filepath.Join(full, "index.html"))
	return err == nil
}
