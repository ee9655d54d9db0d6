package config

import (
	"fmt"
	"os"
)

const starterConfig = `# patternbook site configuration
site:
  title: "Design Patterns"
  author: "Your Name"
  description: "Short lectures on the classic object-oriented design patterns"
  # base_url: "https://example.github.io/patternbook"

content:
  directory: lectures

output:
  directory: ./site
  clean: true

build:
  drafts: false
  lastmod_from_git: true
  cache_path: .patternbook/cache.db

serve:
  addr: ":8080"
  metrics: false
  # rebuild_every: 30m

# redirects:
#   - from: /factory/
#     to: /factory-method/
`

// WriteStarter writes a commented starter configuration file. It refuses to
// overwrite an existing file unless force is set.
func WriteStarter(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write starter config: %w", err)
	}
	return nil
}
