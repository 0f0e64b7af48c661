package vault

import (
	"context"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Source yields the markdown documents an index is built from.
type Source interface {
	Documents(ctx context.Context) (map[string]string, error)
}

// wikilinkRe captures the target of [[target]], [[target|label]] and
// [[target#heading]] links, which live outside the markdown AST.
var wikilinkRe = regexp.MustCompile(`\[\[([^\]|#]+)`)

// Index answers "which documents reference this one". Targets are
// matched by full vault path, by bare note name, and by frontmatter
// aliases. The index is a point-in-time snapshot; rebuild after edits.
type Index struct {
	// referrers maps a document path to the set of documents that
	// link to it.
	referrers map[string]map[string]struct{}
}

// BuildIndex scans every document in src and records its outgoing
// links.
func BuildIndex(ctx context.Context, src Source) (*Index, error) {
	docs, err := src.Documents(ctx)
	if err != nil {
		return nil, err
	}

	// Map every name a document can be linked by to its path.
	byName := make(map[string]string)
	for docPath, content := range docs {
		byName[docPath] = docPath
		base := strings.TrimSuffix(path.Base(docPath), path.Ext(docPath))
		byName[strings.ToLower(base)] = docPath
		for _, alias := range frontmatterAliases(content) {
			byName[strings.ToLower(alias)] = docPath
		}
	}

	idx := &Index{referrers: make(map[string]map[string]struct{})}
	for docPath, content := range docs {
		for _, target := range extractLinkTargets(content) {
			resolved, ok := resolveTarget(byName, target)
			if !ok || resolved == docPath {
				continue
			}
			if idx.referrers[resolved] == nil {
				idx.referrers[resolved] = make(map[string]struct{})
			}
			idx.referrers[resolved][docPath] = struct{}{}
		}
	}
	return idx, nil
}

// Referencing returns the sorted paths of documents that link to
// docPath.
func (idx *Index) Referencing(docPath string) []string {
	set := idx.referrers[docPath]
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// resolveTarget maps a link target to a document path, trying the
// verbatim path first and falling back to the bare name.
func resolveTarget(byName map[string]string, target string) (string, bool) {
	target = strings.TrimSpace(target)
	if p, ok := byName[target]; ok {
		return p, true
	}
	if p, ok := byName[strings.ToLower(target)]; ok {
		return p, true
	}
	base := strings.TrimSuffix(target, path.Ext(target))
	p, ok := byName[strings.ToLower(base)]
	return p, ok
}

// extractLinkTargets collects the destinations of markdown links via
// the goldmark AST, plus wikilink targets which goldmark does not
// parse.
func extractLinkTargets(content string) []string {
	source := []byte(content)
	var targets []string

	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Link:
			targets = append(targets, string(n.Destination))
		case *ast.Image:
			targets = append(targets, string(n.Destination))
		}
		return ast.WalkContinue, nil
	})

	for _, m := range wikilinkRe.FindAllStringSubmatch(content, -1) {
		targets = append(targets, m[1])
	}
	return targets
}

// frontmatterAliases parses the YAML frontmatter block at the top of
// content and returns its aliases, if any.
func frontmatterAliases(content string) []string {
	body, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		return nil
	}
	end := strings.Index(body, "\n---")
	if end < 0 {
		return nil
	}

	var fm struct {
		Aliases []string `yaml:"aliases"`
	}
	if err := yaml.Unmarshal([]byte(body[:end]), &fm); err != nil {
		return nil
	}
	return fm.Aliases
}
