package changelog

import (
	"time"

	"github.com/gitflow/gitflow-go/internal/git"
)

// Generator produces changelogs from the repository's commit subjects.
// It is a pure transform re-executed fully on every call.
type Generator struct {
	git *git.Client
}

// NewGenerator creates a Generator over the given git client.
func NewGenerator(client *git.Client) *Generator {
	return &Generator{git: client}
}

// Generate builds the changelog, optionally bounded by an absolute since
// date. A failing log query yields the NoCommits sentinel; an empty log
// still renders the document skeleton.
func (g *Generator) Generate(since string) string {
	subjects, ok := g.git.Subjects(since)
	if !ok {
		return NoCommits
	}
	return Render(Group(subjects), time.Now())
}
