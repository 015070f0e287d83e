package archive

import (
	"context"
	"fmt"
	"sync"

	"github.com/archiveinsight/backend/internal/domain"
)

// MemoryArchive is an in-process project archive. Reads hand out deep copies
// so a caller's snapshot is unaffected by later writes.
type MemoryArchive struct {
	mu       sync.RWMutex
	projects []domain.ArchivedProject
}

// NewMemoryArchive creates an archive holding projects in the given order
func NewMemoryArchive(projects []domain.ArchivedProject) *MemoryArchive {
	a := &MemoryArchive{}
	for _, p := range projects {
		a.projects = append(a.projects, cloneProject(p))
	}
	return a
}

// NewSeededMemoryArchive creates an archive holding the reference projects
func NewSeededMemoryArchive() *MemoryArchive {
	return NewMemoryArchive(SeedProjects())
}

// List returns a snapshot of all projects in archive order
func (a *MemoryArchive) List(ctx context.Context) ([]domain.ArchivedProject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]domain.ArchivedProject, 0, len(a.projects))
	for _, p := range a.projects {
		out = append(out, cloneProject(p))
	}
	return out, nil
}

// Get returns one project by id
func (a *MemoryArchive) Get(ctx context.Context, id string) (*domain.ArchivedProject, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, p := range a.projects {
		if p.ID == id {
			found := cloneProject(p)
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
}

// Upsert replaces the project with the same id in place, or appends it
func (a *MemoryArchive) Upsert(ctx context.Context, project domain.ArchivedProject) error {
	if project.ID == "" {
		return fmt.Errorf("%w: project id is required", domain.ErrInvalidProject)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for i, p := range a.projects {
		if p.ID == project.ID {
			a.projects[i] = cloneProject(project)
			return nil
		}
	}
	a.projects = append(a.projects, cloneProject(project))
	return nil
}

// Close is a no-op; it lets MemoryArchive stand in for a persistent Store
func (a *MemoryArchive) Close() error {
	return nil
}

func cloneProject(p domain.ArchivedProject) domain.ArchivedProject {
	p.Technologies = cloneStrings(p.Technologies)
	p.Keywords = cloneStrings(p.Keywords)
	return p
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
