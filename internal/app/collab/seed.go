package collab

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
)

type seedFile struct {
	Projects []seedProject `yaml:"projects"`
}

type seedUser struct {
	ID           string `yaml:"id"`
	FullName     string `yaml:"full_name"`
	University   string `yaml:"university"`
	UniversityID string `yaml:"university_id"`
	Course       int    `yaml:"course"`
	Group        string `yaml:"group"`
}

type seedRole struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	RequiredCount int    `yaml:"required_count"`
}

type seedParticipant struct {
	UserID string `yaml:"user_id"`
	RoleID string `yaml:"role_id"`
}

type seedProject struct {
	ID                  string            `yaml:"id"`
	Title               string            `yaml:"title"`
	Description         string            `yaml:"description"`
	Tags                []string          `yaml:"tags"`
	Leader              seedUser          `yaml:"leader"`
	LeaderRoleID        string            `yaml:"leader_role_id"`
	Visibility          string            `yaml:"visibility"`
	AllowedUniversities []string          `yaml:"allowed_universities"`
	MinCourse           *int              `yaml:"min_course"`
	MaxCourse           *int              `yaml:"max_course"`
	Roles               []seedRole        `yaml:"roles"`
	Participants        []seedParticipant `yaml:"participants"`
	CreatedAt           time.Time         `yaml:"created_at"`
	UpdatedAt           time.Time         `yaml:"updated_at"`
}

// LoadSeedFile reads demo projects from a YAML file. An empty path yields no
// seeds.
func LoadSeedFile(path string) ([]project.Project, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes seed YAML. Fill counts are derived from participants and
// every project must pass project.Validate.
func ParseSeed(data []byte) ([]project.Project, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f seedFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding seed projects: %w", err)
	}

	out := make([]project.Project, 0, len(f.Projects))
	for i, sp := range f.Projects {
		p := sp.toDomain()
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("seed project %d (%s): %w", i, sp.ID, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (sp seedProject) toDomain() project.Project {
	leader := project.UserSnapshot(sp.Leader)

	roles := make([]project.Role, 0, len(sp.Roles))
	for _, r := range sp.Roles {
		roles = append(roles, project.Role{ID: r.ID, Name: r.Name, RequiredCount: max(1, r.RequiredCount)})
	}
	parts := make([]project.Participant, 0, len(sp.Participants))
	for _, part := range sp.Participants {
		parts = append(parts, project.Participant(part))
	}

	visibility := project.Visibility(sp.Visibility)
	if visibility == "" {
		visibility = project.VisibilityOpen
	}

	p := project.Project{
		ID:                  sp.ID,
		Title:               sp.Title,
		Description:         sp.Description,
		Tags:                sp.Tags,
		Leader:              leader,
		LeaderRoleID:        sp.LeaderRoleID,
		Roles:               roles,
		Visibility:          visibility,
		AllowedUniversities: sp.AllowedUniversities,
		MinCourse:           sp.MinCourse,
		MaxCourse:           sp.MaxCourse,
		Participants:        parts,
		PendingRequests:     []project.Request{},
		CreatedAt:           sp.CreatedAt,
		UpdatedAt:           sp.UpdatedAt,
	}
	p.RecountRoles()
	return p
}
