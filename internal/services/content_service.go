package services

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"tescursos/internal/models/response_models"
	"tescursos/pkg/utils"
)

// moduleMatter is the YAML front matter of a content file.
type moduleMatter struct {
	Title       string `yaml:"title"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Order       int    `yaml:"order"`
}

type ContentServiceInterface interface {
	GetModuleBySlug(slug string) (*response_models.ModuleResponse, error)
	ListModules() ([]response_models.ModuleResponse, error)
}

// ContentService serves course modules from a directory of markdown files.
// Content is authored out-of-band and read-only at runtime.
type ContentService struct {
	dir string
	md  goldmark.Markdown
}

func NewContentService(dir string) ContentServiceInterface {
	return &ContentService{
		dir: dir,
		md:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (s *ContentService) GetModuleBySlug(slug string) (*response_models.ModuleResponse, error) {
	// The slug names a file, never a path.
	if slug == "" || slug != filepath.Base(slug) || strings.HasPrefix(slug, ".") {
		return nil, utils.ErrModuleNotFound
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, slug+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, utils.ErrModuleNotFound
		}
		return nil, err
	}

	module, body, err := s.parse(slug, raw)
	if err != nil {
		return nil, err
	}

	var html bytes.Buffer
	if err := s.md.Convert(body, &html); err != nil {
		return nil, err
	}
	module.Content = html.String()

	return module, nil
}

func (s *ContentService) ListModules() ([]response_models.ModuleResponse, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []response_models.ModuleResponse{}, nil
		}
		return nil, err
	}

	modules := make([]response_models.ModuleResponse, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".md")
		raw, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			log.Printf("reading module %s: %v", slug, err)
			continue
		}
		module, _, err := s.parse(slug, raw)
		if err != nil {
			log.Printf("parsing module %s: %v", slug, err)
			continue
		}
		modules = append(modules, *module)
	}

	sort.Slice(modules, func(i, j int) bool { return modules[i].Order < modules[j].Order })
	return modules, nil
}

func (s *ContentService) parse(slug string, raw []byte) (*response_models.ModuleResponse, []byte, error) {
	var matter moduleMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &matter)
	if err != nil {
		return nil, nil, err
	}

	if matter.Title == "" {
		matter.Title = slug
	}
	if matter.Slug == "" {
		matter.Slug = slug
	}
	if matter.Icon == "" {
		matter.Icon = "📖"
	}

	return &response_models.ModuleResponse{
		Title:       matter.Title,
		Slug:        matter.Slug,
		Description: matter.Description,
		Icon:        matter.Icon,
		Order:       matter.Order,
	}, body, nil
}
