package scaffold

import (
	"bytes"
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	gitignore "github.com/monochromegane/go-gitignore"
	"github.com/pkg/errors"
	"github.com/teamgen/cli/configs"
	"github.com/teamgen/cli/entity"
	teamerrors "github.com/teamgen/cli/errors"
)

//go:embed all:templates
var templates embed.FS

const (
	templateSuffix = ".tmpl"
	nameSegment    = "__name__"
	packageSegment = "__package__"
)

// targetIgnores drops what the deployment target does not use, in gitignore
// syntax relative to the application root.
var targetIgnores = map[string]string{
	entity.TargetDocker: "templates/\nparameters.xml\n",
	entity.TargetPaaS:   "Dockerfile\n",
}

type Request struct {
	Type        string
	Name        string
	GroupID     string
	Target      string
	DockerPorts string
	Force       bool
}

type Result struct {
	Dir     string
	Written []string
	Skipped []string
}

// Tokens are the values available to .tmpl files.
type Tokens struct {
	Name          string
	NameLowercase string
	GroupID       string
	Namespace     string
	DockerPorts   string
	ContainerPort string
}

func NewTokens(req *Request) *Tokens {
	ports := configs.Reconcile(req.DockerPorts, configs.DefaultPortMapping(req.Type))
	containerPort := ports
	if i := strings.LastIndex(ports, ":"); i >= 0 {
		containerPort = ports[i+1:]
	}
	namespace := req.Name
	if req.GroupID != "" {
		namespace = req.GroupID + "." + req.Name
	}
	return &Tokens{
		Name:          req.Name,
		NameLowercase: strings.ToLower(req.Name),
		GroupID:       req.GroupID,
		Namespace:     namespace,
		DockerPorts:   ports,
		ContainerPort: containerPort,
	}
}

// Generate writes the skeleton of req.Type into dst/req.Name. Files that
// already exist are left alone unless req.Force is set.
func Generate(dst string, req *Request) (*Result, error) {
	switch req.Type {
	case entity.TypeASP, entity.TypeNode, entity.TypeJava:
	default:
		return nil, teamerrors.UnknownApplicationType
	}
	if req.Name == "" {
		return nil, teamerrors.MissingAnswer("applicationName")
	}
	if req.Name == "." || req.Name == ".." || strings.ContainsAny(req.Name, `/\`) {
		return nil, teamerrors.InvalidApplicationName
	}

	tokens := NewTokens(req)
	ignore := gitignore.NewGitIgnoreFromReader(".", strings.NewReader(targetIgnores[req.Target]))
	root := path.Join("templates", req.Type)
	result := &Result{Dir: filepath.Join(dst, req.Name)}

	err := fs.WalkDir(templates, root, func(src string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if src == root {
			return nil
		}
		rel := outputPath(strings.TrimPrefix(src, root+"/"), tokens)
		if ignore.Match(rel, d.IsDir()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		target := filepath.Join(result.Dir, filepath.FromSlash(rel))
		if _, err := os.Stat(target); err == nil && !req.Force {
			result.Skipped = append(result.Skipped, rel)
			return nil
		}

		content, err := render(src, tokens)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", rel)
		}
		result.Written = append(result.Written, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// outputPath maps a template path to where it is written: placeholders are
// substituted, the .tmpl suffix is dropped and gitignore becomes .gitignore.
func outputPath(rel string, tokens *Tokens) string {
	rel = strings.ReplaceAll(rel, packageSegment, strings.ReplaceAll(tokens.GroupID, ".", "/"))
	rel = strings.ReplaceAll(rel, nameSegment, tokens.Name)
	rel = strings.TrimSuffix(rel, templateSuffix)
	if path.Base(rel) == "gitignore" {
		rel = path.Join(path.Dir(rel), ".gitignore")
	}
	return path.Clean(rel)
}

func render(src string, tokens *Tokens) ([]byte, error) {
	b, err := templates.ReadFile(src)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(src, templateSuffix) {
		return b, nil
	}

	tmpl, err := template.New(path.Base(src)).Delims("<%=", "%>").Option("missingkey=error").Parse(string(b))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", src)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, tokens); err != nil {
		return nil, errors.Wrapf(err, "rendering %s", src)
	}
	return buf.Bytes(), nil
}
