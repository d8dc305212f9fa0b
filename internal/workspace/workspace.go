// Package workspace lays out the on-disk home for graded proposals: one
// project directory per proposal holding the source file, its version
// history database, and the latest score report.
package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const BaseDirName = "ProposalGrader"

func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "projects"),
	}
	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}
	return base, nil
}

// ConfigPath is where the optional grader.yaml override file lives.
func ConfigPath(base string) string {
	return filepath.Join(base, "configs", "grader.yaml")
}

type ProjectInfo struct {
	ID          string
	Root        string
	SourcePath  string
	HistoryPath string
	ReportPath  string
}

// CreateProject initializes (or reopens) the project directory for one
// proposal title and writes the source bytes when provided.
func CreateProject(workspaceRoot, title, sourceFileName string, source []byte) (*ProjectInfo, error) {
	id := titleHash(title)
	projectRoot := filepath.Join(workspaceRoot, "projects", id)
	if err := os.MkdirAll(projectRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create project dir: %w", err)
	}

	sourcePath := filepath.Join(projectRoot, sanitizeSourceName(sourceFileName))
	if len(source) > 0 {
		if err := os.WriteFile(sourcePath, source, 0o644); err != nil {
			return nil, fmt.Errorf("write source file: %w", err)
		}
	}

	return &ProjectInfo{
		ID:          id,
		Root:        projectRoot,
		SourcePath:  sourcePath,
		HistoryPath: filepath.Join(projectRoot, "history.db"),
		ReportPath:  filepath.Join(projectRoot, "report.json"),
	}, nil
}

func titleHash(title string) string {
	trimmed := strings.TrimSpace(strings.ToLower(title))
	sum := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(sum[:])[:12]
}

func sanitizeSourceName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "source.md"
	}
	return strings.ReplaceAll(base, "..", "")
}
