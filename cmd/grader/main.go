package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"proposal_grader/internal/config"
	"proposal_grader/internal/history"
	"proposal_grader/internal/ingest"
	"proposal_grader/internal/pipeline"
	"proposal_grader/internal/report"
	"proposal_grader/internal/rubric"
	"proposal_grader/internal/runlog"
	"proposal_grader/internal/workspace"
)

func main() {
	var (
		workers  = flag.Int("workers", 0, "parallel grading workers (0 = config default)")
		save     = flag.Bool("save", false, "persist each file as a proposal version in the workspace")
		markdown = flag.Bool("md", false, "print the full markdown report instead of the one-line summary")
		wsPath   = flag.String("workspace", "", "workspace directory (default ~/ProposalGrader)")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: grader [flags] proposal.md [more files...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	root, err := resolveWorkspace(*wsPath)
	if err != nil {
		log.Fatalf("workspace initialization failed: %v", err)
	}
	cfg, err := config.Load(workspace.ConfigPath(root))
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	docs := make([]ingest.Document, 0, flag.NArg())
	for _, path := range flag.Args() {
		doc, err := ingest.ParseFile(path)
		if err != nil {
			log.Fatalf("parse %s: %v", path, err)
		}
		docs = append(docs, *doc)
	}

	rl := runlog.New(cfg.Trace)
	var mu sync.Mutex
	errs := pipeline.GradeDocuments(docs, cfg.Workers, func(doc ingest.Document) error {
		rl.Log("INFO", "SCORE", "grading started",
			fmt.Sprintf("file=%s bytes=%d", doc.SourcePath, len(doc.SourceBytes)))
		score := rubric.Score(doc.Text)
		rl.Log("INFO", "SCORE", "grading completed",
			fmt.Sprintf("file=%s total=%d slop=%d severity=%s", doc.SourcePath,
				score.TotalScore, score.Slop.Score, score.Slop.Severity))
		summary := report.Build(doc.Title, doc.Text, score)

		if *save {
			if err := persist(root, doc, summary, cfg.HTMLReport); err != nil {
				return fmt.Errorf("persist %s: %w", doc.SourcePath, err)
			}
		}

		mu.Lock()
		defer mu.Unlock()
		if *markdown {
			fmt.Println(report.Markdown(summary))
		} else {
			fmt.Printf("%-40s %3d/100  slop %2d/%d (%s)  penalty -%d\n",
				doc.Title, score.TotalScore, score.Slop.Score, score.Slop.MaxScore,
				score.Slop.Severity, score.Penalty.Points)
		}
		return nil
	})

	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "grading error: %v\n", err)
	}
	if len(errs) > 0 {
		os.Exit(1)
	}
}

func resolveWorkspace(override string) (string, error) {
	if override == "" {
		override = os.Getenv("GRADER_WORKSPACE")
	}
	if override != "" {
		return workspace.EnsureAt(override)
	}
	return workspace.EnsureDefault()
}

func persist(root string, doc ingest.Document, summary report.Summary, html bool) error {
	project, err := workspace.CreateProject(root, doc.Title, filepath.Base(doc.SourcePath), doc.SourceBytes)
	if err != nil {
		return err
	}
	if _, err := history.SaveVersion(project.HistoryPath, project.ID, doc.Title, doc.Text); err != nil {
		return err
	}
	if err := report.SaveJSON(project.ReportPath, summary); err != nil {
		return err
	}
	if html {
		rendered, err := report.RenderHTML(report.Markdown(summary))
		if err != nil {
			return err
		}
		htmlPath := filepath.Join(project.Root, "report.html")
		if err := os.WriteFile(htmlPath, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("write html report: %w", err)
		}
	}
	return nil
}
