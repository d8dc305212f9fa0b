package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"proposal_grader/internal/config"
	"proposal_grader/internal/httpapi"
	"proposal_grader/internal/workspace"
)

func main() {
	var (
		addr   = flag.String("addr", "", "listen address (overrides config)")
		wsPath = flag.String("workspace", "", "workspace directory (default ~/ProposalGrader)")
	)
	flag.Parse()

	root, err := resolveWorkspace(*wsPath)
	if err != nil {
		log.Fatalf("workspace initialization failed: %v", err)
	}
	cfg, err := config.Load(workspace.ConfigPath(root))
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	app, err := httpapi.NewApp(root)
	if err != nil {
		log.Fatalf("server initialization failed: %v", err)
	}

	log.Printf("grader listening on %s (workspace %s)", cfg.ListenAddr, root)
	if err := http.ListenAndServe(cfg.ListenAddr, app.Handler()); err != nil {
		log.Fatalf("server stopped: %v", err)
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
