package cicd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-barry/cicd/core"
)

type RuntimeConfig struct {
	Env         string
	EnableCache bool
	// Port overrides the configured port when non-zero.
	Port int
}

var ListenAndServe = http.ListenAndServe
var Exit = os.Exit

func BuildServer(cfg RuntimeConfig) (string, http.Handler) {
	config := core.LoadConfig(core.ConfigFile)
	config.CacheEnabled = cfg.EnableCache
	if cfg.Env == "dev" {
		config.DebugLogs = true
	}

	port := config.Port
	if cfg.Port != 0 {
		port = cfg.Port
	}

	router := core.NewRouter(config, core.RuntimeContext{Env: cfg.Env})
	return fmt.Sprintf(":%d", port), core.Wrap(config, router)
}

var Start = func(cfg RuntimeConfig) {
	fmt.Println("Starting cicd in", cfg.Env, "mode...")

	addr, handler := BuildServer(cfg)

	fmt.Printf("✅ cicd running at http://localhost%s\n", addr)
	if err := ListenAndServe(addr, handler); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Server failed: %v\n", err)
		Exit(1)
	}
}
