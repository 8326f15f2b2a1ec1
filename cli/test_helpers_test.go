package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/go-barry/cicd/core"
)

func captureOutput(f func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func overrideLoadConfig(outputDir string, testFn func()) {
	orig := core.LoadConfig
	core.LoadConfig = func(_ string) core.Config {
		cfg := core.DefaultConfig()
		cfg.OutputDir = outputDir
		return cfg
	}
	defer func() { core.LoadConfig = orig }()
	testFn()
}
