package main

import "os"

type config struct {
	// Positional arguments
	bloggerFile  string
	outputFolder string
	// Flags
	numPosts   int // negative = no cap
	newRoot    string
	frontAlias bool
}

// validate rejects bad arguments before any processing starts. The output
// folder must not exist yet, so a run can never merge into or overwrite a
// previous one.
func (cfg *config) validate() error {
	if cfg.bloggerFile == "" || cfg.outputFolder == "" {
		return configError("both the export file and the output folder are required")
	}
	if _, err := os.Stat(cfg.bloggerFile); err != nil {
		return configError("export file %q does not exist", cfg.bloggerFile)
	}
	if _, err := os.Stat(cfg.outputFolder); err == nil {
		return configError("output folder %q already exists", cfg.outputFolder)
	}
	return nil
}
