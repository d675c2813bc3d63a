package cmd

import (
	"github.com/eykd/robotslint-go/internal/config"
	"github.com/eykd/robotslint-go/internal/fs"
	"github.com/eykd/robotslint-go/internal/lint"
	"github.com/eykd/robotslint-go/internal/lock"
)

// lockFilename guards concurrent report writes in the working directory.
const lockFilename = ".robotslint.lock"

// defaultFactory is the production ServiceFactory: it loads the lint
// config and wires the service to real filesystem adapters.
func defaultFactory(configPath string) (LintRunner, config.Config, error) {
	if configPath == "" {
		configPath = config.DefaultFilename
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, err
	}

	svc := lint.NewService(
		&fs.SourceFile{},
		&fs.ReportFile{},
		lock.NewFromPath(lockFilename),
		cfg.Options(),
	)
	return svc, cfg, nil
}
