// Package source loads option lists for the selectbox CLI from files,
// line-oriented input or a SQLite query.
package source

import (
	"context"
	"io"
	"strings"

	appErrors "selectbox/internal/errors"
	"selectbox/internal/option"
)

// Spec says where options come from. At most one of OptionsFile and DBPath
// may be set; with neither, options are read line by line from Stdin.
type Spec struct {
	OptionsFile string
	DBPath      string
	Query       string
	Stdin       io.Reader
}

// Describe returns a short human label for progress output.
func (s Spec) Describe() string {
	switch {
	case strings.TrimSpace(s.OptionsFile) != "":
		return s.OptionsFile
	case strings.TrimSpace(s.DBPath) != "":
		return s.DBPath
	default:
		return "stdin"
	}
}

// Load dispatches to the matching provider.
func Load(ctx context.Context, spec Spec) (option.List, error) {
	file := strings.TrimSpace(spec.OptionsFile)
	db := strings.TrimSpace(spec.DBPath)
	switch {
	case file != "" && db != "":
		return nil, appErrors.New(appErrors.CodeConfigurationError, "choose either an options file or a database, not both", nil)
	case file != "":
		return FromYAMLFile(file)
	case db != "":
		return FromSQLite(ctx, db, spec.Query)
	case spec.Stdin != nil:
		return FromLines(spec.Stdin)
	default:
		return nil, appErrors.New(appErrors.CodeConfigurationError, "no option source", nil)
	}
}

func finish(opts option.List) (option.List, error) {
	if len(opts) == 0 {
		return nil, appErrors.New(appErrors.CodeNotFound, "no options found", nil)
	}
	if err := option.Validate(opts); err != nil {
		return nil, err
	}
	return opts, nil
}
