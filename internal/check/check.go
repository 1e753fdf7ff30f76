// Package check compares commit authors against the names declared in an AUTHORS file.
package check

import (
	"context"

	clog "github.com/charmbracelet/log"
	"github.com/jmcampanini/authorcheck/internal/authorset"
	"github.com/jmcampanini/authorcheck/internal/committers"
)

// CommitterLister lists commit author names for a directory.
type CommitterLister interface {
	List(ctx context.Context, mode committers.Mode, dir string) ([]string, error)
}

// AuthorsReader reads the declared author names for a directory.
type AuthorsReader interface {
	Read(dir string) ([]string, error)
}

// Checker runs the author check.
type Checker struct {
	authors    AuthorsReader
	committers CommitterLister
	log        *clog.Logger
}

// NewChecker creates a Checker from its two sources of names.
func NewChecker(committerLister CommitterLister, authorsReader AuthorsReader) *Checker {
	return &Checker{
		authors:    authorsReader,
		committers: committerLister,
		log:        clog.Default().WithPrefix("check"),
	}
}

// Check returns the missing author names for dir.
//
// In branch mode these are commit authors absent from the AUTHORS file.
// In pull-request mode these are AUTHORS entries absent from the pull request's
// commit authors. The order follows the list being filtered. Errors from either
// source are returned unchanged and no names are returned with them.
func (c *Checker) Check(ctx context.Context, isPullRequest bool, dir string) ([]string, error) {
	mode := committers.ModeFor(isPullRequest)

	gitAuthors, err := c.committers.List(ctx, mode, dir)
	if err != nil {
		return nil, err
	}

	declared, err := c.authors.Read(dir)
	if err != nil {
		return nil, err
	}

	var missing []string
	if mode == committers.ModePullRequest {
		missing = authorset.Difference(declared, gitAuthors)
	} else {
		missing = authorset.Difference(gitAuthors, declared)
	}

	c.log.Debug("Compared authors", "mode", mode, "committers", len(gitAuthors), "declared", len(declared), "missing", len(missing))
	return missing, nil
}
