package git

import "context"

type Git interface {

	// ListAuthors returns the author names of every commit reachable from HEAD in dir,
	// as reported by `git log --format=%aN`.
	// Blank lines and repeated names are dropped; the first occurrence wins.
	ListAuthors(ctx context.Context, dir string) ([]string, error)

	// Clone clones url into parentDir/name, running git from parentDir.
	// Will create name on disk.
	Clone(ctx context.Context, url, parentDir, name string) error
}
