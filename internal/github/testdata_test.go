package github

// forkPullRequestJSON is a trimmed GitHub REST response for a pull request opened from a fork.
const forkPullRequestJSON = `{
  "number": 42,
  "title": "Add feature",
  "state": "open",
  "user": {"login": "contrib"},
  "base": {"ref": "main", "repo": {"full_name": "org/project", "clone_url": "https://github.com/org/project.git"}},
  "head": {"ref": "feature", "repo": {"full_name": "contrib/project", "clone_url": "https://github.com/contrib/project.git"}}
}`

// deletedForkPullRequestJSON is a pull request whose fork no longer exists.
const deletedForkPullRequestJSON = `{
  "number": 7,
  "title": "Old change",
  "state": "closed",
  "user": {"login": "ghost"},
  "base": {"ref": "main", "repo": {"full_name": "org/project", "clone_url": "https://github.com/org/project.git"}},
  "head": {"ref": "old", "repo": null}
}`
