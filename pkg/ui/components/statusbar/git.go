package statusbar

import (
	"strings"

	git "github.com/go-git/go-git/v5"
)

const shortHashLen = 7

// ResolveBranch names the checkout of the repository containing dir: the
// branch, or a short hash on a detached HEAD. Outside a repository it
// returns "".
func ResolveBranch(dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ""
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		// unborn branch: no commits yet
		return ""
	}

	if name := head.Name(); name.IsBranch() {
		return name.Short()
	}
	return head.Hash().String()[:shortHashLen]
}
