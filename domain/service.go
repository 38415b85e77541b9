package domain

// Kind identifies a supported Git hosting service.
type Kind string

const (
	// KindGitHub is github.com.
	KindGitHub Kind = "github"
	// KindGitHubEnterprise is a self-hosted GitHub instance (github.* hosts).
	KindGitHubEnterprise Kind = "github-enterprise"
	// KindGitLab is gitlab.com or a self-hosted GitLab instance (gitlab.* hosts).
	KindGitLab Kind = "gitlab"
	// KindBitbucket is bitbucket.org.
	KindBitbucket Kind = "bitbucket"
)

// GitService identifies a repository on a Git hosting service. Values are
// immutable and only constructed by Classify, which guarantees that user
// and repo are never empty.
type GitService struct {
	kind   Kind
	host   string
	user   string
	repo   string
	branch string // empty when no tracking branch could be determined
}

// Kind returns which hosting service the repository lives on.
func (s *GitService) Kind() Kind { return s.kind }

// Host returns the host name the service was matched on (e.g. "github.com"
// or "github.mycompany.com").
func (s *GitService) Host() string { return s.host }

// User returns the owner or organization name.
func (s *GitService) User() string { return s.user }

// Repo returns the repository name, without any ".git" suffix.
func (s *GitService) Repo() string { return s.repo }

// Branch returns the resolved branch name. The second return value is false
// when no tracking branch could be determined.
func (s *GitService) Branch() (string, bool) {
	return s.branch, s.branch != ""
}

// WebURL returns the HTTPS page URL for the repository on its hosting
// service, pointing at the resolved branch when one is known.
func (s *GitService) WebURL() string {
	base := "https://" + s.host + "/" + s.user + "/" + s.repo

	branch, ok := s.Branch()
	if !ok {
		return base
	}

	switch s.kind {
	case KindGitLab:
		return base + "/-/tree/" + branch
	case KindBitbucket:
		return base + "/src/" + branch
	case KindGitHub, KindGitHubEnterprise:
		return base + "/tree/" + branch
	default:
		return base
	}
}

// RemoteIdentity is the resolved remote of a working copy: the configured
// remote URL and the branch the current HEAD tracks. Branch is empty when
// no branch could be determined. It is consumed immediately by Classify
// and never persisted.
type RemoteIdentity struct {
	URL    string
	Branch string
}
