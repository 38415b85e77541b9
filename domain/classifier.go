package domain

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Classify turns a raw remote URL and an optional branch name into a
// GitService. The URL may carry a ".git" suffix; SCP-style URLs must be
// expanded with ExpandSCPURL first, since they are not valid absolute URLs.
//
// Failures are typed: a BrokenURLError when the URL cannot be parsed or
// has no host, a DetectionError when the URL is well-formed but does not
// map to a supported hosting service.
func Classify(remoteURL, branch string) (*GitService, error) {
	trimmed := strings.TrimSuffix(remoteURL, ".git")

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, &BrokenURLError{URL: trimmed, Msg: err.Error()}
	}

	host := parsed.Hostname()
	if host == "" {
		return nil, &BrokenURLError{URL: trimmed, Msg: "No host in URL"}
	}
	if net.ParseIP(host) != nil {
		return nil, &DetectionError{
			Reason: fmt.Sprintf("Domain name must be contained in URL %s", trimmed),
		}
	}

	user, repo, ok := splitUserRepo(parsed.Path)
	if !ok {
		return nil, &DetectionError{Reason: "Path does not represent user/repo"}
	}

	kind, ok := classifyHost(host)
	if !ok {
		return nil, &DetectionError{
			Reason: fmt.Sprintf("No service detected from URL %s", trimmed),
		}
	}

	return &GitService{
		kind:   kind,
		host:   host,
		user:   user,
		repo:   repo,
		branch: branch,
	}, nil
}

// splitUserRepo extracts the first two non-empty path segments, so "/",
// "//foo", and "foo/" are handled uniformly.
func splitUserRepo(path string) (string, string, bool) {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	if len(segments) < 2 { //nolint:mnd // need user + repo
		return "", "", false
	}
	return segments[0], segments[1], true
}

// classifyHost maps a host name to a service kind. Exact matches win over
// prefix matches so that SaaS instances are distinguished from self-hosted
// ones on vendor subdomains (e.g. github.mycompany.com).
func classifyHost(host string) (Kind, bool) {
	switch {
	case host == "github.com":
		return KindGitHub, true
	case host == "gitlab.com":
		return KindGitLab, true
	case host == "bitbucket.org":
		return KindBitbucket, true
	case strings.HasPrefix(host, "github."):
		return KindGitHubEnterprise, true
	case strings.HasPrefix(host, "gitlab."):
		return KindGitLab, true
	default:
		return "", false
	}
}

// ExpandSCPURL rewrites an SCP-style remote URL (git@host:user/repo.git)
// into an explicit SSH URL (ssh://git@host:22/user/repo.git). SCP syntax
// is not a valid absolute URL, so the scheme and port separator have to be
// made explicit before parsing. Non-SCP URLs are returned unchanged.
func ExpandSCPURL(remoteURL string) string {
	if !strings.HasPrefix(remoteURL, "git@") {
		return remoteURL
	}
	if i := strings.Index(remoteURL, ":"); i >= 0 {
		remoteURL = remoteURL[:i+1] + "22/" + remoteURL[i+1:]
	}
	return "ssh://" + remoteURL
}
