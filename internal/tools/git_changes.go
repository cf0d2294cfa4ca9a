package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gitweather/gitweather-mcp-server/internal/gitapi"
	"github.com/gitweather/gitweather-mcp-server/internal/protocol"
)

// gitChangesTool lists the commits that landed between two versions of
// a repository, excluding merge commits.
type gitChangesTool struct {
	api *gitapi.Client
}

// GitChangesBetweenVersions constructs the tool around a compare-API
// client.
func GitChangesBetweenVersions(api *gitapi.Client) *gitChangesTool {
	return &gitChangesTool{api: api}
}

func (t *gitChangesTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "git_changes_between_versions",
		Description: "List the commits between two versions (tags, branches, or SHAs) of a GitHub repository. Merge commits are excluded.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"repo":        {Type: "string", Description: "Repository in owner/name form, e.g. golang/go"},
				"fromVersion": {Type: "string", Description: "Older ref to compare from"},
				"toVersion":   {Type: "string", Description: "Newer ref to compare to"},
			},
			Required: []string{"repo", "fromVersion", "toVersion"},
		},
	}
}

type gitChangesArgs struct {
	Repo        string `json:"repo"`
	FromVersion string `json:"fromVersion"`
	ToVersion   string `json:"toVersion"`
}

func (t *gitChangesTool) Invoke(ctx context.Context, raw json.RawMessage) (string, error) {
	var args gitChangesArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	owner, name, ok := strings.Cut(strings.TrimSpace(args.Repo), "/")
	if !ok || owner == "" || name == "" {
		return "", fmt.Errorf("repo must be in owner/name form, got %q", args.Repo)
	}

	// GITHUB_TOKEN is optional; public repositories need none.
	token := strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
	commits, err := t.api.Compare(ctx, owner, name, args.FromVersion, args.ToVersion, token)
	if err != nil {
		return "", err
	}

	kept := make([]gitapi.Commit, 0, len(commits))
	for _, c := range commits {
		if strings.HasPrefix(c.Message, "Merge") {
			continue
		}
		kept = append(kept, c)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Changes in %s from %s to %s:\n\n", args.Repo, args.FromVersion, args.ToVersion)
	if len(kept) == 0 {
		b.WriteString("No commits found (merge commits are excluded).\n")
	}
	for _, c := range kept {
		sha := c.SHA
		if len(sha) > 7 {
			sha = sha[:7]
		}
		subject, _, _ := strings.Cut(c.Message, "\n")
		fmt.Fprintf(&b, "- %s %s (%s)\n", sha, subject, c.Author)
	}
	fmt.Fprintf(&b, "\nTotal commits: %d", len(kept))
	return b.String(), nil
}
