// Package githubapi is a thin gateway to the GitHub REST API. It normalizes
// transport responses into success-with-document, success-with-no-content, or
// a typed failure carrying the upstream status and message.
package githubapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/domain/types"
	"github.com/secmon-lab/forkrun/pkg/utils/logging"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	gh      *github.Client
	timeout time.Duration
}

var _ interfaces.GitHubClient = (*Client)(nil)

type Option func(*Client)

// WithTimeout overrides the per-call timeout (default 15s).
func WithTimeout(d time.Duration) Option {
	return func(x *Client) {
		x.timeout = d
	}
}

// WithBaseURL points the client at a different API endpoint, mainly for tests
// against a local HTTP server. The URL must end with a slash.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		if u, err := x.gh.BaseURL.Parse(baseURL); err == nil {
			x.gh.BaseURL = u
		}
	}
}

func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	httpClient := oauth2.NewClient(context.Background(), ts)

	client := &Client{
		gh:      github.NewClient(httpClient),
		timeout: defaultTimeout,
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, x.timeout)
}

// wrapAPIError converts a go-github error into the gateway failure shape,
// keeping the upstream status code and message.
func wrapAPIError(err error, msg string, values ...goerr.Option) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		values = append(values,
			goerr.V("status_code", ghErr.Response.StatusCode),
			goerr.V("upstream_message", ghErr.Message),
		)
		return goerr.Wrap(types.ErrGitHubAPI, msg, append(values, goerr.V("cause", err.Error()))...)
	}
	return goerr.Wrap(err, msg, values...)
}

func (x *Client) CreateFork(ctx context.Context, input *interfaces.CreateForkInput) (*interfaces.CreateForkResult, error) {
	ctx, cancel := x.callCtx(ctx)
	defer cancel()

	logging.From(ctx).Info("Sending fork request",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.String("org", input.Org),
	)

	opts := &github.RepositoryCreateForkOptions{}
	if input.Org != "" {
		opts.Organization = input.Org
	}

	repo, _, err := x.gh.Repositories.CreateFork(ctx, input.Owner, input.Repo, opts)
	if err != nil {
		// Forking is asynchronous; GitHub answers 202 with the fork body and
		// go-github surfaces that as AcceptedError
		var accepted *github.AcceptedError
		if errors.As(err, &accepted) {
			repo = &github.Repository{}
			if jsonErr := json.Unmarshal(accepted.Raw, repo); jsonErr != nil {
				return nil, goerr.Wrap(jsonErr, "failed to decode accepted fork response")
			}
		} else {
			return nil, wrapAPIError(err, "failed to create fork",
				goerr.V("owner", input.Owner),
				goerr.V("repo", input.Repo),
				goerr.V("org", input.Org),
			)
		}
	}

	raw, err := json.Marshal(repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal fork response")
	}

	return &interfaces.CreateForkResult{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		FullName:      types.RepoFullName(repo.GetFullName()),
		DefaultBranch: types.BranchName(repo.GetDefaultBranch()),
		Raw:           raw,
	}, nil
}

func (x *Client) DeleteRepo(ctx context.Context, owner, repo string) error {
	ctx, cancel := x.callCtx(ctx)
	defer cancel()

	if _, err := x.gh.Repositories.Delete(ctx, owner, repo); err != nil {
		return wrapAPIError(err, "failed to delete repository",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return nil
}

func (x *Client) GetFileContent(ctx context.Context, input *interfaces.GetFileInput) (*interfaces.RemoteFile, error) {
	ctx, cancel := x.callCtx(ctx)
	defer cancel()

	opts := &github.RepositoryContentGetOptions{
		Ref: string(input.Branch),
	}

	fileContent, _, resp, err := x.gh.Repositories.GetContents(ctx, input.Owner, input.Repo, input.Path, opts)
	if err != nil {
		// Callers use this as an existence probe: absent is a valid answer
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, wrapAPIError(err, "failed to get file content",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("path", input.Path),
		)
	}

	if fileContent == nil {
		return nil, goerr.Wrap(types.ErrGitHubAPI, "path is not a file",
			goerr.V("path", input.Path),
		)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode file content",
			goerr.V("path", input.Path),
		)
	}

	return &interfaces.RemoteFile{
		Path:    input.Path,
		SHA:     fileContent.GetSHA(),
		Content: []byte(content),
	}, nil
}

func (x *Client) CreateOrUpdateFile(ctx context.Context, input *interfaces.PutFileInput) error {
	sha := input.SHA
	if sha == "" {
		// Probe for the current revision so an existing file is updated
		// instead of rejected
		existing, err := x.GetFileContent(ctx, &interfaces.GetFileInput{
			Owner:  input.Owner,
			Repo:   input.Repo,
			Path:   input.Path,
			Branch: input.Branch,
		})
		if err != nil {
			return err
		}
		if existing != nil {
			sha = existing.SHA
		}
	}

	ctx, cancel := x.callCtx(ctx)
	defer cancel()

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(input.Message),
		Content: input.Content,
		Branch:  github.String(string(input.Branch)),
	}
	if sha != "" {
		opts.SHA = github.String(sha)
	}

	if _, _, err := x.gh.Repositories.CreateFile(ctx, input.Owner, input.Repo, input.Path, opts); err != nil {
		return wrapAPIError(err, "failed to create or update file",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("path", input.Path),
		)
	}

	logging.From(ctx).Debug("file pushed",
		slog.String("repo", input.Owner+"/"+input.Repo),
		slog.String("path", input.Path),
		slog.Bool("update", sha != ""),
	)

	return nil
}

func (x *Client) DispatchWorkflow(ctx context.Context, input *interfaces.DispatchWorkflowInput) (types.WorkflowID, error) {
	workflowID, err := x.resolveWorkflowID(ctx, input)
	if err != nil {
		return 0, err
	}

	ctx, cancel := x.callCtx(ctx)
	defer cancel()

	req := github.CreateWorkflowDispatchEventRequest{
		Ref: string(input.Branch),
	}

	if _, err := x.gh.Actions.CreateWorkflowDispatchEventByID(ctx, input.Owner, input.Repo, int64(workflowID), req); err != nil {
		return 0, wrapAPIError(err, "failed to dispatch workflow",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("workflow_id", workflowID),
		)
	}

	logging.From(ctx).Info("workflow dispatched",
		slog.String("repo", input.Owner+"/"+input.Repo),
		slog.Int64("workflow_id", int64(workflowID)),
		slog.String("ref", string(input.Branch)),
	)

	return workflowID, nil
}

// resolveWorkflowID maps a workflow file name (or display name) to the numeric
// ID the dispatch endpoint requires. An identifier that matches nothing is
// tried as an already-numeric ID before giving up.
func (x *Client) resolveWorkflowID(ctx context.Context, input *interfaces.DispatchWorkflowInput) (types.WorkflowID, error) {
	ctx, cancel := x.callCtx(ctx)
	defer cancel()

	opts := &github.ListOptions{PerPage: 100}
	for {
		workflows, resp, err := x.gh.Actions.ListWorkflows(ctx, input.Owner, input.Repo, opts)
		if err != nil {
			return 0, wrapAPIError(err, "failed to list workflows",
				goerr.V("owner", input.Owner),
				goerr.V("repo", input.Repo),
			)
		}

		for _, w := range workflows.Workflows {
			if w.GetPath() == ".github/workflows/"+input.WorkflowID || w.GetName() == input.WorkflowID {
				return types.WorkflowID(w.GetID()), nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if id, err := strconv.ParseInt(input.WorkflowID, 10, 64); err == nil {
		return types.WorkflowID(id), nil
	}

	return 0, goerr.Wrap(types.ErrGitHubAPI, "workflow not found",
		goerr.V("workflow", input.WorkflowID),
		goerr.V("repo", input.Owner+"/"+input.Repo),
	)
}

func (x *Client) MergeUpstream(ctx context.Context, input *interfaces.MergeUpstreamInput) (json.RawMessage, error) {
	ctx, cancel := x.callCtx(ctx)
	defer cancel()

	req := &github.RepoMergeUpstreamRequest{
		Branch: github.String(string(input.Branch)),
	}

	result, _, err := x.gh.Repositories.MergeUpstream(ctx, input.Owner, input.Repo, req)
	if err != nil {
		return nil, wrapAPIError(err, "failed to merge upstream",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("branch", input.Branch),
		)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal merge result")
	}

	return raw, nil
}
