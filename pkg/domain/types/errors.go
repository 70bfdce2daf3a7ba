package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
	ErrGitHubAPI        = goerr.New("GitHub API error")
	ErrQueueFull        = goerr.New("push queue is full")
)
