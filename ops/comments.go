package ops

import (
	"fmt"
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/restharness/fixture-api-tests/apiclient"
	"github.com/restharness/fixture-api-tests/batch"
	"github.com/restharness/fixture-api-tests/services"
	"github.com/restharness/fixture-api-tests/validators"
)

// ListCommentsByPost filters comments by post and validates that every
// element belongs to that post and has a well-formed commenter email.
func ListCommentsByPost(env *Env, postID int) (Result[[]services.Comment], error) {
	resp, err := env.Comments.GetByPost(postID)
	if err != nil {
		return Result[[]services.Comment]{}, err
	}

	checks := []error{validators.ExpectStatus(resp, http.StatusOK)}
	for i, c := range resp.Data {
		if c.PostID != postID {
			checks = append(checks, fmt.Errorf("element %d has postId %d, want %d", i, c.PostID, postID))
			break
		}
		if err := validators.ValidEmail(c.Email); err != nil {
			checks = append(checks, fmt.Errorf("element %d: %w", i, err))
			break
		}
	}
	return finish(env, "comments.listByPost", resp, checks...), nil
}

// CreateComment creates a comment and validates status, id assignment and
// echo.
func CreateComment(env *Env, payload *services.Comment) (Result[services.Comment], error) {
	resp, err := env.Comments.Create(payload)
	if err != nil {
		return Result[services.Comment]{}, err
	}

	checks := []error{validators.ExpectStatus(resp, http.StatusCreated)}
	if resp.IsSuccess() {
		if resp.Data.ID <= 0 {
			checks = append(checks, fmt.Errorf("server did not assign an id"))
		}
		if payload != nil {
			submitted := *payload
			submitted.ID = 0
			checks = append(checks, validators.EchoMatches(submitted, resp.Data, "ID"))
		}
	}
	return finish(env, "comments.create", resp, checks...), nil
}

// CreateCommentsInBatches bulk-creates comments through the batch executor,
// using the configured batch size and inter-batch cooldown. Per-item
// failures are logged and dropped by the executor; the stats are attached to
// the reporter.
func CreateCommentsInBatches(env *Env, payloads []services.Comment) ([]*apiclient.Response[services.Comment], batch.Stats) {
	create := func(p services.Comment) (*apiclient.Response[services.Comment], error) {
		return env.Comments.Create(&p)
	}
	exec := batch.NewExecutor(create, env.Config.BatchSize, env.Config.RateLimitDelay(),
		env.Logger.ForComponent("batch"))
	results, stats := exec.Run(payloads)

	env.Reporter.AttachPerformanceMetrics("comments.createBatch", ldvalue.ObjectBuild().
		Set("requested", ldvalue.Int(stats.Requested)).
		Set("succeeded", ldvalue.Int(stats.Succeeded)).
		Set("failed", ldvalue.Int(stats.Failed)).
		Set("groups", ldvalue.Int(stats.Groups)).
		Build())
	return results, stats
}
