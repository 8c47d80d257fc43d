package apitests

import (
	"github.com/restharness/fixture-api-tests/framework"
	"github.com/restharness/fixture-api-tests/ops"
)

// RunTestSuite runs every fixture API test suite against the environment's
// configured base URL, reporting through the given test logger.
func RunTestSuite(
	env *ops.Env,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{context: c, env: env}

		t.Run("users", DoUserTests)
		t.Run("posts", DoPostTests)
		t.Run("comments", DoCommentTests)
		t.Run("batch creation", DoBatchTests)
	})
}
