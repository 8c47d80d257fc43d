package validators

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// EchoMatches confirms the remote service preserved every submitted field:
// the response payload must equal the submitted one apart from the ignored
// fields (typically the server-assigned "id" struct field name). The error
// carries a field-by-field diff.
func EchoMatches[T any](submitted, returned T, ignoreFields ...string) error {
	var opts []cmp.Option
	if len(ignoreFields) > 0 {
		var zero T
		opts = append(opts, cmpopts.IgnoreFields(zero, ignoreFields...))
	}
	if diff := cmp.Diff(submitted, returned, opts...); diff != "" {
		return fmt.Errorf("response did not echo submitted fields (-submitted +returned):\n%s", diff)
	}
	return nil
}
