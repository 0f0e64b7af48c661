package token

import (
	"errors"
	"fmt"
)

// ErrPromptCancelled signals that the user aborted an interactive
// prompt. A cancelled prompt aborts the whole template fill; no
// partial result is returned.
var ErrPromptCancelled = errors.New("prompt cancelled")

// UnknownTokenError reports a template referencing a token name that is
// not registered. The fill aborts on the first unknown name.
type UnknownTokenError struct {
	Name string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token: %s", e.Name)
}
