package controller

import "github.com/teamgen/cli/errors"

// try adapts a Find result for callers that create on demand: NotFound
// becomes an absent result, every other error is passed through.
func try[T any](v *T, err error) (*T, bool, error) {
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return v, v != nil, nil
}
