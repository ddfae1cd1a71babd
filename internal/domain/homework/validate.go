// internal/domain/homework/validate.go
package homework

import (
	"encoding/json"
	"fmt"
)

// Validate checks the decoded API payload and returns its homework list unchanged.
// The first element is the most recent submission; the API guarantees that ordering.
func Validate(payload any) ([]any, error) {
	response, ok := payload.(map[string]any)
	if !ok {
		return nil, NewShapeError("response is not a mapping")
	}
	raw, ok := response[KeyHomeworks]
	if !ok {
		return nil, NewMissingFieldError(KeyHomeworks)
	}
	homeworks, ok := raw.([]any)
	if !ok {
		return nil, NewShapeError(fmt.Sprintf("%s is not a list", KeyHomeworks))
	}
	return homeworks, nil
}

// CurrentDate extracts the server timestamp that becomes the next cursor.
func CurrentDate(payload any) (int64, error) {
	response, ok := payload.(map[string]any)
	if !ok {
		return 0, NewShapeError("response is not a mapping")
	}
	raw, ok := response[KeyCurrentDate]
	if !ok {
		return 0, NewMissingFieldError(KeyCurrentDate)
	}
	switch v := raw.(type) {
	case json.Number:
		ts, err := v.Int64()
		if err != nil {
			return 0, NewShapeError(fmt.Sprintf("%s is not an integer: %s", KeyCurrentDate, v))
		}
		return ts, nil
	case float64:
		if v != float64(int64(v)) {
			return 0, NewShapeError(fmt.Sprintf("%s is not an integer: %v", KeyCurrentDate, v))
		}
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, NewShapeError(fmt.Sprintf("%s is not an integer", KeyCurrentDate))
	}
}
