// internal/domain/homework/render.go
package homework

import (
	"fmt"
)

const messageTemplate = `Изменился статус проверки работы "%s". %s`

// Render turns a single homework record into the notification text.
func Render(record any) (string, error) {
	hw, ok := record.(map[string]any)
	if !ok {
		return "", NewShapeError("homework is not a mapping")
	}

	name, err := stringField(hw, KeyHomeworkName)
	if err != nil {
		return "", err
	}
	status, err := stringField(hw, KeyStatus)
	if err != nil {
		return "", err
	}

	verdict, ok := Verdict(Status(status))
	if !ok {
		return "", NewUnknownStatusError(status)
	}
	return fmt.Sprintf(messageTemplate, name, verdict), nil
}

func stringField(hw map[string]any, key string) (string, error) {
	raw, ok := hw[key]
	if !ok {
		return "", NewMissingFieldError(key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", NewShapeError(fmt.Sprintf("%s is not a string", key))
	}
	return s, nil
}
