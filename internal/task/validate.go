package task

import (
	"strings"

	"github.com/studyflowhq/studyflow/internal/clierr"
)

// ValidateText checks that the task text is non-empty after trimming.
// Returns the trimmed text on success.
func ValidateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", clierr.New(clierr.EmptyText, "task text cannot be empty")
	}
	return trimmed, nil
}

// ValidatePriority checks that a priority is in the allowed list.
func ValidatePriority(priority string, allowed []string) error {
	for _, p := range allowed {
		if p == priority {
			return nil
		}
	}
	return clierr.Newf(clierr.InvalidPriority, "invalid priority %q", priority).
		WithDetails(map[string]any{
			"priority": priority,
			"allowed":  allowed,
		})
}

// ValidateSubject checks that a subject is in the allowed list.
func ValidateSubject(subject string, allowed []string) error {
	for _, s := range allowed {
		if s == subject {
			return nil
		}
	}
	return clierr.Newf(clierr.InvalidSubject, "invalid subject %q", subject).
		WithDetails(map[string]any{
			"subject": subject,
			"allowed": allowed,
		})
}

// ValidateDate returns a structured error for invalid date input.
func ValidateDate(field, input string, err error) *clierr.Error {
	return clierr.Newf(clierr.InvalidDate, "invalid %s date: %v", field, err).
		WithDetails(map[string]any{
			"field": field,
			"input": input,
		})
}

// ValidateTaskID returns a structured error for invalid task ID input.
func ValidateTaskID(input string) *clierr.Error {
	return clierr.Newf(clierr.InvalidTaskID, "invalid task ID %q", input).
		WithDetails(map[string]any{"input": input})
}

// NotFound returns a structured error for an id with no matching task.
func NotFound(id int) *clierr.Error {
	return clierr.Newf(clierr.TaskNotFound, "task not found: #%d", id).
		WithDetails(map[string]any{"id": id})
}
