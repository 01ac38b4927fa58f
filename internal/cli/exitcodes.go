package cli

import "github.com/thenoetrevino/workboard/internal/models"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, configuration errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Unknown flags, missing required flags, or malformed flag values
	// rejected by cobra before the command runs.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Show of a missing id, or an update answered with NotFound.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Stored data that cannot be rendered.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Input rejected by validation, or a BadRequest response.
	ExitValidation = 5

	// ExitConflict indicates the store refused the write.
	// Use for: Duplicate names or titles, in-use deletes, and deletes
	// blocked by a work item's state.
	ExitConflict = 6
)

// ExitCodeForResponse maps a repository outcome to its exit code
func ExitCodeForResponse(resp models.Response) int {
	switch resp {
	case models.Created, models.Updated, models.Deleted:
		return ExitSuccess
	case models.Conflict:
		return ExitConflict
	case models.NotFound:
		return ExitNotFound
	case models.BadRequest:
		return ExitValidation
	default:
		return ExitError
	}
}
