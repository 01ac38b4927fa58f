package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Renderer is implemented by results that know their human-readable form
type Renderer interface {
	Render() string
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Fprintf(os.Stdout, "%d\n", idGetter.GetID())
			return nil
		}
		if idsGetter, ok := data.(interface{ GetIDs() []int }); ok {
			for _, id := range idsGetter.GetIDs() {
				fmt.Fprintf(os.Stdout, "%d\n", id)
			}
			return nil
		}
		if q, ok := data.(interface{ QuietOutput() string }); ok {
			fmt.Fprintln(os.Stdout, q.QuietOutput())
			return nil
		}
	}

	if f.JSON {
		return writeJSON(os.Stdout, map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	return f.writeError(map[string]any{"code": code, "message": message}, message, suggestion)
}

// Failure outputs a command error. Conflicts carry the id of the row that
// caused them so scripts can pick it up.
func (f *OutputFormatter) Failure(err error) error {
	errData := map[string]any{
		"code":    errorCode(err),
		"message": err.Error(),
	}

	var respErr *ResponseError
	if errors.As(err, &respErr) {
		errData["response"] = respErr.Response
		if respErr.ID > 0 {
			errData["id"] = respErr.ID
		}
	}

	return f.writeError(errData, err.Error(), "")
}

func (f *OutputFormatter) writeError(errData map[string]any, message, suggestion string) error {
	if f.JSON {
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return writeJSON(os.Stdout, map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if r, ok := data.(Renderer); ok {
		fmt.Fprintln(os.Stdout, r.Render())
		return nil
	}
	fmt.Fprintf(os.Stdout, "%+v\n", data)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
