package lint

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format writes the result to w in the configured format.
func Format(w io.Writer, result *Result, format string) error {
	switch format {
	case "json":
		return formatJSON(w, result)
	default:
		return formatText(w, result)
	}
}

func formatJSON(w io.Writer, result *Result) error {
	out := struct {
		Files    int     `json:"files"`
		Errors   int     `json:"errors"`
		Warnings int     `json:"warnings"`
		Issues   []Issue `json:"issues"`
	}{
		Files:    result.FilesTotal,
		Errors:   result.Count(SeverityError),
		Warnings: result.Count(SeverityWarning),
		Issues:   result.Issues,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func formatText(w io.Writer, result *Result) error {
	for _, issue := range result.Issues {
		if _, err := fmt.Fprintf(w, "%s: %s: %s (%s)\n",
			issue.Severity, issue.FilePath, issue.Message, issue.Rule); err != nil {
			return err
		}
		if issue.Fix != "" {
			if _, err := fmt.Fprintf(w, "  fix: %s\n", issue.Fix); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d files scanned: %d errors, %d warnings\n",
		result.FilesTotal, result.Count(SeverityError), result.Count(SeverityWarning))
	return err
}
