package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/JurmiThinley/jobtrackr/pkg/db"
	"github.com/JurmiThinley/jobtrackr/pkg/model"
	gormstore "github.com/JurmiThinley/jobtrackr/pkg/server/store/gorm"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <username>",
	Short: "Export a user's job applications",
	Long: `Export a user's job applications.

Supported formats: json, markdown, html. The html format renders each job's
notes as Markdown.

Example:
  jobtrackrctl export alice
  jobtrackrctl export alice --format markdown
  jobtrackrctl export alice --format html --out jobs.html`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		username := args[0]
		formatStr, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		format, err := FormatString(formatStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid format '%s' (expected one of: %s)\n",
				formatStr, strings.Join(FormatStrings(), ", "))
			os.Exit(1)
		}

		if err := runExport(username, format, outPath); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("format", "f", FormatJSON.String(), "Output format (json, markdown, or html)")
	exportCmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")
}

func runExport(username string, format Format, outPath string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	user, err := gormstore.NewUsersStore(database).FetchUserByUsername(username)
	if err != nil {
		return fmt.Errorf("unknown user: %s", username)
	}

	jobs, err := gormstore.NewJobsStore(database).ListJobs(user.ID)
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	output, err := renderExport(username, jobs, format)
	if err != nil {
		return err
	}

	if outPath == "" {
		fmt.Print(string(output))
		return nil
	}

	if err := os.WriteFile(outPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	fmt.Fprintf(os.Stderr, "Exported %d job(s) to %s\n", len(jobs), outPath)
	return nil
}

func renderExport(username string, jobs []model.Job, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return renderJSON(jobs)
	case FormatMarkdown:
		return renderMarkdown(username, jobs), nil
	case FormatHTML:
		return renderHTML(username, jobs)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func renderJSON(jobs []model.Job) ([]byte, error) {
	if jobs == nil {
		jobs = []model.Job{}
	}
	out, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func renderMarkdown(username string, jobs []model.Job) []byte {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Job applications for %s\n", username))

	for _, job := range jobs {
		sb.WriteString(fmt.Sprintf("\n## %s at %s\n\n", job.Title, job.Company))
		sb.WriteString(fmt.Sprintf("- Status: %s\n", job.Status))
		if job.DateApplied != nil {
			sb.WriteString(fmt.Sprintf("- Applied: %s\n", job.DateApplied.String()))
		}
		if job.Location != nil && *job.Location != "" {
			sb.WriteString(fmt.Sprintf("- Location: %s\n", *job.Location))
		}
		if job.Notes != nil && *job.Notes != "" {
			sb.WriteString("\n" + *job.Notes + "\n")
		}
	}

	return []byte(sb.String())
}

// renderHTML renders the markdown export to HTML. Job notes are treated as
// Markdown, so formatting inside notes survives the conversion.
func renderHTML(username string, jobs []model.Job) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert(renderMarkdown(username, jobs), &body); err != nil {
		return nil, fmt.Errorf("failed to render HTML: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString(fmt.Sprintf("<title>Job applications for %s</title>\n", username))
	sb.WriteString("</head>\n<body>\n")
	sb.Write(body.Bytes())
	sb.WriteString("</body>\n</html>\n")

	return []byte(sb.String()), nil
}
