package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/tube-digest/internal/logger"
	"github.com/nguyentantai21042004/tube-digest/internal/processor"
)

var summarizeJSON bool

type summarizeOutput struct {
	VideoID   string `json:"video_id"`
	URL       string `json:"url"`
	Summary   string `json:"summary"`
	Segments  int    `json:"segments"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

type summarizeError struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize <url>",
	Short: "Summarize one video and print the result",
	Example: `  tubedigest summarize https://www.youtube.com/watch?v=dQw4w9WgXcQ
  tubedigest summarize --json https://youtu.be/dQw4w9WgXcQ`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().BoolVar(&summarizeJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	rawURL := strings.TrimSpace(args[0])
	if rawURL == "" {
		cmd.PrintErrln(processor.BlankURLWarning)
		return ErrReported
	}

	ctx := logger.WithRequestID(cmd.Context())
	res, err := current.processor.Summarize(ctx, rawURL)

	if summarizeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err != nil {
			var out summarizeError
			out.Error.Kind = processor.KindOf(err).String()
			out.Error.Message = processor.Message(err)
			if encErr := enc.Encode(out); encErr != nil {
				return encErr
			}
			return ErrReported
		}
		return enc.Encode(summarizeOutput{
			VideoID:   res.VideoID,
			URL:       res.URL,
			Summary:   res.Summary,
			Segments:  res.Segments,
			ElapsedMs: res.Elapsed.Milliseconds(),
		})
	}

	if err != nil {
		cmd.PrintErrln(processor.Render(res, err))
		return ErrReported
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), processor.Render(res, nil))
	return err
}
