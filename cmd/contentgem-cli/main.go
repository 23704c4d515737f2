package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/savioxavier/termlink"
	"github.com/spf13/cobra"

	"github.com/gemcontent/contentgem-client/internal/build"
	"github.com/gemcontent/contentgem-client/pkg/client"
	"github.com/gemcontent/contentgem-client/pkg/client/dto"
	"github.com/gemcontent/contentgem-client/pkg/util"
)

func main() {
	var cfg client.Config
	cfg.Url = client.DefaultBaseURL
	if os.Getenv("GEMCONTENT_URL") != "" {
		cfg.Url = os.Getenv("GEMCONTENT_URL")
	}
	cfg.ApiKey = os.Getenv("GEMCONTENT_API_KEY")

	rootCmd := &cobra.Command{
		Use:     "contentgem",
		Version: build.Version,
		Short:   "GemContent is an AI content generation service",
		Long:    "Command-line client for the GemContent content generation API",
	}
	rootCmd.PersistentFlags().StringVarP(&cfg.Url, "url", "u", cfg.Url, "GemContent API base URL")
	rootCmd.PersistentFlags().StringVarP(&cfg.ApiKey, "key", "k", cfg.ApiKey, "GemContent API key")
	rootCmd.PersistentFlags().DurationVarP(&cfg.Timeout, "timeout", "t", client.DefaultTimeout, "Per-request timeout")

	newClient := func() client.Client {
		return client.NewClient(cfg)
	}

	rootCmd.AddCommand(
		healthCmd(newClient),
		publicationsCmd(newClient),
		imagesCmd(newClient),
		statisticsCmd(newClient),
		generateCmd(&cfg, newClient),
		bulkCmd(newClient),
		statusCmd(newClient),
		bulkStatusCmd(newClient),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func healthCmd(newClient func() client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health and credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := newClient().HealthCheck(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println("API is healthy")
			if email, ok := health.User["email"]; ok {
				fmt.Printf("User: %s\n", email)
			}
			if plan, ok := health.User["plan"]; ok {
				fmt.Printf("Plan: %s\n", plan)
			}
			return nil
		},
	}
}

func publicationsCmd(newClient func() client.Client) *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "publications",
		Short: "List publications",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := newClient().GetPublications(cmd.Context(), page, limit)
			if err != nil {
				return err
			}
			if len(list.Publications) == 0 {
				fmt.Println("No publications found")
				return nil
			}
			fmt.Printf("Found %d publications:\n", list.Total)
			for _, pub := range list.Publications {
				fmt.Printf("  - %s (%s)\n", pub.Title, pub.Status)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Items per page")
	return cmd
}

func imagesCmd(newClient func() client.Client) *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "images",
		Short: "List images",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := newClient().GetImages(cmd.Context(), page, limit)
			if err != nil {
				return err
			}
			if len(list.Images) == 0 {
				fmt.Println("No images found")
				return nil
			}
			fmt.Printf("Found %d images:\n", list.Total)
			for _, img := range list.Images {
				fmt.Printf("  - %s (%d bytes)\n", img.Filename, lo.FromPtr(img.FileSize))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Items per page")
	return cmd
}

func statisticsCmd(newClient func() client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "statistics",
		Short: "Show account statistics overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := newClient().GetStatisticsOverview(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Publications: %d total\n", stats.Publications["total"])
			fmt.Printf("  - Published: %d\n", stats.Publications["published"])
			fmt.Printf("  - Draft: %d\n", stats.Publications["draft"])
			if len(stats.Images) > 0 {
				out, _ := json.MarshalIndent(stats.Images, "", "  ")
				fmt.Printf("Images: %s\n", string(out))
			}
			return nil
		},
	}
}

func generateCmd(cfg *client.Config, newClient func() client.Client) *cobra.Command {
	var (
		wait        bool
		watch       bool
		keywords    []string
		companyKVs  []string
		maxAttempts int
		delay       time.Duration
	)
	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Generate a publication from a prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			prompt := strings.Join(args, " ")
			fmt.Printf("Generating content for prompt: %s\n", prompt)

			result, err := c.GeneratePublication(cmd.Context(), dto.GenerationRequest{
				Prompt:      prompt,
				CompanyInfo: companyInfoFromFlags(companyKVs),
				Keywords:    keywords,
			})
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("generation was rejected: %s", result.Error)
			}
			fmt.Printf("Generation started. Session ID: %s\n", result.SessionID)

			opts := client.WaitOptions{MaxAttempts: maxAttempts, Delay: delay}
			switch {
			case watch:
				return watchGeneration(cmd.Context(), cfg, c, result.SessionID, opts)
			case wait:
				status, err := c.WaitForGeneration(cmd.Context(), result.SessionID, opts)
				if err != nil {
					return err
				}
				printFinalStatus(cfg, status, result.PublicationID)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Block until the generation finishes")
	cmd.Flags().BoolVarP(&watch, "watch", "W", false, "Follow the generation interactively")
	cmd.Flags().StringSliceVarP(&keywords, "keyword", "K", []string{}, "SEO keywords to include")
	cmd.Flags().StringSliceVarP(&companyKVs, "company", "C", []string{}, "Company info as key=value (name, industry, description, audience, tone)")
	cmd.Flags().IntVarP(&maxAttempts, "max-attempts", "m", 60, "Maximum status polls before giving up")
	cmd.Flags().DurationVarP(&delay, "delay", "d", 5*time.Second, "Pause between status polls")
	return cmd
}

func bulkCmd(newClient func() client.Client) *cobra.Command {
	var (
		prompts     []string
		wait        bool
		maxAttempts int
		delay       time.Duration
	)
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Generate multiple publications in one bulk session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			result, err := c.BulkGeneratePublications(cmd.Context(), dto.BulkGenerationRequest{Prompts: prompts})
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("bulk generation was rejected: %s", result.Error)
			}
			fmt.Printf("Bulk generation started: %d prompts, bulk session %s\n", result.TotalPrompts, result.BulkSessionID)
			if !wait {
				return nil
			}
			status, err := c.WaitForBulkGeneration(cmd.Context(), result.BulkSessionID, client.WaitOptions{
				MaxAttempts: maxAttempts,
				Delay:       delay,
			})
			if err != nil {
				return err
			}
			printBulkStatus(status)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&prompts, "prompt", "P", []string{}, "Prompt to generate (repeatable)")
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Block until every member finishes")
	cmd.Flags().IntVarP(&maxAttempts, "max-attempts", "m", 120, "Maximum status polls before giving up")
	cmd.Flags().DurationVarP(&delay, "delay", "d", 10*time.Second, "Pause between status polls")
	return cmd
}

func statusCmd(newClient func() client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "status <session-id>",
		Short: "Check the status of a generation session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := newClient().CheckGenerationStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Status: %s\n", status.State)
			if status.StepName != "" {
				fmt.Printf("Step: %s\n", status.StepName)
			}
			if status.Progress != nil {
				fmt.Printf("Progress: %d%%\n", *status.Progress)
			}
			if status.IsCompleted() {
				fmt.Printf("Topic: %s\n", status.BlogTopic)
			}
			if status.IsFailed() {
				fmt.Printf("Error: %s\n", status.Error)
			}
			return nil
		},
	}
}

func bulkStatusCmd(newClient func() client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-status <bulk-session-id>",
		Short: "Check the status of a bulk generation session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := newClient().CheckBulkGenerationStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printBulkStatus(status)
			return nil
		},
	}
}

func watchGeneration(ctx context.Context, cfg *client.Config, c client.Client, sessionID string, opts client.WaitOptions) error {
	watcher := client.NewGenerationWatcher(ctx, c, sessionID, opts)
	if _, err := tea.NewProgram(watcher).Run(); err != nil {
		return err
	}
	status, err := watcher.Outcome()
	if err != nil {
		return err
	}
	printFinalStatus(cfg, status, "")
	return nil
}

func printFinalStatus(cfg *client.Config, status *dto.GenerationStatus, publicationID string) {
	if status.IsFailed() {
		fmt.Printf("Generation failed: %s\n", status.Error)
		return
	}
	fmt.Printf("Generation completed: %s (%d characters)\n", status.BlogTopic, len(status.Content))
	if publicationID != "" {
		webURL := strings.TrimSuffix(cfg.Url, "/api/v1")
		fmt.Println("Publication: " + termlink.ColorLink(status.BlogTopic,
			fmt.Sprintf("%s/publications/%s", webURL, publicationID), "italic green"))
	}
}

func printBulkStatus(status *dto.BulkStatus) {
	fmt.Printf("Bulk session %s: %d/%d completed, %d failed, %d pending\n",
		status.BulkSessionID, status.SuccessCount, status.TotalPrompts, status.ErrorCount, status.PendingCount)
	for _, member := range status.Publications {
		fmt.Printf("  - %s: %s\n", member.SessionID, member.State)
	}
}

func companyInfoFromFlags(kvs []string) *dto.CompanyInfo {
	if len(kvs) == 0 {
		return nil
	}
	values := util.SliceToMap(kvs)
	info := &dto.CompanyInfo{}
	if v, ok := values["name"]; ok {
		info.Name = lo.ToPtr(v)
	}
	if v, ok := values["description"]; ok {
		info.Description = lo.ToPtr(v)
	}
	if v, ok := values["industry"]; ok {
		info.Industry = lo.ToPtr(v)
	}
	if v, ok := values["audience"]; ok {
		info.TargetAudience = lo.ToPtr(v)
	}
	if v, ok := values["tone"]; ok {
		info.Tone = lo.ToPtr(v)
	}
	return info
}
