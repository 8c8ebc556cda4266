package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khoahotran/dynamic-profile/internal/application/render"
	profileUC "github.com/khoahotran/dynamic-profile/internal/application/usecase/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var htmlOut string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Summarize the profile and the sections a visitor sees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, closeStore, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			view := render.Build(s.Current())
			w := cmd.OutOrStdout()
			pi := view.Document.PersonalInfo
			fmt.Fprintf(w, "%s - %s\n", pi.Name, pi.Title)
			if s.IsNewUser() {
				fmt.Fprintln(w, "(demo profile, run 'profilectl onboard' to start your own)")
			}
			fmt.Fprintf(w, "Layout: %s  Theme: %s\n", view.Layout, view.Theme)
			titles := make([]string, 0, len(view.Sections))
			for _, sec := range view.Sections {
				titles = append(titles, sec.Title)
			}
			fmt.Fprintf(w, "Visible sections: %s\n", strings.Join(titles, ", "))

			if htmlOut == "" {
				return nil
			}
			f, err := os.Create(htmlOut)
			if err != nil {
				return fmt.Errorf("failed to create html file: %w", err)
			}
			defer f.Close()
			if err := render.HTML(f, view, render.PageState{}); err != nil {
				return err
			}
			fmt.Fprintf(w, "Rendered page to %s\n", htmlOut)
			return nil
		},
	}
	cmd.Flags().StringVar(&htmlOut, "html", "", "Also render the public page to this file")
	return cmd
}

func newOnboardCmd(opts *rootOptions) *cobra.Command {
	var name, title string
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Replace the demo profile with an empty profile for a new owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, log, closeStore, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			input := profileUC.OnboardingInput{Name: name, Title: title}
			output, err := profileUC.NewProfileUseCase(s, log).ExecuteCompleteOnboarding(cmd.Context(), input)
			if err != nil {
				var appErr *apperror.AppError
				if errors.As(err, &appErr) {
					return errors.New(appErr.Details)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", output.Profile.PersonalInfo.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Your name (required)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Your professional title")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a file is an importable profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			if _, err := profileUC.ParseDocument(raw); err != nil {
				w := cmd.OutOrStdout()
				fmt.Fprintln(w, "Validation failed:")
				var appErr *apperror.AppError
				if errors.As(err, &appErr) {
					for _, d := range strings.Split(appErr.Details, "; ") {
						fmt.Fprintf(w, "  - %s\n", d)
					}
				} else {
					fmt.Fprintf(w, "  - %v\n", err)
				}
				return errors.New("file is not a valid profile")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
			return nil
		},
	}
}
