package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/amterp/shades/internal/config"
	"github.com/amterp/shades/internal/service"
	"github.com/amterp/ra"
)

func registerDoctor(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("doctor")
	cmd.SetDescription("Check the config and name table. Exit 0 if healthy, 1 if errors found.")

	ctx.DoctorFix, _ = ra.NewBool("fix").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Apply automatic fixes to the config file").
		Register(cmd)

	ctx.DoctorUsed, _ = parent.RegisterCmd(cmd)
}

func runDoctor(runCtx context.Context, fix bool, jsonOutput bool) {
	// Doctor skips NewApp: a broken pool_file is one of the things it reports on
	loggerFromContext(runCtx).Debug("running doctor", "fix", fix)
	doctorService := service.NewDoctorService(config.NewPaths())

	report, err := doctorService.Diagnose()
	if err != nil {
		Fatal(err)
	}

	if fix && len(report.Issues) > 0 {
		report, err = doctorService.Fix(report)
		if err != nil {
			Fatal(err)
		}
	}

	if jsonOutput {
		if err := printJson(report); err != nil {
			Fatal(err)
		}
	} else {
		printDoctorReport(report, fix)
	}

	if report.HasErrors() {
		os.Exit(1)
	}
}

func printDoctorReport(report *service.DiagnosticReport, didFix bool) {
	fmt.Println(LabelValue("Config", report.ConfigPath, 7))
	if pool := report.Pool; pool != nil {
		source := pool.Path
		if pool.Builtin {
			source = "built-in"
		}
		fmt.Println(LabelValue("Names", fmt.Sprintf("%s (%d names, %d shades, %d synonyms)",
			source, pool.Names, pool.Shades, pool.Synonyms), 7))
	}
	fmt.Println()

	if didFix && report.Summary.Fixed > 0 {
		PrintSuccess("Fixed %d issue(s)", report.Summary.Fixed)
		fmt.Println()
	}

	if len(report.Issues) == 0 {
		if didFix && report.Summary.Fixed > 0 {
			PrintSuccess("All issues resolved")
		} else {
			PrintSuccess("No issues found")
		}
		return
	}

	// Errors first, then warnings
	for _, severity := range []service.IssueSeverity{service.SeverityError, service.SeverityWarning} {
		for _, issue := range report.Issues {
			if issue.Severity == severity {
				printIssue(issue)
			}
		}
	}

	fmt.Println()
	var parts []string
	if report.Summary.Errors > 0 {
		parts = append(parts, StyleError.Render(fmt.Sprintf("%d error(s)", report.Summary.Errors)))
	}
	if report.Summary.Warnings > 0 {
		parts = append(parts, StyleWarning.Render(fmt.Sprintf("%d warning(s)", report.Summary.Warnings)))
	}
	if report.Summary.FixFailed > 0 {
		parts = append(parts, StyleError.Render(fmt.Sprintf("%d fix failed", report.Summary.FixFailed)))
	}
	fmt.Printf("Summary: %s\n", strings.Join(parts, ", "))

	if !didFix {
		for _, issue := range report.Issues {
			if issue.Fixable {
				fmt.Println()
				PrintInfo("Run 'shades doctor --fix' to apply automatic fixes")
				break
			}
		}
	}
}

func printIssue(issue service.Issue) {
	style := StyleWarning
	icon := IconWarning
	if issue.Severity == service.SeverityError {
		style = StyleError
		icon = IconError
	}

	field := ""
	if issue.Field != "" {
		field = " " + RenderMuted(issue.Field)
	}
	fmt.Printf("%s %s%s %s\n", style.Render(icon), style.Render("["+issue.Code+"]"), field, issue.Message)

	switch {
	case issue.FixError != "":
		fmt.Printf("  %s Fix failed: %s\n", StyleError.Render(IconInfo), issue.FixError)
	case issue.FixAction != "":
		fmt.Printf("  %s Fix: %s\n", RenderMuted(IconInfo), issue.FixAction)
	}
}
