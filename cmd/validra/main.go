package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Fmanuel809/validra-sub002/pkg/engine"
	"github.com/Fmanuel809/validra-sub002/pkg/helper"
	"github.com/Fmanuel809/validra-sub002/pkg/logsink"
	"github.com/Fmanuel809/validra-sub002/pkg/output"
	"github.com/Fmanuel809/validra-sub002/pkg/rulesetcfg"
)

var version = "dev"

const defaultFilePermissions = 0644

var (
	flagRuleSet  string
	flagOutput   string
	flagNoColor  bool
	flagDebug    bool
	flagFailFast bool
	flagCategory string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "validra",
	Short:   "Validra - declarative record validation engine",
	Version: version,
}

var checkCmd = &cobra.Command{
	Use:   "check <records.json>",
	Short: "Validate records in a JSON file against a rule set",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

var helpersCmd = &cobra.Command{
	Use:   "helpers",
	Short: "List available helpers",
	RunE:  runHelpers,
}

var explainCmd = &cobra.Command{
	Use:   "explain <helper>",
	Short: "Explain a specific helper",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a validra.yaml rule set",
	RunE:  runInit,
}

func init() {
	checkCmd.Flags().StringVarP(&flagRuleSet, "rules", "r", "", "Path to a rule set YAML file (defaults to discovering validra.yaml)")
	checkCmd.Flags().StringVarP(&flagOutput, "output", "o", "console", "Output format (console, summary)")
	checkCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable coloured output")
	checkCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	checkCmd.Flags().BoolVar(&flagFailFast, "fail-fast", false, "Stop at a record's first failing rule")

	helpersCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Filter by category")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(helpersCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(initCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	start := time.Now()

	records, err := loadRecords(args[0])
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	rs, err := loadRuleSet()
	if err != nil {
		return fmt.Errorf("failed to load rule set: %w", err)
	}

	opts := rs.ToOptions()
	if flagFailFast {
		opts = append(opts, engine.WithFailFast(true))
	}
	if flagDebug {
		opts = append(opts, engine.WithDebug(true), engine.WithLogger(logsink.NewText(slog.LevelDebug)))
	}

	e, err := engine.New(rs.ToRules(), opts...)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	writer := output.NewConsoleWriter().WithWriter(os.Stdout).WithNoColor(flagNoColor)

	var validated, failed int
	for _, rec := range records {
		result, err := e.Validate(cmd.Context(), rec)
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}
		if result.IsValid {
			validated++
		} else {
			failed++
		}
		if flagOutput != "summary" {
			if err := writer.Write(result); err != nil {
				return err
			}
		}
	}

	writer.WriteSummary(output.Stats{
		RecordsValidated: validated,
		RecordsFailed:    failed,
		Duration:         time.Since(start).Seconds(),
	})

	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

func loadRecords(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var single map[string]any
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("expected a JSON object or array of objects: %w", err)
	}
	return []map[string]any{single}, nil
}

func loadRuleSet() (*rulesetcfg.RuleSet, error) {
	if flagRuleSet != "" {
		return rulesetcfg.LoadRuleSet(flagRuleSet)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return rulesetcfg.LoadRuleSetWithDefaults(cwd)
}

func runHelpers(cmd *cobra.Command, args []string) error {
	infos := helper.List()

	fmt.Println("AVAILABLE HELPERS")
	fmt.Println("=================")

	currentCategory := ""
	for _, info := range infos {
		if flagCategory != "" && info.Category != flagCategory {
			continue
		}
		if info.Category != currentCategory {
			currentCategory = info.Category
			fmt.Printf("\n[%s]\n", currentCategory)
		}
		fmt.Printf("  %-16s %s\n", info.Name, info.Description)
	}

	fmt.Printf("\nTotal: %d helpers\n", helper.Count())
	return nil
}

func runExplain(cmd *cobra.Command, args []string) error {
	name := args[0]

	var found *struct {
		Name, Description, Example, Category string
	}
	for _, info := range helper.List() {
		if info.Name == name {
			found = &struct{ Name, Description, Example, Category string }{
				info.Name, info.Description, info.Example, info.Category,
			}
			break
		}
	}
	if found == nil {
		return fmt.Errorf("unknown helper: %s", name)
	}

	fmt.Printf("HELPER: %s\n", found.Name)
	fmt.Printf("CATEGORY: %s\n", found.Category)
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Printf("  %s\n", found.Description)
	fmt.Println()
	fmt.Println("EXAMPLE:")
	fmt.Printf("  %s\n", found.Example)
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	content := `# Validra rule set
version: 1

options:
  fail_fast: false
  max_errors: 0

rules:
  - op: isEmail
    field: email
`
	filename := "validra.yaml"
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("%s already exists", filename)
	}
	if err := os.WriteFile(filename, []byte(content), defaultFilePermissions); err != nil {
		return fmt.Errorf("failed to create rule set: %w", err)
	}
	fmt.Printf("Created %s\n", filename)
	return nil
}
