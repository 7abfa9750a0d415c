package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/draftrun/draftrun/internal/philosophy"
)

var philosophyCmd = &cobra.Command{
	Use:   "philosophy",
	Short: "Inspect and validate draft philosophies",
}

// philosophyShowCmd prints a philosophy's effective weight groups.
var philosophyShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show a philosophy's weight groups",
	Long: `Show prints the resolved weight groups, tier ladder, and sleeper
threshold of a philosophy file. With no file it shows the built-in
balanced profile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		phi, err := loadPhilosophy(path)
		if err != nil {
			return err
		}
		printPhilosophy(phi)
		return nil
	},
}

// philosophyValidateCmd checks a philosophy file without running it.
var philosophyValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a philosophy file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		phi, err := philosophy.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (philosophy %q, fingerprint %s)\n", args[0], phi.Name, phi.Fingerprint())
		return nil
	},
}

// philosophyInitCmd writes the stock profile as a starting point.
var philosophyInitCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Write the built-in balanced philosophy to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := yaml.Marshal(philosophy.Default())
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[0], raw, 0o644); err != nil {
			return fmt.Errorf("failed to write philosophy file: %w", err)
		}
		fmt.Printf("wrote %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(philosophyCmd)
	philosophyCmd.AddCommand(philosophyShowCmd)
	philosophyCmd.AddCommand(philosophyValidateCmd)
	philosophyCmd.AddCommand(philosophyInitCmd)
}

func printPhilosophy(phi philosophy.DraftPhilosophy) {
	fmt.Printf("Philosophy: %s (fingerprint %s)\n\n", phi.Name, phi.Fingerprint())

	fmt.Println("Global weights:")
	fmt.Printf("  %-14s %5.1f\n", "potential", phi.Global.Potential)
	fmt.Printf("  %-14s %5.1f\n", "overall", phi.Global.Overall)
	fmt.Printf("  %-14s %5.1f\n", "risk", phi.Global.Risk)
	fmt.Printf("  %-14s %5.1f\n", "signability", phi.Global.Signability)

	printGroup("Batter blend", phi.Batter.Active())
	printGroup("Starter blend", phi.SP.Active())
	printGroup("Reliever blend", phi.RP.Active())

	fmt.Println("\nTier thresholds:")
	fmt.Printf("  %-14s %5.1f\n", "elite", phi.Tiers.Elite)
	fmt.Printf("  %-14s %5.1f\n", "very good", phi.Tiers.VeryGood)
	fmt.Printf("  %-14s %5.1f\n", "good", phi.Tiers.Good)
	fmt.Printf("  %-14s %5.1f\n", "average", phi.Tiers.Average)

	fmt.Printf("\nSleeper gap threshold: %.1f\n", phi.SleeperGapThreshold)
}

func printGroup(title string, members []philosophy.SkillWeight) {
	fmt.Printf("\n%s:\n", title)
	for _, m := range members {
		fmt.Printf("  %-14s %5.1f\n", m.Skill, m.Weight)
	}
}
