package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/refactornator/procedural-maze-generator/output"
)

var (
	outDirectory     string
	outListType      string
	outCleanTempOnly bool
	outCleanMaxAge   int
)

func init() {
	outputCmd := &cobra.Command{
		Use:   "output",
		Short: "Manage the output directory",
		Long: `Inspect and maintain the managed output directory tree.

Examples:
  mazegen output init
  mazegen output list --type images
  mazegen output clean --temp-only --max-age 48
  mazegen output info`,
	}
	outputCmd.PersistentFlags().StringVarP(&outDirectory, "directory", "d", "", "output directory (default: from configuration)")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the output directory structure",
		Args:  cobra.NoArgs,
		RunE:  runOutputInit,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List files in the output directory",
		Args:  cobra.NoArgs,
		RunE:  runOutputList,
	}
	listCmd.Flags().StringVarP(&outListType, "type", "t", "", "list one category: images, ascii, svg, benchmarks, temp")

	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the output directory",
		Args:  cobra.NoArgs,
		RunE:  runOutputClean,
	}
	cleanCmd.Flags().BoolVar(&outCleanTempOnly, "temp-only", false, "only remove stale temporary files")
	cleanCmd.Flags().IntVar(&outCleanMaxAge, "max-age", 24, "age threshold in hours for --temp-only")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show output directory information",
		Args:  cobra.NoArgs,
		RunE:  runOutputInfo,
	}

	outputCmd.AddCommand(initCmd, listCmd, cleanCmd, infoCmd)
	rootCmd.AddCommand(outputCmd)
}

func runOutputInit(cmd *cobra.Command, args []string) error {
	mgr := outputManager()
	fmt.Printf("Initializing output directory: %s\n", mgr.Base())

	if err := mgr.Init(); err != nil {
		fmt.Println("✗ Failed to create output directory structure")
		return err
	}
	fmt.Println("✓ Output directory structure created successfully")

	fmt.Println("\nCreated directories:")
	for _, kind := range output.Kinds() {
		fmt.Printf("  - %s/\n", kind)
	}
	return nil
}

func runOutputList(cmd *cobra.Command, args []string) error {
	mgr := outputManager()
	fmt.Printf("Output directory: %s\n", mgr.Base())

	if _, err := os.Stat(mgr.Base()); os.IsNotExist(err) {
		fmt.Println("Output directory does not exist. Run 'mazegen output init' to create it.")
		return nil
	}

	listing, err := mgr.List(outListType)
	if err != nil {
		return err
	}

	total := 0
	for _, kind := range output.Kinds() {
		files := listing[kind]
		if len(files) == 0 {
			continue
		}
		fmt.Printf("\n%s (%d files):\n", strings.ToUpper(kind), len(files))
		for _, f := range files {
			fmt.Printf("  %s\n", f)
		}
		total += len(files)
	}

	if total == 0 {
		fmt.Println("\nNo files found in output directory.")
		return nil
	}
	fmt.Printf("\nTotal files: %d\n", total)

	size, err := mgr.Size()
	if err != nil {
		return err
	}
	fmt.Printf("Directory size: %s\n", output.FormatSize(size))
	return nil
}

func runOutputClean(cmd *cobra.Command, args []string) error {
	mgr := outputManager()
	fmt.Printf("Cleaning output directory: %s\n", mgr.Base())

	if _, err := os.Stat(mgr.Base()); os.IsNotExist(err) {
		fmt.Println("Output directory does not exist.")
		return nil
	}

	if outCleanTempOnly {
		cleaned, err := mgr.CleanTemp(time.Duration(outCleanMaxAge) * time.Hour)
		if err != nil {
			return err
		}
		fmt.Printf("Cleaned up %d temporary files older than %d hours\n", cleaned, outCleanMaxAge)
		return nil
	}

	fmt.Print("This will delete ALL files in the output directory. Continue? (y/N): ")
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
	default:
		fmt.Println("Cleaning cancelled")
		return nil
	}

	if err := mgr.Reset(); err != nil {
		return fmt.Errorf("clean output directory: %w", err)
	}
	fmt.Println("✓ Output directory cleaned successfully")
	fmt.Println("✓ Output directory structure recreated")
	return nil
}

func runOutputInfo(cmd *cobra.Command, args []string) error {
	mgr := outputManager()
	fmt.Println("Output Directory Information")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Path: %s\n", mgr.Base())

	_, statErr := os.Stat(mgr.Base())
	exists := statErr == nil
	fmt.Printf("Exists: %t\n", exists)

	if exists {
		size, err := mgr.Size()
		if err != nil {
			return err
		}
		fmt.Printf("Size: %s\n", output.FormatSize(size))

		listing, err := mgr.List("")
		if err != nil {
			return err
		}
		total := 0
		for _, files := range listing {
			total += len(files)
		}
		fmt.Printf("Total files: %d\n", total)
		for _, kind := range output.Kinds() {
			if n := len(listing[kind]); n > 0 {
				fmt.Printf("  %s: %d files\n", kind, n)
			}
		}
	}

	fmt.Println("\nConfiguration:")
	fmt.Printf("  Auto-create directories: %t\n", cfg.Export.AutoCreateDirs)
	fmt.Printf("  Organize by algorithm: %t\n", cfg.Export.OrganizeByAlgorithm)
	fmt.Printf("  Organize by date: %t\n", cfg.Export.OrganizeByDate)
	fmt.Printf("  Use timestamped filenames: %t\n", cfg.Export.TimestampedNames)
	fmt.Printf("  Cleanup temp files: %t\n", cfg.Export.CleanupTempFiles)
	fmt.Printf("  Temp file max age: %d hours\n", cfg.Export.TempFileMaxAge)
	return nil
}

// outputManager builds the manager for the management subcommands. Unlike
// newOutputManager it never creates directories or cleans temp files, so
// 'output list' and 'output info' stay read-only.
func outputManager() *output.Manager {
	dir := outDirectory
	if dir == "" {
		dir = cfg.Export.OutputDir
	}
	return output.NewManager(dir)
}
