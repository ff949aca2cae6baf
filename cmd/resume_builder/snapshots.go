package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openresume/resume-builder/internal/observability"
	"github.com/openresume/resume-builder/internal/types"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Manage saved resume snapshots",
	Long:  `Saved snapshots are named copies of the working resume that can be restored later.`,
}

var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved snapshots",
	RunE:  runSnapshotsList,
}

var snapshotsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the working resume as a named snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotsSave,
}

var snapshotsRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Make a snapshot the working resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotsRestore,
}

var snapshotsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotsDelete,
}

var (
	snapshotsConfigPath *string
	snapshotsVerbose    *bool
)

func init() {
	// Shared across the subcommands, so they sit on the parent as
	// persistent flags.
	snapshotsConfigPath = snapshotsCmd.PersistentFlags().String("config", "", "Path to config.json file (values can be overridden by other flags)")
	snapshotsVerbose = snapshotsCmd.PersistentFlags().BoolP("verbose", "v", false, "Print detailed debug information")
	snapshotsCmd.PersistentFlags().String("state-dir", "", "Directory for file-backed state")
	snapshotsCmd.PersistentFlags().String("redis-url", "", "Redis URL; file storage when empty")

	for _, sub := range []*cobra.Command{snapshotsListCmd, snapshotsSaveCmd, snapshotsRestoreCmd, snapshotsDeleteCmd} {
		snapshotsCmd.AddCommand(sub)
	}
	rootCmd.AddCommand(snapshotsCmd)
}

func runSnapshotsList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd, *snapshotsConfigPath, *snapshotsVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	saved := a.adapter.LoadSavedResumes(cmd.Context())
	observability.NewPrinter(os.Stdout).PrintSnapshots(saved)
	return nil
}

func runSnapshotsSave(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, *snapshotsConfigPath, *snapshotsVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	data := a.adapter.LoadResume(cmd.Context())
	snapshot := types.NewSavedResume(args[0], *data)

	saved := a.adapter.LoadSavedResumes(cmd.Context())
	saved = append(saved, snapshot)
	a.adapter.SaveSavedResumes(cmd.Context(), saved)

	fmt.Printf("Saved snapshot %q (%s)\n", snapshot.Name, snapshot.ID)
	return nil
}

func runSnapshotsRestore(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, *snapshotsConfigPath, *snapshotsVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	saved := a.adapter.LoadSavedResumes(cmd.Context())
	for _, snapshot := range saved {
		if snapshot.ID == args[0] {
			data := snapshot.Data
			a.adapter.SaveResume(cmd.Context(), &data)
			fmt.Printf("Restored snapshot %q\n", snapshot.Name)
			return nil
		}
	}
	return fmt.Errorf("snapshot not found: %s", args[0])
}

func runSnapshotsDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, *snapshotsConfigPath, *snapshotsVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	saved := a.adapter.LoadSavedResumes(cmd.Context())
	for i, snapshot := range saved {
		if snapshot.ID == args[0] {
			saved = append(saved[:i], saved[i+1:]...)
			a.adapter.SaveSavedResumes(cmd.Context(), saved)
			fmt.Printf("Deleted snapshot %q\n", snapshot.Name)
			return nil
		}
	}
	return fmt.Errorf("snapshot not found: %s", args[0])
}
