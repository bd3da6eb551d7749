package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/anoline/anoline/internal/services"
)

func init() {
	ganttCmd.AddCommand(scheduleCmd)
	ganttCmd.AddCommand(adjustCmd)
	ganttCmd.AddCommand(shiftCmd)
	ganttCmd.AddCommand(ganttDataCmd)
	ganttCmd.AddCommand(deleteScheduleCmd)
	ganttCmd.AddCommand(purgeCmd)

	scheduleCmd.Flags().StringP("job", "j", "", "Component job ID to schedule")
	scheduleCmd.Flags().StringP("start", "t", "", "Start time (RFC 3339, e.g. 2026-08-29T08:00:00Z)")
	scheduleCmd.Flags().String("rinse-seal", "", "Rinse/seal route (default or even_rinse_cold_seal_b)")
	scheduleCmd.Flags().String("tank", "", "Anodising tank (Anodising 1A, 1B, 2A or 2B)")
	_ = scheduleCmd.MarkFlagRequired("job")
	_ = scheduleCmd.MarkFlagRequired("start")

	adjustCmd.Flags().StringP("job", "j", "", "Component job ID to adjust")
	adjustCmd.Flags().String("rinse-seal", "", "Rinse/seal route (default or even_rinse_cold_seal_b)")
	adjustCmd.Flags().String("tank", "", "Anodising tank (Anodising 1A, 1B, 2A or 2B)")
	_ = adjustCmd.MarkFlagRequired("job")

	shiftCmd.Flags().StringP("job", "j", "", "Component job ID to shift")
	shiftCmd.Flags().IntP("minutes", "m", 0, "Minutes to shift by, negative moves earlier")
	_ = shiftCmd.MarkFlagRequired("job")
	_ = shiftCmd.MarkFlagRequired("minutes")

	deleteScheduleCmd.Flags().StringP("job", "j", "", "Component job ID whose loads to delete")
	_ = deleteScheduleCmd.MarkFlagRequired("job")
}

var ganttCmd = &cobra.Command{
	Use:   "gantt",
	Short: "Manage scheduled load timelines",
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Place every load of a component job on the timeline",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobID, err := jobFlag(cmd)
		if err != nil {
			return err
		}

		rawStart, _ := cmd.Flags().GetString("start")
		start, err := time.Parse(time.RFC3339, rawStart)
		if err != nil {
			return fmt.Errorf("invalid start time: %w", err)
		}

		rinseSeal, _ := cmd.Flags().GetString("rinse-seal")
		tank, _ := cmd.Flags().GetString("tank")

		loads, err := apiClient.ScheduleJob(context.Background(), &services.ScheduleRequest{
			ComponentJobID: jobID,
			Start:          start,
			RinseSealRoute: rinseSeal,
			AnodisingTank:  tank,
		})
		if err != nil {
			return fmt.Errorf("error scheduling job: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %d loads for component job %d\n", len(loads), jobID)
		return nil
	},
}

var adjustCmd = &cobra.Command{
	Use:   "adjust",
	Short: "Relabel the slots of a scheduled component job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobID, err := jobFlag(cmd)
		if err != nil {
			return err
		}

		rinseSeal, _ := cmd.Flags().GetString("rinse-seal")
		tank, _ := cmd.Flags().GetString("tank")

		err = apiClient.AdjustJob(context.Background(), &services.AdjustRequest{
			ComponentJobID: jobID,
			RinseSealRoute: rinseSeal,
			AnodisingTank:  tank,
		})
		if err != nil {
			return fmt.Errorf("error adjusting job: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Adjusted component job %d\n", jobID)
		return nil
	},
}

var shiftCmd = &cobra.Command{
	Use:   "shift",
	Short: "Rigidly move a scheduled component job in time",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobID, err := jobFlag(cmd)
		if err != nil {
			return err
		}

		minutes, _ := cmd.Flags().GetInt("minutes")

		err = apiClient.ShiftJob(context.Background(), &services.ShiftRequest{
			ComponentJobID: jobID,
			DeltaMinutes:   minutes,
		})
		if err != nil {
			return fmt.Errorf("error shifting job: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Shifted component job %d by %d minutes\n", jobID, minutes)
		return nil
	},
}

var ganttDataCmd = &cobra.Command{
	Use:   "data",
	Short: "Fetch the full chart payload",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := apiClient.GanttData(context.Background())
		if err != nil {
			return fmt.Errorf("error fetching gantt data: %w", err)
		}

		prettyJSON, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("error formatting response: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(prettyJSON))
		return nil
	},
}

var deleteScheduleCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete every scheduled load of a component job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobID, err := jobFlag(cmd)
		if err != nil {
			return err
		}

		if err := apiClient.DeleteScheduledJob(context.Background(), jobID); err != nil {
			return fmt.Errorf("error deleting schedule: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted schedule for component job %d\n", jobID)
		return nil
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Purge scheduled loads past the retention horizon",
	RunE: func(cmd *cobra.Command, _ []string) error {
		deleted, err := apiClient.DeleteExpired(context.Background())
		if err != nil {
			return fmt.Errorf("error purging expired loads: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Purged %d expired loads\n", deleted)
		return nil
	},
}

// GetGanttCmd returns the gantt command
func GetGanttCmd() *cobra.Command {
	return ganttCmd
}

func jobFlag(cmd *cobra.Command) (uint, error) {
	raw, _ := cmd.Flags().GetString("job")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid job id format: %w", err)
	}
	return uint(id), nil
}
