package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/anoline/anoline/internal/db/models"
	"github.com/anoline/anoline/internal/services"
)

// planOutput represents the filtered output for a compiled component job
type planOutput struct {
	ID                  uint               `json:"id"`
	PartNumber          string             `json:"part_number"`
	Quantity            int                `json:"quantity"`
	RequiredJigs        int                `json:"required_jigs"`
	LoadsRequired       int                `json:"loads_required"`
	UnitsPerLoad        int                `json:"units_per_load"`
	QuantityOfFinalLoad int                `json:"quantity_of_final_load"`
	Operations          []models.Operation `json:"operations"`
}

func init() {
	plansCmd.AddCommand(createPlanCmd)
	plansCmd.AddCommand(previewPlanCmd)
	plansCmd.AddCommand(getPlanCmd)
	plansCmd.AddCommand(deletePlanCmd)

	for _, c := range []*cobra.Command{createPlanCmd, previewPlanCmd} {
		c.Flags().StringP("part", "p", "", "Part number to compile")
		c.Flags().IntP("quantity", "q", 0, "Order line quantity")
		c.Flags().Uint("order-line", 0, "Order line ID")
		c.Flags().Uint("order", 0, "Order ID")
		c.Flags().Uint("customer", 0, "Customer ID")
		c.Flags().String("customer-name", "", "Customer name")
		_ = c.MarkFlagRequired("part")
		_ = c.MarkFlagRequired("quantity")
	}

	getPlanCmd.Flags().StringP("id", "i", "", "Component job ID to fetch")
	_ = getPlanCmd.MarkFlagRequired("id")

	deletePlanCmd.Flags().StringP("id", "i", "", "Component job ID to delete")
	_ = deletePlanCmd.MarkFlagRequired("id")
}

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Manage compiled component jobs",
}

var createPlanCmd = &cobra.Command{
	Use:   "create",
	Short: "Compile and persist a component job for an order line",
	RunE: func(cmd *cobra.Command, _ []string) error {
		req, err := planRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		job, err := apiClient.CreatePlan(context.Background(), req)
		if err != nil {
			return fmt.Errorf("error creating plan: %w", err)
		}

		return printPlan(cmd, job)
	},
}

var previewPlanCmd = &cobra.Command{
	Use:   "preview",
	Short: "Compile a component job without persisting it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		req, err := planRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		job, err := apiClient.PreviewPlan(context.Background(), req)
		if err != nil {
			return fmt.Errorf("error previewing plan: %w", err)
		}

		return printPlan(cmd, job)
	},
}

var getPlanCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a specific component job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := idFlag(cmd)
		if err != nil {
			return err
		}

		job, err := apiClient.GetPlan(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error fetching plan: %w", err)
		}

		return printPlan(cmd, job)
	},
}

var deletePlanCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a component job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := idFlag(cmd)
		if err != nil {
			return err
		}

		if err := apiClient.DeletePlan(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting plan: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted component job %d\n", id)
		return nil
	},
}

// GetPlansCmd returns the plans command
func GetPlansCmd() *cobra.Command {
	return plansCmd
}

func planRequestFromFlags(cmd *cobra.Command) (*services.PlanRequest, error) {
	part, _ := cmd.Flags().GetString("part")
	quantity, _ := cmd.Flags().GetInt("quantity")
	orderLine, _ := cmd.Flags().GetUint("order-line")
	order, _ := cmd.Flags().GetUint("order")
	customer, _ := cmd.Flags().GetUint("customer")
	customerName, _ := cmd.Flags().GetString("customer-name")

	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	return &services.PlanRequest{
		PartNumber:   part,
		Quantity:     quantity,
		OrderLineID:  orderLine,
		OrderID:      order,
		CustomerID:   customer,
		CustomerName: customerName,
	}, nil
}

func idFlag(cmd *cobra.Command) (uint, error) {
	raw, _ := cmd.Flags().GetString("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id format: %w", err)
	}
	return uint(id), nil
}

func printPlan(cmd *cobra.Command, job models.ComponentJob) error {
	output := planOutput{
		ID:                  job.ID,
		PartNumber:          job.PartNumber,
		Quantity:            job.Quantity,
		RequiredJigs:        job.RequiredJigs,
		LoadsRequired:       job.LoadsRequired,
		UnitsPerLoad:        job.UnitsPerLoad,
		QuantityOfFinalLoad: job.QuantityOfFinalLoad,
		Operations:          job.Operations,
	}

	prettyJSON, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(prettyJSON))
	return nil
}
