package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	v1 "syncronic.com/empmonitor/client/v1"
)

var serverURL string

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Talk to a running monitor server",
}

func newClientCommands() []*cobra.Command {
	var name, email string
	registerCmd := &cobra.Command{
		Use:   "register <employeeId>",
		Short: "Register an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := v1.NewClient(serverURL).Employees.Register(cmd.Context(), v1.RegisterRequest{
				EmployeeID: args[0],
				Name:       name,
				Email:      email,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]bool{"created": created})
		},
	}
	registerCmd.Flags().StringVar(&name, "name", "", "display name")
	registerCmd.Flags().StringVar(&email, "email", "", "email address")

	var upload v1.LogUpload
	var screenshot, webcam string
	pushCmd := &cobra.Command{
		Use:   "push <employeeId>",
		Short: "Upload a log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			upload.EmployeeID = args[0]
			var err error
			if upload.Screenshot, err = readFilePart(screenshot); err != nil {
				return err
			}
			if upload.Webcam, err = readFilePart(webcam); err != nil {
				return err
			}
			entry, err := v1.NewClient(serverURL).Logs.Upload(cmd.Context(), upload)
			if err != nil {
				return err
			}
			return printJSON(cmd, entry)
		},
	}
	pushCmd.Flags().StringVar(&upload.Status, "status", "", "activity status")
	pushCmd.Flags().StringVar(&upload.WebLog, "web-log", "", "browsing activity")
	pushCmd.Flags().StringVar(&upload.SystemInfo, "system-info", "", "host description")
	pushCmd.Flags().IntVar(&upload.OnTimeMinutes, "on-time", 0, "active minutes in this interval")
	pushCmd.Flags().StringVar(&screenshot, "screenshot", "", "screenshot image file")
	pushCmd.Flags().StringVar(&webcam, "webcam", "", "webcam image file")

	logsCmd := &cobra.Command{
		Use:   "logs [employeeId]",
		Short: "List logs, optionally for one employee",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logs := v1.NewClient(serverURL).Logs
			if len(args) == 1 {
				entries, err := logs.ListByEmployee(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd, entries)
			}
			entries, err := logs.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, entries)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if err := v1.NewClient(serverURL).Logs.Delete(cmd.Context(), uint(id)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted log %d\n", id)
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the latest log of every employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := v1.NewClient(serverURL).Reports.Status(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, entries)
		},
	}

	var xlsxPath string
	uptimeCmd := &cobra.Command{
		Use:   "uptime",
		Short: "Show the uptime summary, or save it as xlsx with --xlsx",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := v1.NewClient(serverURL).Reports
			if xlsxPath == "" {
				rows, err := reports.UptimeSummary(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, rows)
			}

			f, err := os.Create(xlsxPath)
			if err != nil {
				return err
			}
			if err := reports.ExportUptimeSummary(cmd.Context(), f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	uptimeCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the summary workbook to this file")

	return []*cobra.Command{registerCmd, pushCmd, logsCmd, deleteCmd, statusCmd, uptimeCmd}
}

func init() {
	clientCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "http://localhost:3000", "monitor server base URL")
	clientCmd.AddCommand(newClientCommands()...)
}

func readFilePart(path string) (*v1.FilePart, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &v1.FilePart{Filename: filepath.Base(path), Data: data}, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
