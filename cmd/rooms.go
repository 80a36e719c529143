// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/booking-service/internal/types"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Browse rooms and their availability",
}

var listRoomsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rooms",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp := struct {
			Rooms []*types.Room `json:"rooms"`
		}{}
		if err := newAPIClient().do(context.Background(), "GET", "/rooms", nil, &resp); err != nil {
			return fmt.Errorf("failed to list rooms: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCAPACITY")
		for _, r := range resp.Rooms {
			fmt.Fprintf(w, "%s\t%s\t%d\n", r.ID, r.Name, r.Capacity)
		}
		w.Flush()
		return nil
	},
}

var availableRoomsCmd = &cobra.Command{
	Use:   "available [date] [start]",
	Short: "List rooms free for a slot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetInt("duration")
		tzOffset, _ := cmd.Flags().GetInt("tz-offset")

		path := fmt.Sprintf(
			"/rooms/available?date=%s&start=%s&duration=%d&tz_offset=%d",
			args[0], args[1], duration, tzOffset,
		)
		resp := struct {
			Rooms []*types.Room `json:"rooms"`
		}{}
		if err := newAPIClient().do(context.Background(), "GET", path, nil, &resp); err != nil {
			return fmt.Errorf("failed to list available rooms: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCAPACITY")
		for _, r := range resp.Rooms {
			fmt.Fprintf(w, "%s\t%s\t%d\n", r.ID, r.Name, r.Capacity)
		}
		w.Flush()
		return nil
	},
}

var roomSlotsCmd = &cobra.Command{
	Use:   "slots [room-id] [date]",
	Short: "List free slots for a room on a date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tzOffset, _ := cmd.Flags().GetInt("tz-offset")

		path := fmt.Sprintf("/rooms/%s/slots?date=%s&tz_offset=%d", args[0], args[1], tzOffset)
		resp := struct {
			Slots []types.Slot `json:"slots"`
		}{}
		if err := newAPIClient().do(context.Background(), "GET", path, nil, &resp); err != nil {
			return fmt.Errorf("failed to list slots: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "START\tEND\tHOURS")
		for _, s := range resp.Slots {
			fmt.Fprintf(w, "%s\t%s\t%d\n", s.Start, s.End, s.DurationHours)
		}
		w.Flush()
		return nil
	},
}

func init() {
	availableRoomsCmd.Flags().Int("duration", 1, "Slot duration in hours (1 or 2)")
	availableRoomsCmd.Flags().Int("tz-offset", 0, "Timezone offset in minutes west of UTC")
	roomSlotsCmd.Flags().Int("tz-offset", 0, "Timezone offset in minutes west of UTC")

	roomsCmd.AddCommand(listRoomsCmd)
	roomsCmd.AddCommand(availableRoomsCmd)
	roomsCmd.AddCommand(roomSlotsCmd)
	rootCmd.AddCommand(roomsCmd)
}
