// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/booking-service/internal/types"
)

var bookingCmd = &cobra.Command{
	Use:   "booking",
	Short: "Manage your bookings",
}

var listBookingsCmd = &cobra.Command{
	Use:   "list",
	Short: "List your bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp := struct {
			Bookings []*types.Booking `json:"bookings"`
		}{}
		if err := newAPIClient().do(context.Background(), "GET", "/bookings", nil, &resp); err != nil {
			return fmt.Errorf("failed to list bookings: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tROOM\tSTART\tEND")
		for _, b := range resp.Bookings {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				b.ID, b.RoomID,
				b.StartTime.Format(time.RFC3339),
				b.EndTime.Format(time.RFC3339),
			)
		}
		w.Flush()
		return nil
	},
}

var createBookingCmd = &cobra.Command{
	Use:   "create [room-id] [date] [start]",
	Short: "Book a room slot",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetInt("duration")
		tzOffset, _ := cmd.Flags().GetInt("tz-offset")

		body := map[string]any{
			"room_id":   args[0],
			"date":      args[1],
			"start":     args[2],
			"duration":  duration,
			"tz_offset": tzOffset,
		}
		resp := struct {
			Booking *types.Booking `json:"booking"`
		}{}
		if err := newAPIClient().do(context.Background(), "POST", "/bookings", body, &resp); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		fmt.Printf("Booking created: %s\n", resp.Booking.ID)
		return nil
	},
}

var cancelBookingCmd = &cobra.Command{
	Use:   "cancel [id]",
	Short: "Cancel one of your bookings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().do(context.Background(), "DELETE", "/bookings/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		fmt.Printf("Booking cancelled: %s\n", args[0])
		return nil
	},
}

func init() {
	createBookingCmd.Flags().Int("duration", 1, "Slot duration in hours (1 or 2)")
	createBookingCmd.Flags().Int("tz-offset", 0, "Timezone offset in minutes west of UTC")

	bookingCmd.AddCommand(listBookingsCmd)
	bookingCmd.AddCommand(createBookingCmd)
	bookingCmd.AddCommand(cancelBookingCmd)
	rootCmd.AddCommand(bookingCmd)
}
