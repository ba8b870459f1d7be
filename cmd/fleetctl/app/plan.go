package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
	"github.com/Eursukkul/buggy-fleet/internal/csvimport"
	"github.com/Eursukkul/buggy-fleet/pkg/log"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type planOptions struct {
	File    string
	TwoSeat int
	OneSeat int
	JSON    bool
}

func (o *planOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.File, "file", "f", o.File, "Reservation sheet export (CSV, UTF-8 or Shift_JIS).")
	fs.IntVar(&o.TwoSeat, "two-seat", o.TwoSeat, "Two-seat vehicles in stock.")
	fs.IntVar(&o.OneSeat, "one-seat", o.OneSeat, "One-seat vehicles in stock.")
	fs.BoolVar(&o.JSON, "json", o.JSON, "Print the plan as JSON instead of tables.")
}

func (o *planOptions) Validate() error {
	if o.File == "" {
		return fmt.Errorf("--file is required")
	}
	if o.TwoSeat < 0 || o.OneSeat < 0 {
		return fmt.Errorf("vehicle stock must be zero or more")
	}
	return nil
}

func NewPlanCommand() *cobra.Command {
	opts := &planOptions{TwoSeat: 3, OneSeat: 3}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the vehicle plan for a reservation sheet.",
		Example: `  fleetctl plan --file today.csv --two-seat 3 --one-seat 3
  fleetctl plan -f today.csv --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}

			f, err := os.Open(opts.File)
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := csvimport.Read(f)
			if err != nil {
				return err
			}

			plan := allocation.Build(rows, allocation.Fleet{TwoSeat: opts.TwoSeat, OneSeat: opts.OneSeat})
			log.Debug("plan computed", "file", opts.File, "rows", len(rows), "slots", len(plan.Report.Slots))

			out := cmd.OutOrStdout()
			if opts.JSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}
			return printPlan(out, plan)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func printPlan(w io.Writer, plan allocation.Plan) error {
	bookings := uitable.New()
	bookings.MaxColWidth = 24
	bookings.AddRow("START", "CUSTOMER", "ADULTS", "CHILDREN", "PRICE", "STATUS", "DRIVERS", "PASSENGERS", "VEHICLES", "TAG")
	for _, b := range plan.Bookings {
		bookings.AddRow(b.StartTime, b.CustomerName, b.AdultCount, b.ChildCount, b.TotalPrice,
			b.Status, b.Drivers, b.Passengers, b.VehicleSummary, b.Tag)
	}

	slots := uitable.New()
	slots.AddRow("SLOT", "BOOKINGS", "2-SEAT REQ", "1-SEAT REQ", "OVERFLOW", "2-SEAT", "1-SEAT", "2-SEAT SHORT", "CHECK")
	for _, s := range plan.Report.Slots {
		check := "OK"
		if s.OverCapacity {
			check = "OVER CAPACITY"
		}
		slots.AddRow(s.Slot, s.Bookings, s.TwoSeatRequired, s.OneSeatRequired, s.Overflow,
			s.TwoSeatFinal, s.OneSeatFinal, s.TwoSeatShortfall, check)
	}

	_, err := fmt.Fprintf(w, "%s\n\n%s\n\nfleet: 2-seat %d, 1-seat %d; over capacity slots: %d\n",
		bookings, slots, plan.Report.Fleet.TwoSeat, plan.Report.Fleet.OneSeat, len(plan.Report.OverCapacitySlots))
	return err
}
