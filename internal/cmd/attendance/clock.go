package attendance

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/config"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
	"github.com/dvsdigi/dvsapp/pkg/sdk/geo"
)

var (
	clockLat      float64
	clockLng      float64
	clockAccuracy float64
)

var clockInCmd = &cobra.Command{
	Use:   "clock-in",
	Short: "Clock in for the day",
	Long: `Records the start of your working day.

The current position is read from the configured location provider (override
with --lat/--lng) and sent with the request; whether it falls inside the
school geofence is decided by the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClock(cmd, "clock-in")
	},
}

var clockOutCmd = &cobra.Command{
	Use:   "clock-out",
	Short: "Clock out for the day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClock(cmd, "clock-out")
	},
}

// runClock is the three-step flow shared by both directions: permission,
// position, then the HTTP call. The steps are sequential and uncancelled
// beyond the fixed request timeout.
func runClock(cmd *cobra.Command, direction string) error {
	cfg := config.MustFromContext(cmd.Context())
	client, err := cfg.ClientProvider.SDKClient()
	if err != nil {
		return err
	}

	position, err := resolvePosition(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	payload := sdk.ClockPayload{
		Latitude:  position.Latitude,
		Longitude: position.Longitude,
		Accuracy:  position.Accuracy,
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	spinner, _ := pterm.DefaultSpinner.Start("Submitting " + direction + "...")
	var result *sdk.ClockResult
	if direction == "clock-in" {
		result, err = client.ClockIn(ctx, payload)
	} else {
		result, err = client.ClockOut(ctx, payload)
	}
	if err != nil {
		spinner.Fail(err.Error())
		return err
	}
	if !result.Success {
		spinner.Fail(result.Message)
		return errors.New(result.Message)
	}
	spinner.Success(result.Message)
	if result.Time != "" {
		pterm.Info.Printf("Recorded at %s\n", result.Time)
	}
	return nil
}

// resolvePosition prefers explicit flag coordinates, falling back to the
// configured provider (permission first, then the fix).
func resolvePosition(ctx context.Context, cfg *config.GlobalConfig) (geo.Position, error) {
	if clockLat != 0 || clockLng != 0 {
		accuracy := clockAccuracy
		if accuracy == 0 {
			accuracy = cfg.Settings.Location.Accuracy
		}
		return geo.Position{Latitude: clockLat, Longitude: clockLng, Accuracy: accuracy}, nil
	}

	if err := cfg.Geo.RequestPermission(ctx); err != nil {
		return geo.Position{}, errors.Wrap(err, "location unavailable")
	}
	position, err := cfg.Geo.CurrentPosition(ctx)
	if err != nil {
		return geo.Position{}, errors.Wrap(err, "failed to read location")
	}
	return position, nil
}

func init() {
	for _, cmd := range []*cobra.Command{clockInCmd, clockOutCmd} {
		cmd.Flags().Float64Var(&clockLat, "lat", 0, "Latitude override")
		cmd.Flags().Float64Var(&clockLng, "lng", 0, "Longitude override")
		cmd.Flags().Float64Var(&clockAccuracy, "accuracy", 0, "Accuracy in meters")
	}
}
