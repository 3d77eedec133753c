package commands

import (
	"fmt"

	"github.com/greenpoint/backend/internal/domain"
	"github.com/greenpoint/backend/internal/locator"
	"github.com/greenpoint/backend/internal/pointform"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type registerOptions struct {
	name      string
	email     string
	whatsapp  string
	uf        string
	city      string
	items     []int
	deviceLat float64
	deviceLon float64
	pinLat    float64
	pinLon    float64
}

func registerCmd(opts *rootOptions) *cobra.Command {
	var o registerOptions

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Fill the registration form and submit a collection point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()

			var loc pointform.Locator = locator.Unavailable{Reason: "no device position given"}
			if flags.Changed("device-lat") && flags.Changed("device-lon") {
				loc = locator.NewFixed(domain.Coordinate{Latitude: o.deviceLat, Longitude: o.deviceLon})
			}

			form := pointform.New(pointform.Deps{
				Regions:   opts.client,
				Locator:   loc,
				Catalog:   opts.client,
				Submitter: opts.client,
				OnFailure: func(err error) {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
				},
			})

			form.Start(ctx)
			form.Wait()

			form.SetName(o.name)
			form.SetEmail(o.email)
			form.SetPhone(o.whatsapp)

			if o.uf != "" {
				if err := form.SelectRegion(ctx, domain.RegionCode(o.uf)); err != nil {
					return err
				}
				form.Wait()
			}
			if o.city != "" {
				if err := form.SelectSubRegion(domain.SubRegionName(o.city)); err != nil {
					return err
				}
			}

			if flags.Changed("pin-lat") && flags.Changed("pin-lon") {
				form.TapMap(domain.Coordinate{Latitude: o.pinLat, Longitude: o.pinLon})
			}

			for _, id := range lo.Uniq(o.items) {
				if _, err := form.ToggleItem(id); err != nil {
					return err
				}
			}

			id, err := form.Submit(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.name, "name", "", "collection point name")
	f.StringVar(&o.email, "email", "", "contact e-mail")
	f.StringVar(&o.whatsapp, "whatsapp", "", "contact whatsapp number")
	f.StringVar(&o.uf, "uf", "", "state code, e.g. PB")
	f.StringVar(&o.city, "city", "", "city name as listed by IBGE")
	f.IntSliceVar(&o.items, "item", nil, "catalog item id (repeatable)")
	f.Float64Var(&o.deviceLat, "device-lat", 0, "device latitude")
	f.Float64Var(&o.deviceLon, "device-lon", 0, "device longitude")
	f.Float64Var(&o.pinLat, "pin-lat", 0, "latitude picked on the map")
	f.Float64Var(&o.pinLon, "pin-lon", 0, "longitude picked on the map")

	return cmd
}
