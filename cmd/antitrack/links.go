package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/akhilc162005/anti-location-tracker/internal/adapters/simulate"
	"github.com/akhilc162005/anti-location-tracker/internal/domain"
	"github.com/akhilc162005/anti-location-tracker/internal/share"
)

func newLinksCmd(cfgPath *string) *cobra.Command {
	var cityName, format, outPath string

	cmd := &cobra.Command{
		Use:   "links",
		Short: "Print shareable links for a city or a random fix",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			fix, err := pickFix(cityName, cfg.WeatherEnabled(), cfg.TrafficEnabled(), cfg.DeviceEnabled())
			if err != nil {
				return err
			}
			links := share.Build(fix)

			if format != "" {
				f, err := share.ParseFormat(format)
				if err != nil {
					return err
				}
				out, err := share.Export(fix, links, f)
				if err != nil {
					return err
				}
				if outPath != "" {
					return os.WriteFile(outPath, []byte(out), 0o644)
				}
				fmt.Println(out)
				return nil
			}

			fmt.Printf("Location: %s, %s (%.6f, %.6f)\n\n", fix.Name, fix.Country, fix.Lat, fix.Lon)
			for _, group := range share.Groups {
				fmt.Printf("%s:\n", group.Title)
				for _, platform := range group.Platforms {
					if link, ok := links[platform]; ok {
						fmt.Printf("  %-14s %s\n", platform, link)
					}
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cityName, "city", "", "pick a city by name instead of a random fix")
	cmd.Flags().StringVar(&format, "format", "", "export format (json, csv, txt)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the export to a file instead of stdout")
	return cmd
}

// pickFix resolves a named city from the reference table, or simulates a
// random fix when no city is given.
func pickFix(cityName string, weather, traffic, device bool) (domain.LocationSample, error) {
	if cityName == "" {
		sim := simulate.NewLocationSimulator(nil, simulate.Features{
			Weather: weather,
			Traffic: traffic,
			Device:  device,
		})
		return sim.Sample(), nil
	}

	for _, city := range simulate.Cities {
		if strings.EqualFold(city.Name, cityName) {
			return domain.LocationSample{
				Name:       city.Name,
				Country:    city.Country,
				Timezone:   city.Timezone,
				Population: city.Population,
				Lat:        city.Lat,
				Lon:        city.Lon,
				Timestamp:  time.Now(),
			}, nil
		}
	}

	names := make([]string, len(simulate.Cities))
	for i, city := range simulate.Cities {
		names[i] = city.Name
	}
	return domain.LocationSample{}, fmt.Errorf("unknown city %q (known: %s)", cityName, strings.Join(names, ", "))
}
