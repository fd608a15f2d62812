package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/avoronkov/wellfinder/internal/catalog"
	"github.com/avoronkov/wellfinder/internal/geo"
	"github.com/avoronkov/wellfinder/internal/models"
)

// Search runs a text search. With no arguments the full catalog is listed.
func (a *App) Search(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")

	locations, err := a.locations.Search(ctx, query)
	if err != nil {
		fmt.Fprintln(a.out, "Search failed:", err)
		return err
	}

	if len(locations) == 0 {
		fmt.Fprintln(a.out, "No locations found.")
		return nil
	}
	for _, l := range locations {
		a.printLocationLine(&l)
	}
	return nil
}

// Near lists locations within a radius of a point, nearest first.
// Usage: near <lat> <lon> <radiusMiles>
func (a *App) Near(ctx context.Context, args []string) error {
	if len(args) != 3 {
		fmt.Fprintln(a.out, "Usage: near <lat> <lon> <radiusMiles>")
		return nil
	}

	lat, err1 := strconv.ParseFloat(args[0], 64)
	lon, err2 := strconv.ParseFloat(args[1], 64)
	radius, err3 := strconv.ParseFloat(args[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		fmt.Fprintln(a.out, "Usage: near <lat> <lon> <radiusMiles>")
		return nil
	}

	origin := geo.Coordinate{Lat: lat, Lon: lon}
	locations, err := a.locations.GetNearby(ctx, origin, radius)
	if err != nil {
		fmt.Fprintln(a.out, "Nearby search failed:", err)
		return err
	}

	if len(locations) == 0 {
		fmt.Fprintln(a.out, "No locations within", radius, "miles.")
		return nil
	}
	for _, l := range locations {
		d := geo.DistanceMiles(origin, l.Coordinate())
		fmt.Fprintf(a.out, "%-10s %-30s %-12s %.1f mi\n", l.ID, l.Name, l.Category, d)
	}
	return nil
}

// Show prints a single location in full.
// Usage: show <id>
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}

	location, err := a.locations.GetByID(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Lookup failed:", err)
		return err
	}
	if location == nil {
		fmt.Fprintln(a.out, "No location with id", args[0])
		return nil
	}

	fmt.Fprintf(a.out, "%s (%s)\n", location.Name, location.Category)
	fmt.Fprintln(a.out, location.Description)
	if location.Address != "" {
		fmt.Fprintln(a.out, "Address:", location.Address)
	}
	if location.Rating > 0 {
		fmt.Fprintf(a.out, "Rating: %.1f\n", location.Rating)
	}
	fmt.Fprintf(a.out, "Coordinates: %.4f, %.4f\n", location.Latitude, location.Longitude)
	return nil
}

// Categories lists the distinct catalog categories.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.locations.GetCategories(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Category listing failed:", err)
		return err
	}

	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories available.")
		return nil
	}
	for _, c := range categories {
		fmt.Fprintln(a.out, "-", c)
	}
	return nil
}

func (a *App) printLocationLine(l *catalog.Location) {
	fmt.Fprintf(a.out, "%-10s %-30s %s\n", l.ID, l.Name, l.Category)
}

func displayName(account *models.Account) string {
	if account.Name != "" {
		return account.Name
	}
	return account.Email
}
