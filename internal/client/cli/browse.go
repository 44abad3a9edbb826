package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vpotapovs/roamer/internal/client/models"
)

const defaultPageSize = 20

func (a *App) listCountries(ctx context.Context) {
	countries, err := a.api.Countries(ctx, 1, defaultPageSize)
	if err != nil {
		a.alert(err)
		return
	}
	for _, c := range countries {
		fmt.Printf("%4d  %s (%s)\n", c.ID, c.Name, c.Code)
	}
}

func (a *App) showCountry(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: country <id>")
		return
	}
	country, cities, err := a.api.Country(ctx, id)
	if err != nil {
		a.alert(err)
		return
	}
	fmt.Printf("%s (%s)\n%s\n", country.Name, country.Code, country.Description)
	for _, c := range cities {
		fmt.Printf("%4d  %s\n", c.ID, c.Name)
	}
}

func (a *App) showCity(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: city <id>")
		return
	}
	places, err := a.api.CityPlaces(ctx, id)
	if err != nil {
		a.alert(err)
		return
	}
	fmt.Printf("%s\n%s\n", places.City.Name, places.City.Description)
	fmt.Println("Hotels:")
	for _, h := range places.Hotels {
		fmt.Printf("%4d  %s  %d*  %.1f\n", h.ID, h.Name, h.Stars, h.Rating)
	}
	fmt.Println("Attractions:")
	for _, p := range places.Attractions {
		fmt.Printf("%4d  %s  visit %s  %.2f\n", p.ID, p.Name, p.Duration, p.TicketPrice)
	}
}

func (a *App) listHotels(ctx context.Context) {
	hotels, err := a.api.Hotels(ctx, 1, defaultPageSize)
	if err != nil {
		a.alert(err)
		return
	}
	for _, h := range hotels {
		marker := " "
		if a.session.IsFavourite(models.FavouriteHotel, h.ID) {
			marker = "*"
		}
		fmt.Printf("%s %4d  %s  %d*  %.1f\n", marker, h.ID, h.Name, h.Stars, h.Rating)
	}
}

func (a *App) showHotel(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: hotel <id>")
		return
	}
	hotel, err := a.api.Hotel(ctx, id)
	if err != nil {
		a.alert(err)
		return
	}
	fmt.Printf("%s  %d*  %.1f\n%s\n%s\n", hotel.Name, hotel.Stars, hotel.Rating, hotel.Address, hotel.Description)
	for _, rt := range hotel.RoomTypes {
		fmt.Printf("%4d  %s  %.2f/night  sleeps %d\n", rt.ID, rt.Name, rt.NightlyRate, rt.Capacity)
	}
}

func (a *App) listAttractions(ctx context.Context) {
	attractions, err := a.api.Attractions(ctx, 1, defaultPageSize)
	if err != nil {
		a.alert(err)
		return
	}
	for _, p := range attractions {
		marker := " "
		if a.session.IsFavourite(models.FavouriteAttraction, p.ID) {
			marker = "*"
		}
		fmt.Printf("%s %4d  %s  visit %s  %.2f\n", marker, p.ID, p.Name, p.Duration, p.TicketPrice)
	}
}

func (a *App) listTrips(ctx context.Context) {
	trips, err := a.api.Trips(ctx, 1, defaultPageSize)
	if err != nil {
		a.alert(err)
		return
	}
	for _, tr := range trips {
		marker := " "
		if a.session.IsFavourite(models.FavouriteTrip, tr.ID) {
			marker = "*"
		}
		fmt.Printf("%s %4d  %s  %s  %.2f/seat  %d seats left\n",
			marker, tr.ID, tr.Name, tr.StartDate.Format("2006-01-02"), tr.PricePerSeat, tr.SeatsLeft)
	}
}

func (a *App) showTrip(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: trip <id>")
		return
	}
	trip, err := a.api.Trip(ctx, id)
	if err != nil {
		a.alert(err)
		return
	}
	fmt.Printf("%s\n%s\n%s to %s, %.2f per seat, %d of %d seats left\n",
		trip.Name, trip.Description,
		trip.StartDate.Format("2006-01-02"), trip.EndDate.Format("2006-01-02"),
		trip.PricePerSeat, trip.SeatsLeft, trip.SeatsTotal)
}

func (a *App) listGuides(ctx context.Context, args []string) {
	var cityID int64
	if len(args) > 0 {
		if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
			cityID = id
		}
	}
	guides, err := a.api.Guides(ctx, cityID)
	if err != nil {
		a.alert(err)
		return
	}
	for _, g := range guides {
		fmt.Printf("%4d  %s  %.2f/day  %.1f\n", g.ID, g.Name, g.DailyRate, g.Rating)
	}
}

// parseFavouriteKind maps a command argument to an entity kind.
func parseFavouriteKind(s string) (models.FavouriteKind, bool) {
	switch s {
	case "hotel":
		return models.FavouriteHotel, true
	case "attraction":
		return models.FavouriteAttraction, true
	case "trip":
		return models.FavouriteTrip, true
	}
	return "", false
}

func (a *App) toggleFavourite(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: fav <hotel|attraction|trip> <id>")
		return
	}
	kind, ok := parseFavouriteKind(args[0])
	if !ok {
		fmt.Println("Usage: fav <hotel|attraction|trip> <id>")
		return
	}
	id, ok := parseID(args[1:])
	if !ok {
		fmt.Println("Usage: fav <hotel|attraction|trip> <id>")
		return
	}

	if err := a.session.ToggleFavourite(ctx, kind, id); err != nil {
		a.alert(err)
		return
	}
	if a.session.IsFavourite(kind, id) {
		fmt.Println("Added to favourites.")
	} else {
		fmt.Println("Removed from favourites.")
	}
}
