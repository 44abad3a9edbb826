package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/vpotapovs/roamer/internal/client/booking"
	"github.com/vpotapovs/roamer/internal/client/models"
)

// bookRoom runs the room-booking dialogue: hotel, room type, rooms, and the
// two-step date selection (first pick is check-in, second must be later).
func (a *App) bookRoom(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Sign in first.")
		return
	}

	hotelID, err := GetInt(a.reader, "Hotel id", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}
	roomTypeID, err := GetInt(a.reader, "Room type id", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}
	rooms, err := GetInt(a.reader, "Number of rooms", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}

	checkIn, err := GetDate(a.reader, "Check-in date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}
	checkOut, err := GetDate(a.reader, "Check-out date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}

	dates, err := booking.NewDateRange(checkIn, checkOut)
	if err != nil {
		a.alert(err)
		return
	}

	result, err := a.rooms.Book(ctx, int64(hotelID), int64(roomTypeID), rooms, dates)
	if err != nil {
		a.alert(err)
		return
	}

	fmt.Printf("Booked! Order #%d, total %.2f. New balance: %.2f\n",
		result.Order.ID, result.Total, a.session.Balance())
}

// bookTrip books seats on a fixed-departure trip.
func (a *App) bookTrip(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Println("Sign in first.")
		return
	}
	if len(args) < 2 {
		fmt.Println("Usage: booktrip <id> <seats>")
		return
	}
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: booktrip <id> <seats>")
		return
	}
	seats, err := strconv.Atoi(args[1])
	if err != nil || seats < 1 {
		fmt.Println("Usage: booktrip <id> <seats>")
		return
	}

	trip, err := a.api.Trip(ctx, id)
	if err != nil {
		a.alert(err)
		return
	}

	order, err := a.trips.BookSeats(ctx, trip, seats)
	if err != nil {
		a.alert(err)
		return
	}
	fmt.Printf("Booked! Order #%d. New balance: %.2f\n", order.ID, a.session.Balance())
}

// planCustomTrip runs the custom-trip dialogue: dates and party size, per-day
// attraction picks guarded by the day time budget, optional hotel or
// meet/drop points, server-side calculation, then confirmation.
func (a *App) planCustomTrip(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Sign in first.")
		return
	}

	cityID, err := GetInt(a.reader, "City id", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}
	people, err := GetInt(a.reader, "Party size", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}
	start, err := GetDate(a.reader, "First day (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}
	end, err := GetDate(a.reader, "Last day (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		a.alert(err)
		return
	}

	draft, err := booking.NewDraft(int64(cityID), people, start, end, booking.DayWindow{})
	if err != nil {
		a.alert(err)
		return
	}

	places, err := a.api.CityPlaces(ctx, int64(cityID))
	if err != nil {
		a.alert(err)
		return
	}
	byID := make(map[int64]models.Attraction, len(places.Attractions))
	for _, p := range places.Attractions {
		byID[p.ID] = p
		fmt.Printf("%4d  %s  visit %s\n", p.ID, p.Name, p.Duration)
	}

	a.fillDays(draft, byID)

	if err := a.pickExtras(ctx, draft); err != nil {
		a.alert(err)
		return
	}

	quote, err := a.trips.Calculate(ctx, draft)
	if err != nil {
		a.alert(err)
		return
	}
	fmt.Printf("Per person: %.2f  Meals: %.2f  Transport: %.2f  Total: %.2f\n",
		quote.PricePerPerson, quote.MealsAddon, quote.TransportAddon, quote.Total)

	answer, err := getSimpleText(a.reader, "Confirm booking? (yes/no)", os.Stdout)
	if err != nil || answer != "yes" {
		fmt.Println("Draft kept. Run plantrip again to rebuild it.")
		return
	}

	order, err := a.trips.Confirm(ctx, draft, quote)
	if err != nil {
		a.alert(err)
		return
	}
	fmt.Printf("Trip created! Order #%d. New balance: %.2f\n", order.ID, a.session.Balance())
}

// fillDays walks the draft day by day, adding attractions until the user
// enters 0 or the day's budget rejects the pick.
func (a *App) fillDays(draft *booking.Draft, byID map[int64]models.Attraction) {
	for i := range draft.Days {
		fmt.Printf("Day %d (%s), %d min available\n", i+1, draft.Days[i].Date.Format("2006-01-02"), a.remaining(draft, i))
		for {
			id, err := GetInt(a.reader, "Attraction id (0 to finish day)", os.Stdout)
			if err != nil {
				a.alert(err)
				return
			}
			if id == 0 {
				break
			}
			poi, ok := byID[int64(id)]
			if !ok {
				fmt.Println("No such attraction in this city.")
				continue
			}
			if err := draft.AddPOI(i, poi); err != nil {
				a.alert(err)
				continue
			}
			fmt.Printf("Added. %d min left today.\n", a.remaining(draft, i))
		}
	}
}

func (a *App) remaining(draft *booking.Draft, day int) int {
	window, err := draft.Window.Minutes()
	if err != nil {
		return 0
	}
	return window - draft.UsedMinutes(day)
}

// pickExtras collects the optional guide and either a hotel room or the
// meet/drop coordinates the server requires without one.
func (a *App) pickExtras(ctx context.Context, draft *booking.Draft) error {
	if id, err := GetInt(a.reader, "Guide id (0 for none)", os.Stdout); err == nil && id > 0 {
		gid := int64(id)
		draft.GuideID = &gid
	}

	hotelID, err := GetInt(a.reader, "Hotel id (0 for none)", os.Stdout)
	if err != nil {
		return err
	}
	if hotelID > 0 {
		roomTypeID, err := GetInt(a.reader, "Room type id", os.Stdout)
		if err != nil {
			return err
		}
		hid, rid := int64(hotelID), int64(roomTypeID)
		draft.HotelID = &hid
		draft.RoomTypeID = &rid
	} else {
		meet, err := a.readPoint("Meet point")
		if err != nil {
			return err
		}
		drop, err := a.readPoint("Drop point")
		if err != nil {
			return err
		}
		draft.Meet = meet
		draft.Drop = drop
	}

	if answer, err := getSimpleText(a.reader, "Include meals? (yes/no)", os.Stdout); err == nil {
		draft.IncludeMeals = answer == "yes"
	}
	if answer, err := getSimpleText(a.reader, "Include transport? (yes/no)", os.Stdout); err == nil {
		draft.IncludeTransport = answer == "yes"
	}
	return nil
}

func (a *App) readPoint(name string) (*models.GeoPoint, error) {
	text, err := getSimpleText(a.reader, name+" as lat,lng", os.Stdout)
	if err != nil {
		return nil, err
	}
	var lat, lng float64
	if _, err := fmt.Sscanf(text, "%f,%f", &lat, &lng); err != nil {
		return nil, fmt.Errorf("not a coordinate pair: %q", text)
	}
	return &models.GeoPoint{Lat: lat, Lng: lng}, nil
}
