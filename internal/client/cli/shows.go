package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/roadcase/roadcase-cli/internal/client/models"
)

// Shows refreshes and lists the events visible under the active band
// filter. Each row carries the list date box (month and day), the venue,
// and the event type.
func (a *App) Shows(ctx context.Context) error {
	if err := a.events.FetchEvents(ctx); err != nil {
		fmt.Println("Could not load shows:", a.events.Err())
		return err
	}

	shows := a.events.Events()
	if len(shows) == 0 {
		fmt.Println("No shows yet. Use 'new' to add one.")
		return nil
	}

	band := "All Bands"
	if t := a.events.SelectedTeam(); t != nil {
		band = t.Name
	}
	fmt.Printf("Shows — %s\n", band)

	for _, e := range shows {
		venue := ""
		if e.Venue != nil {
			venue = e.Venue.Name
			if e.Venue.City != "" {
				venue = fmt.Sprintf("%s — %s, %s", e.Venue.Name, e.Venue.City, e.Venue.State)
			}
		}
		fmt.Printf("  [%s %s]  %-40s  %s  (id %s)\n",
			models.MonthAbbrev(e.Date), models.DayOfMonth(e.Date), venue, e.EventType.Name, e.ID)
	}
	return nil
}

// Show fetches and displays a single event by ID: venue and contacts,
// the billing lineup in stage order, and the day schedule.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter show id", os.Stdout)
	if err != nil {
		return err
	}

	e, err := a.events.GetEvent(ctx, id)
	if err != nil {
		fmt.Println("Could not load show:", err.Error())
		return err
	}

	fmt.Printf("%s — %s\n", e.Date, e.EventType.Name)
	if e.Venue != nil {
		fmt.Printf("Venue: %s\n", e.Venue.Name)
		if e.Venue.Address1 != "" {
			fmt.Printf("       %s, %s, %s %s\n", e.Venue.Address1, e.Venue.City, e.Venue.State, e.Venue.Zip)
		}
		if e.Venue.Capacity != "" {
			fmt.Printf("       capacity %s\n", e.Venue.Capacity)
		}
		for _, c := range e.Venue.VenueContacts {
			fmt.Printf("Contact: %s (%s) %s %s\n", c.Name, c.Role, c.Phone, c.Email)
		}
	}

	if len(e.Billings) > 0 {
		fmt.Println("Lineup:")
		for _, slot := range models.BillingLineup(e.Billings) {
			fmt.Printf("  %-20s %s\n", slot.Name, slot.Label)
		}
	}

	if len(e.ScheduleItems) > 0 {
		fmt.Println("Schedule:")
		for _, item := range models.SortScheduleItems(e.ScheduleItems) {
			fmt.Printf("  %-20s %s\n", item.Title, item.TimeLabel())
		}
	}

	if e.Notes != "" {
		fmt.Println("Notes:", e.Notes)
	}
	return nil
}

// NewShow walks the user through creating a show: date, type, venue, then
// optional lineup and schedule entries. The event is created under the
// active band; on success the list is already refreshed by the service.
func (a *App) NewShow(ctx context.Context) error {
	team := a.events.SelectedTeam()
	if team == nil {
		fmt.Println("Select a band first ('band').")
		return nil
	}

	date, err := getSimpleText(a.reader, "Show date (MM/DD/YYYY)", os.Stdout)
	if err != nil {
		return err
	}
	if _, err := models.ParseShowDate(date); err != nil {
		fmt.Println("Invalid date, expected MM/DD/YYYY.")
		return err
	}

	eventType, err := getSimpleText(a.reader, "Event type", os.Stdout)
	if err != nil {
		return err
	}

	venueName, err := getSimpleText(a.reader, "Venue name", os.Stdout)
	if err != nil {
		return err
	}
	venueCity, err := getSimpleText(a.reader, "Venue city", os.Stdout)
	if err != nil {
		return err
	}
	venueState, err := getSimpleText(a.reader, "Venue state", os.Stdout)
	if err != nil {
		return err
	}

	notes, err := getSimpleText(a.reader, "Notes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.CreateEventRequest{
		Date:       date,
		Notes:      notes,
		TeamID:     team.ID,
		EventType:  eventType,
		Status:     "confirmed",
		VenueName:  venueName,
		VenueCity:  venueCity,
		VenueState: venueState,
	}

	// Lineup, top of the bill first. Blank name finishes the list.
	for position := 0; ; position++ {
		name, err := getSimpleText(a.reader, "Lineup act (blank to finish)", os.Stdout)
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		req.Billings = append(req.Billings, models.BillingInput{Name: name, Position: position})
	}

	// Schedule entries. Blank title finishes the list.
	for {
		title, err := getSimpleText(a.reader, "Schedule item (blank to finish)", os.Stdout)
		if err != nil {
			return err
		}
		if title == "" {
			break
		}
		start, err := getSimpleText(a.reader, "Start time (HH:MM, 24h)", os.Stdout)
		if err != nil {
			return err
		}
		end, err := getSimpleText(a.reader, "End time (HH:MM, blank if open-ended)", os.Stdout)
		if err != nil {
			return err
		}
		offsetText, err := getSimpleText(a.reader, "Day offset (-1 before, 0 show day, 1 after)", os.Stdout)
		if err != nil {
			return err
		}
		offset := 0
		if offsetText != "" {
			if offset, err = strconv.Atoi(offsetText); err != nil {
				fmt.Println("Invalid offset, using 0.")
				offset = 0
			}
		}
		req.ScheduleItems = append(req.ScheduleItems, models.ScheduleItemInput{
			Title:          title,
			StartTime:      start,
			EndTime:        end,
			StartDayOffset: offset,
		})
	}

	if !a.events.CreateEvent(ctx, req) {
		fmt.Println("Could not create show:", a.events.Err())
		return nil
	}

	fmt.Println("Show created.")
	return nil
}

// DeleteShow removes an event by its identifier after confirmation.
func (a *App) DeleteShow(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter show id to delete", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := getConfirmation(a.reader, "Delete this show?", os.Stdout)
	if err != nil || !ok {
		return err
	}

	if !a.events.DeleteEvent(ctx, id) {
		fmt.Println("Could not delete show:", a.events.Err())
		return nil
	}

	fmt.Println("Show deleted.")
	return nil
}
