package models

// Event is a scheduled show with venue, billing, and schedule sub-records.
// All events are server-owned; the client never assigns identity and
// replaces its collections wholesale on each fetch.
type Event struct {
	ID            string         `json:"id"`
	EventTypeID   string         `json:"event_type_id"`
	Date          string         `json:"date"` // MM/DD/YYYY
	TeamID        string         `json:"team_id"`
	Notes         string         `json:"notes,omitempty"`
	Status        string         `json:"status"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
	EventType     EventType      `json:"event_type"`
	Venue         *Venue         `json:"venue,omitempty"`
	Team          *Team          `json:"team,omitempty"`
	Billings      []EventBilling `json:"billings,omitempty"`
	ScheduleItems []ScheduleItem `json:"schedule_items,omitempty"`
}

// EventType categorizes a show (e.g. headline date, festival, off day).
type EventType struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Venue is the location record embedded in an event.
type Venue struct {
	ID            string         `json:"id"`
	Name          string         `json:"name,omitempty"`
	Address1      string         `json:"address1,omitempty"`
	Address2      string         `json:"address2,omitempty"`
	City          string         `json:"city,omitempty"`
	State         string         `json:"state,omitempty"`
	Zip           string         `json:"zip,omitempty"`
	Capacity      string         `json:"capacity,omitempty"`
	EventID       string         `json:"event_id"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
	Latitude      string         `json:"latitude,omitempty"`
	Longitude     string         `json:"longitude,omitempty"`
	VenueContacts []VenueContact `json:"venue_contacts"`
}

// VenueContact is a person attached to a venue.
type VenueContact struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// EventBilling is a performer's name and rank in an event's lineup.
// Position ascending orders the bill.
type EventBilling struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Position  int    `json:"position"`
	EventID   string `json:"event_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ScheduleItem is a timed activity within an event's day(s).
// StartDayOffset shifts the item relative to the show date (-1 day before,
// 0 show day, 1 day after); absent on the wire means 0.
type ScheduleItem struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Notes          string `json:"notes,omitempty"`
	StartDayOffset int    `json:"start_day_offset"`
	EventID        string `json:"event_id"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// CreateEventRequest is the payload accepted by the event creation and edit
// endpoints.
type CreateEventRequest struct {
	Date           string              `json:"date"`
	Notes          string              `json:"notes"`
	TeamID         string              `json:"team_id"`
	EventType      string              `json:"event_type"`
	Status         string              `json:"status"`
	VenueName      string              `json:"venue_name"`
	VenueAddress1  string              `json:"venue_address1"`
	VenueCity      string              `json:"venue_city"`
	VenueState     string              `json:"venue_state"`
	VenueZip       string              `json:"venue_zip"`
	VenueLatitude  string              `json:"venue_latitude"`
	VenueLongitude string              `json:"venue_longitude"`
	Billings       []BillingInput      `json:"billings"`
	Contacts       []ContactInput      `json:"contacts"`
	ScheduleItems  []ScheduleItemInput `json:"schedule_items"`
}

// BillingInput is a lineup entry in a create/edit payload.
type BillingInput struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// ContactInput is a venue contact in a create/edit payload.
type ContactInput struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ScheduleItemInput is a schedule entry in a create/edit payload.
type ScheduleItemInput struct {
	Title          string `json:"title"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Notes          string `json:"notes"`
	StartDayOffset int    `json:"start_day_offset"`
}
