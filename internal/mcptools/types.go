package mcptools

// ListEventsInput is the input schema for the list_events MCP tool.
type ListEventsInput struct {
	From string `json:"from,omitempty" jsonschema-description:"ISO date to start from (default today)"`
	Days int    `json:"days,omitempty" jsonschema-description:"Number of days after from to include (default 30)"`
	All  bool   `json:"all,omitempty" jsonschema-description:"Return every stored event, ignoring from and days"`
}

// EventsOnInput is the input schema for the events_on MCP tool.
type EventsOnInput struct {
	Date string `json:"date" jsonschema-description:"ISO date (YYYY-MM-DD)"`
}

// EventsOutput is the output schema for the event listing MCP tools.
type EventsOutput struct {
	Events []EventResult `json:"events"`
}

// EventResult is the common output format for event-related MCP tools.
type EventResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreateEventInput is the input schema for the create_event MCP tool.
type CreateEventInput struct {
	Title       string `json:"title" jsonschema-description:"Event title"`
	Date        string `json:"date" jsonschema-description:"ISO date (YYYY-MM-DD)"`
	Time        string `json:"time,omitempty" jsonschema-description:"Time of day (HH:MM); omit for all-day events"`
	Description string `json:"description,omitempty" jsonschema-description:"Markdown description"`
}

// DeleteEventInput is the input schema for the delete_event MCP tool.
type DeleteEventInput struct {
	ID string `json:"id" jsonschema-description:"ID of the event to delete"`
}

// DeleteEventOutput is the output schema for the delete_event MCP tool.
type DeleteEventOutput struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// ListHolidaysInput is the input schema for the list_holidays MCP tool.
type ListHolidaysInput struct {
	Year  int `json:"year,omitempty" jsonschema-description:"Year to list (default current year)"`
	Month int `json:"month,omitempty" jsonschema-description:"Month 1-12 to restrict to; omit for the whole year"`
}

// ListHolidaysOutput is the output schema for the list_holidays MCP tool.
type ListHolidaysOutput struct {
	Country  string          `json:"country"`
	Holidays []HolidayResult `json:"holidays"`
}

// HolidayResult is one holiday in list_holidays output.
type HolidayResult struct {
	Date string `json:"date"`
	Name string `json:"name"`
}
