package entity

import "time"

// Property is a listing offered by a host.
// Rating and ReviewCount are derived from the property's reviews and are only
// written by the rating aggregation path.
type Property struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        int       `json:"price"` // Nightly price in the smallest currency unit.
	Location     string    `json:"location"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	Guests       int       `json:"guests"` // Maximum number of guests.
	Images       []string  `json:"images"`
	Amenities    []string  `json:"amenities"`
	HostID       int64     `json:"host_id"`
	Rating       *int      `json:"rating"` // nil until the first review.
	ReviewCount  int       `json:"review_count"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	PropertyType string    `json:"property_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsHostedBy reports whether userID owns the listing.
func (p *Property) IsHostedBy(userID int64) bool {
	return p != nil && p.HostID == userID
}

// HasCoordinates reports whether both latitude and longitude are set.
func (p *Property) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Clone returns a deep copy so callers can't mutate stored slices or pointers.
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}

	c := *p
	c.Images = append([]string(nil), p.Images...)
	c.Amenities = append([]string(nil), p.Amenities...)
	if p.Rating != nil {
		r := *p.Rating
		c.Rating = &r
	}
	if p.Latitude != nil {
		lat := *p.Latitude
		c.Latitude = &lat
	}
	if p.Longitude != nil {
		lon := *p.Longitude
		c.Longitude = &lon
	}

	return &c
}
