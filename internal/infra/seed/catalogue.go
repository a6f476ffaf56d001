package seed

import "stayscape/internal/domain/entity"

func coord(v float64) *float64 {
	return &v
}

// catalogue returns fresh copies of the demo listings. They start unrated.
func catalogue() []*entity.Property {
	return []*entity.Property{
		{
			Title:       "Modern City Apartment",
			Description: "Beautiful modern apartment in the heart of downtown with amazing city views, fully renovated with high-end appliances and stylish decor. Perfect for business travelers or couples seeking a luxurious stay in the center of the action.",
			Price:       189,
			Location:    "Downtown",
			City:        "Seattle",
			State:       "Washington",
			Country:     "United States",
			Bedrooms:    2,
			Bathrooms:   2,
			Guests:      4,
			Images: []string{
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267",
				"https://images.unsplash.com/photo-1502672023488-70e25813eb80",
				"https://images.unsplash.com/photo-1536376072261-38c75010e6c9",
			},
			Amenities:    []string{"Wifi", "Kitchen", "TV", "Air conditioning", "Washer", "Dryer"},
			Latitude:     coord(47.6062),
			Longitude:    coord(-122.3321),
			PropertyType: "apartment",
		},
		{
			Title:       "Beachfront Paradise",
			Description: "Stunning beachfront property with direct ocean access. This beautiful home offers panoramic views, a spacious deck, and luxurious amenities for the perfect beach getaway. Fall asleep to the sound of waves and wake up to breathtaking sunrises.",
			Price:       349,
			Location:    "Malibu",
			City:        "Malibu",
			State:       "California",
			Country:     "United States",
			Bedrooms:    3,
			Bathrooms:   2,
			Guests:      6,
			Images: []string{
				"https://images.unsplash.com/photo-1499793983690-e29da59ef1c2",
				"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4",
				"https://images.unsplash.com/photo-1499916078039-922301b0eb9b",
			},
			Amenities:    []string{"Beach access", "Ocean view", "Kitchen", "Wifi", "Parking", "BBQ grill"},
			Latitude:     coord(34.0259),
			Longitude:    coord(-118.7798),
			PropertyType: "beach house",
		},
		{
			Title:       "Mountain Cabin Retreat",
			Description: "Cozy cabin nestled in the woods with mountain views. Perfect for a peaceful getaway with hiking trails nearby and a wood-burning fireplace for chilly evenings. Disconnect from the hustle and bustle and reconnect with nature in this rustic yet comfortable cabin.",
			Price:       229,
			Location:    "Aspen",
			City:        "Aspen",
			State:       "Colorado",
			Country:     "United States",
			Bedrooms:    2,
			Bathrooms:   1,
			Guests:      4,
			Images: []string{
				"https://images.unsplash.com/photo-1470770841072-f978cf4d019e",
				"https://images.unsplash.com/photo-1542718610-a1d656d1884c",
				"https://images.unsplash.com/photo-1520984032042-162d526883e0",
			},
			Amenities:    []string{"Fireplace", "Mountain view", "Kitchen", "Wifi", "Hiking trails", "Parking"},
			Latitude:     coord(39.1911),
			Longitude:    coord(-106.8175),
			PropertyType: "cabin",
		},
		{
			Title:       "Luxury Villa with Pool",
			Description: "Stunning luxury villa with private pool and spacious outdoor entertainment area. Perfect for family vacations or group getaways, this beautiful home offers privacy, luxury, and all the comforts of home in a prime location close to attractions.",
			Price:       399,
			Location:    "Scottsdale",
			City:        "Scottsdale",
			State:       "Arizona",
			Country:     "United States",
			Bedrooms:    4,
			Bathrooms:   3,
			Guests:      8,
			Images: []string{
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6",
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750",
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c",
			},
			Amenities:    []string{"Pool", "Hot tub", "Kitchen", "Wifi", "Parking", "BBQ grill", "Air conditioning"},
			Latitude:     coord(33.4942),
			Longitude:    coord(-111.9261),
			PropertyType: "villa",
		},
		{
			Title:       "Designer Loft Apartment",
			Description: "Stylish urban loft with high ceilings and designer furnishings. This contemporary space offers a unique stay in a trendy neighborhood with easy access to restaurants, shopping, and cultural attractions. Industrial elements meet modern luxury.",
			Price:       175,
			Location:    "Brooklyn",
			City:        "Brooklyn",
			State:       "New York",
			Country:     "United States",
			Bedrooms:    1,
			Bathrooms:   1,
			Guests:      2,
			Images: []string{
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688",
				"https://images.unsplash.com/photo-1560448204-603b3fc33ddc",
				"https://images.unsplash.com/photo-1583847268964-b28dc8f51f92",
			},
			Amenities:    []string{"Wifi", "Kitchen", "TV", "Air conditioning", "Workspace", "Elevator"},
			Latitude:     coord(40.6782),
			Longitude:    coord(-73.9442),
			PropertyType: "apartment",
		},
		{
			Title:       "Oceanfront Condo",
			Description: "Beautiful oceanfront condo with panoramic views and beach access. Recently renovated with modern amenities while maintaining a coastal charm. Relax on the balcony watching dolphins play or take a short walk to nearby shops and restaurants.",
			Price:       279,
			Location:    "Miami Beach",
			City:        "Miami Beach",
			State:       "Florida",
			Country:     "United States",
			Bedrooms:    2,
			Bathrooms:   2,
			Guests:      4,
			Images: []string{
				"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4",
				"https://images.unsplash.com/photo-1566073771259-6a8506099945",
				"https://images.unsplash.com/photo-1564574685553-eddafc5dec31",
			},
			Amenities:    []string{"Beach access", "Ocean view", "Pool", "Wifi", "Kitchen", "Parking", "Gym"},
			Latitude:     coord(25.7907),
			Longitude:    coord(-80.1300),
			PropertyType: "beach house",
		},
		{
			Title:       "Charming Family Home",
			Description: "Comfortable family home in a safe neighborhood with a beautiful garden and outdoor seating. Spacious and well-appointed, this home is perfect for families or groups looking for a homey place to stay with all the amenities needed for a comfortable visit.",
			Price:       210,
			Location:    "Portland",
			City:        "Portland",
			State:       "Oregon",
			Country:     "United States",
			Bedrooms:    3,
			Bathrooms:   2,
			Guests:      6,
			Images: []string{
				"https://images.unsplash.com/photo-1480074568708-e7b720bb3f09",
				"https://images.unsplash.com/photo-1493809842364-78817add7ffb",
				"https://images.unsplash.com/photo-1484154218962-a197022b5858",
			},
			Amenities:    []string{"Garden", "Kitchen", "Wifi", "TV", "Washer", "Dryer", "Free parking"},
			Latitude:     coord(45.5051),
			Longitude:    coord(-122.6750),
			PropertyType: "house",
		},
		{
			Title:       "Lakeside Cabin",
			Description: "Rustic cabin on the shores of a beautiful lake with private dock and canoe included. Enjoy peaceful mornings on the porch and evening campfires under the stars. This authentic cabin offers the perfect blend of rustic charm and necessary comforts.",
			Price:       245,
			Location:    "Lake Tahoe",
			City:        "Lake Tahoe",
			State:       "California",
			Country:     "United States",
			Bedrooms:    2,
			Bathrooms:   1,
			Guests:      4,
			Images: []string{
				"https://images.unsplash.com/photo-1542718610-a1d656d1884c",
				"https://images.unsplash.com/photo-1464822759023-fed622ff2c3b",
				"https://images.unsplash.com/photo-1486870591958-9b9d0d1dda99",
			},
			Amenities:    []string{"Lakefront", "Private dock", "Canoe", "Fireplace", "Kitchen", "Wifi", "BBQ grill"},
			Latitude:     coord(39.0968),
			Longitude:    coord(-120.0324),
			PropertyType: "cabin",
		},
	}
}
