package catalog

// registry holds every listing category the marketplace publishes.
// Image caps and field sets mirror the live category forms.
var registry = map[string]Schema{
	"babysitters-childcare": {
		Slug:  "babysitters-childcare",
		Title: "Babysitters & Childcare",
		Fields: []Field{
			{Name: "category", Kind: FieldSelect, Required: true,
				Options: []string{"Full-time", "Part-time", "Occasional"}},
			{Name: "experience", Kind: FieldInt, Required: true, Min: 0, Max: 70},
		},
		ArrayFields: []ArrayField{
			{Name: "services", Options: []string{
				"Infant Care", "Toddler Care", "Homework Help", "Meal Preparation",
				"Overnight Care", "Special Needs Care",
			}},
		},
		ImageCap:       1,
		ImagesRequired: true,
		SingleImage:    true,
	},
	"photographers": {
		Slug:  "photographers",
		Title: "Photographers",
		Fields: []Field{
			{Name: "specialization", Kind: FieldSelect, Required: true,
				Options: []string{"Wedding", "Portrait", "Event", "Commercial", "Travel", "Wildlife"}},
			{Name: "experience", Kind: FieldInt, Required: true, Min: 0, Max: 70},
			{Name: "startingPrice", Kind: FieldFloat, Required: true, Min: 0},
		},
		ArrayFields: []ArrayField{
			{Name: "services", Options: []string{
				"Photo Editing", "Drone Photography", "Album Design", "Same-day Delivery", "Videography",
			}},
			{Name: "paymentMethods", Options: []string{"Cash", "Bank Transfer", "Card", "Online Payment"}},
		},
		ImageCap:       5,
		ImagesRequired: true,
	},
	"pet-care": {
		Slug:  "pet-care",
		Title: "Pet Care & Animal Services",
		Fields: []Field{
			{Name: "serviceType", Kind: FieldSelect, Required: true,
				Options: []string{"Veterinary", "Grooming", "Boarding", "Training", "Pet Sitting"}},
			{Name: "price", Kind: FieldFloat, Required: false, Min: 0},
		},
		ArrayFields: []ArrayField{
			{Name: "services", Options: []string{
				"Dogs", "Cats", "Birds", "Small Animals", "Home Visits", "Emergency Care",
			}},
		},
		ImageCap:       4,
		ImagesRequired: true,
	},
	"fashion-items": {
		Slug:  "fashion-items",
		Title: "Fashion & Accessories",
		Fields: []Field{
			{Name: "itemType", Kind: FieldSelect, Required: true,
				Options: []string{"Clothing", "Shoes", "Bags", "Jewellery", "Watches", "Other"}},
			{Name: "condition", Kind: FieldSelect, Required: true,
				Options: []string{"Brand New", "Like New", "Used"}},
			{Name: "price", Kind: FieldFloat, Required: true, Min: 0},
		},
		ArrayFields: []ArrayField{
			{Name: "tags", Options: []string{
				"Men", "Women", "Kids", "Handmade", "Imported", "Designer", "Vintage",
			}},
			{Name: "paymentMethods", Options: []string{"Cash", "Bank Transfer", "Card", "Cash on Delivery"}},
		},
		ImageCap:       4,
		ImagesRequired: true,
	},
	"rides": {
		Slug:  "rides",
		Title: "Rides & Vehicle Hire",
		Fields: []Field{
			{Name: "vehicleType", Kind: FieldSelect, Required: true,
				Options: []string{"Car", "Van", "Tuk Tuk", "Bus", "Motorbike", "Jeep"}},
			{Name: "seats", Kind: FieldInt, Required: true, Min: 1, Max: 60},
			{Name: "pricePerKm", Kind: FieldFloat, Required: true, Min: 0},
		},
		ArrayFields: []ArrayField{
			{Name: "features", Options: []string{
				"Air Conditioned", "Luggage Space", "English Speaking Driver", "Child Seat", "Airport Pickup",
			}},
		},
		ImageCap:       3,
		ImagesRequired: true,
	},
	"properties": {
		Slug:  "properties",
		Title: "Properties & Rentals",
		Fields: []Field{
			{Name: "propertyType", Kind: FieldSelect, Required: true,
				Options: []string{"House", "Apartment", "Land", "Villa", "Room", "Commercial"}},
			{Name: "bedrooms", Kind: FieldInt, Required: false, Min: 0, Max: 20},
			{Name: "price", Kind: FieldFloat, Required: true, Min: 0},
		},
		ArrayFields: []ArrayField{
			{Name: "amenities", Options: []string{
				"Parking", "Garden", "Pool", "Furnished", "Hot Water", "Security", "WiFi",
			}},
		},
		ImageCap:         5,
		ImagesRequired:   true,
		ProvincesFromAPI: true,
	},
	"gift-packs": {
		Slug:  "gift-packs",
		Title: "Gift Packs",
		Fields: []Field{
			{Name: "price", Kind: FieldFloat, Required: true, Min: 0},
		},
		ArrayFields: []ArrayField{
			{Name: "tags", Options: []string{
				"Birthday", "Anniversary", "Wedding", "Corporate", "Seasonal", "Custom",
			}},
		},
		ImageCap:       3,
		ImagesRequired: true,
	},
	"tour-guides": {
		Slug:  "tour-guides",
		Title: "Tour Guides",
		Fields: []Field{
			{Name: "experience", Kind: FieldInt, Required: true, Min: 0, Max: 70},
			{Name: "dailyRate", Kind: FieldFloat, Required: false, Min: 0},
		},
		ArrayFields: []ArrayField{
			{Name: "languages", Options: []string{
				"English", "Sinhala", "Tamil", "German", "French", "Chinese", "Japanese", "Russian",
			}},
		},
		ImageCap:         1,
		ImagesRequired:   false,
		SingleImage:      true,
		ProvincesFromAPI: true,
	},
}
