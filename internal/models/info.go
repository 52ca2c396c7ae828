package models

// RestaurantInfo is the static restaurant metadata shown on the site and
// fed to the chat assistant
type RestaurantInfo struct {
	Name    string `json:"name"`
	Slogan  string `json:"slogan"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Hours   string `json:"hours"`
}

// Restaurant holds the single location this service serves
var Restaurant = RestaurantInfo{
	Name:    "LaRosa's Restaurant & Pizzeria",
	Slogan:  "The Art of Flavor",
	Address: "504 Hempstead Turnpike, West Hempstead, NY 11552",
	Phone:   "516-292-3200",
	Email:   "info@larosaspizzeria.com",
	Hours:   "Mon-Thu: 11am-10pm | Fri-Sat: 11am-11pm | Sun: 12pm-10pm",
}
