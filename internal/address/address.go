package address

// Address is a delivery drop-off point owned by a user.
type Address struct {
	ID     int    `json:"addressId"`
	UserID int    `json:"userId"`
	Label  string `json:"label"`
	Line1  string `json:"line1"`
	City   string `json:"city"`
	Phone  string `json:"phone"`
}
