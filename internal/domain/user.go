package domain

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birthDate"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Role      string `json:"role"`
}

// OrderStats summarizes a user's purchase history for the profile view.
type OrderStats struct {
	TotalOrders      int   `json:"totalOrders"`
	TotalAmountSpent int64 `json:"totalAmountSpent"`
}
