package domain

// CustomerInfo is the transient checkout form state. It is validated
// client-side, turned into a ShippingInfo snapshot at order submission and
// discarded afterwards.
type CustomerInfo struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Province string `json:"province"` // province code, e.g. "hanoi"
	District string `json:"district"` // district code, child of Province
	Address  string `json:"address"`
	Note     string `json:"note"`
}
