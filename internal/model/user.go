package model

// User is the account record as the service stores it.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Permission carries the capability flags of the authenticated user.
// Read-only from the client's perspective.
type Permission struct {
	UserID        int64 `json:"user_id"`
	Admin         bool  `json:"admin"`
	ViewPending   bool  `json:"view_pending"`
	ViewReceived  bool  `json:"view_received"`
	EditPending   bool  `json:"edit_pending"`
	CreateOrders  bool  `json:"create_orders"`
	EditReceived  bool  `json:"edit_received"`
	RemoveOrders  bool  `json:"remove_orders"`
	EditProducts  bool  `json:"edit_products"`
	ViewProducts  bool  `json:"view_products"`
	ViewSuppliers bool  `json:"view_suppliers"`
}
