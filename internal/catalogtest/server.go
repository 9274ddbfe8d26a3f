// Package catalogtest provides an in-memory stand-in for the remote catalog
// service, used by the gateway and command-surface tests. It speaks the same
// GET-only wire protocol: credentials in the initialize path, then two
// identity headers on every call, entities embedded as path segments or
// query parameters, and name projections emitted as JSON tuples.
//
// The stub validates credentials against a fixed account set and records
// every request's header pair, so tests can assert that no call ever
// carried a mixed identity.
package catalogtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stocklink/internal/model"
)

// RecordedRequest captures the identity and shape of one incoming call.
type RecordedRequest struct {
	Path     string
	Query    url.Values
	Username string
	Password string
}

// Server is the in-memory catalog service.
type Server struct {
	URL string

	mu       sync.Mutex
	accounts map[string]string
	users    map[string]model.User

	products   map[int64]model.Product
	brands     map[int64]model.Brand
	categories map[int64]model.Category
	suppliers  map[int64]model.Supplier
	pending    map[int64]model.PendingOrder
	received   map[int64]model.ReceivedOrder
	nextID     int64

	requests []RecordedRequest
	holds    map[string]chan struct{}

	httpSrv *httptest.Server
}

// New starts a stub with the given accounts (username -> password).
func New(accounts map[string]string) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		accounts:   make(map[string]string),
		users:      make(map[string]model.User),
		products:   make(map[int64]model.Product),
		brands:     make(map[int64]model.Brand),
		categories: make(map[int64]model.Category),
		suppliers:  make(map[int64]model.Supplier),
		pending:    make(map[int64]model.PendingOrder),
		received:   make(map[int64]model.ReceivedOrder),
		holds:      make(map[string]chan struct{}),
	}
	for u, p := range accounts {
		s.accounts[u] = p
	}

	r := gin.New()
	r.Use(s.record)

	r.GET("/initialize/:username/:password", s.initialize)
	r.GET("/permissions", s.auth, s.permissions)
	r.GET("/signup", s.auth, s.signup)
	r.GET("/update_user/:json", s.auth, s.updateUser)

	r.GET("/update_product/:json", s.auth, s.updateProduct)
	r.GET("/new_product", s.auth, s.newProduct)
	r.GET("/remove_product/:id", s.auth, removeByID(&s.mu, s.products))
	r.GET("/products", s.auth, s.listProducts)
	r.GET("/products/names", s.auth, s.productNames)
	r.GET("/product/:id", s.auth, s.getProduct)
	r.GET("/product_brand/:id", s.auth, s.productBrand)
	r.GET("/product_suppliers/:id", s.auth, s.productSuppliers)
	r.GET("/product_categories/:id", s.auth, s.productCategories)

	r.GET("/new_brand", s.auth, s.newBrand)
	r.GET("/update_brand", s.auth, s.updateBrand)
	r.GET("/remove_brand/:id", s.auth, removeByID(&s.mu, s.brands))
	r.GET("/brands", s.auth, s.listBrands)
	r.GET("/brands/names", s.auth, s.brandNames)
	r.GET("/brand/:id", s.auth, getByID(&s.mu, s.brands))

	r.GET("/new_category", s.auth, s.newCategory)
	r.GET("/update_category", s.auth, s.updateCategory)
	r.GET("/remove_category/:id", s.auth, removeByID(&s.mu, s.categories))
	r.GET("/categories", s.auth, s.listCategories)
	r.GET("/categories/names", s.auth, s.categoryNames)
	r.GET("/category/:id", s.auth, getByID(&s.mu, s.categories))

	r.GET("/new_supplier", s.auth, s.newSupplier)
	r.GET("/update_supplier", s.auth, s.updateSupplier)
	r.GET("/remove_supplier/:id", s.auth, removeByID(&s.mu, s.suppliers))
	r.GET("/suppliers", s.auth, s.listSuppliers)
	r.GET("/suppliers/names", s.auth, s.supplierNames)
	r.GET("/supplier/:id", s.auth, getByID(&s.mu, s.suppliers))

	r.GET("/new_pending_order", s.auth, s.newPendingOrder)
	r.GET("/update_pending_order", s.auth, s.updatePendingOrder)
	r.GET("/remove_pending_order/:id", s.auth, removeByID(&s.mu, s.pending))
	r.GET("/pending_orders", s.auth, s.listPendingOrders)

	r.GET("/update_received_order", s.auth, s.updateReceivedOrder)
	r.GET("/remove_received_order/:id", s.auth, removeByID(&s.mu, s.received))
	r.GET("/received_orders", s.auth, s.listReceivedOrders)
	r.GET("/mark_order_as_received", s.auth, s.markReceived)

	s.httpSrv = httptest.NewServer(r)
	s.URL = s.httpSrv.URL + "/"
	return s
}

func (s *Server) Close() { s.httpSrv.Close() }

// Requests returns a copy of every recorded call.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent call, or a zero value.
func (s *Server) LastRequest() RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}
	}
	return s.requests[len(s.requests)-1]
}

// HoldPath makes the next request to path block until the returned release
// function is called. Used to pin an operation in flight.
func (s *Server) HoldPath(path string) (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	s.holds[path] = ch
	s.mu.Unlock()
	return func() { close(ch) }
}

// SeedProduct inserts a product directly, bypassing the wire protocol.
func (s *Server) SeedProduct(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
	if p.ID >= s.nextID {
		s.nextID = p.ID + 1
	}
}

// SeedBrand inserts a brand directly.
func (s *Server) SeedBrand(b model.Brand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brands[b.ID] = b
	if b.ID >= s.nextID {
		s.nextID = b.ID + 1
	}
}

// SeedPendingOrder inserts a pending order directly.
func (s *Server) SeedPendingOrder(o model.PendingOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[o.ID] = o
	if o.ID >= s.nextID {
		s.nextID = o.ID + 1
	}
}

// ── middleware ───────────────────────────────────────────────────────────────

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Path:     c.Request.URL.Path,
		Query:    c.Request.URL.Query(),
		Username: c.GetHeader("username"),
		Password: c.GetHeader("password"),
	})
	hold := s.holds[c.Request.URL.Path]
	delete(s.holds, c.Request.URL.Path)
	s.mu.Unlock()

	if hold != nil {
		<-hold
	}
	c.Next()
}

func (s *Server) auth(c *gin.Context) {
	username := c.GetHeader("username")
	s.mu.Lock()
	password, ok := s.accounts[username]
	s.mu.Unlock()
	if !ok || password != c.GetHeader("password") {
		c.AbortWithStatus(http.StatusUnauthorized)
	}
}

// ── handlers ─────────────────────────────────────────────────────────────────

func (s *Server) initialize(c *gin.Context) {
	s.mu.Lock()
	password, ok := s.accounts[c.Param("username")]
	s.mu.Unlock()
	if !ok || password != c.Param("password") {
		c.Status(http.StatusUnauthorized)
		return
	}
	c.Status(http.StatusOK)
}

func (s *Server) permissions(c *gin.Context) {
	c.JSON(http.StatusOK, model.Permission{
		UserID: 1, Admin: true,
		ViewPending: true, ViewReceived: true, EditPending: true,
		CreateOrders: true, EditReceived: true, RemoveOrders: true,
		EditProducts: true, ViewProducts: true, ViewSuppliers: true,
	})
}

func (s *Server) signup(c *gin.Context) {
	username := c.Query("username")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[username]; exists || username == "" {
		c.JSON(http.StatusOK, nil) // null body signals rejection
		return
	}
	s.accounts[username] = c.Query("password")
	c.JSON(http.StatusOK, true)
}

func (s *Server) updateUser(c *gin.Context) {
	var u model.User
	if err := json.Unmarshal([]byte(c.Param("json")), &u); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.users[u.Name] = u
	s.mu.Unlock()
	c.Status(http.StatusOK)
}

func (s *Server) updateProduct(c *gin.Context) {
	var p model.Product
	if err := json.Unmarshal([]byte(c.Param("json")), &p); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	// Prices land in decimal(10,2) columns server-side.
	p.CostPricePerUnit = p.CostPricePerUnit.Round(2)
	p.SellingPricePerUnit = p.SellingPricePerUnit.Round(2)
	s.mu.Lock()
	s.products[p.ID] = p
	if p.ID >= s.nextID {
		s.nextID = p.ID + 1
	}
	s.mu.Unlock()
	c.Status(http.StatusOK)
}

func (s *Server) newProduct(c *gin.Context) {
	cost, err := decimal.NewFromString(c.Query("cost_price_per_unit"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	selling, err := decimal.NewFromString(c.Query("selling_price_per_unit"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	buyLevel, _ := strconv.ParseFloat(c.Query("buy_level"), 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocID()
	s.products[id] = model.Product{
		ID:                  id,
		UPC:                 c.Query("upc"),
		Name:                c.Query("name"),
		Description:         c.Query("description"),
		MeasureByWeight:     c.Query("measure_by_weight") == "true",
		CostPricePerUnit:    cost.Round(2),
		SellingPricePerUnit: selling.Round(2),
		BuyLevel:            &buyLevel,
	}
	c.JSON(http.StatusOK, id)
}

func (s *Server) listProducts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := page(sortedValues(s.products), c)
	out := make([]productJSON, 0, len(rows))
	for _, p := range rows {
		out = append(out, renderProduct(p))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getProduct(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[paramID(c)]; ok {
		c.JSON(http.StatusOK, renderProduct(p))
		return
	}
	c.JSON(http.StatusOK, nil)
}

func (s *Server) productNames(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tuples := make([][]interface{}, 0, len(s.products))
	for _, p := range sortedValues(s.products) {
		tuples = append(tuples, []interface{}{p.Name, p.UPC, p.ID})
	}
	c.JSON(http.StatusOK, tuples)
}

func (s *Server) productBrand(c *gin.Context) {
	productID := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range sortedValues(s.brands) {
		for _, slot := range b.Products {
			if slot != nil && *slot == productID {
				c.JSON(http.StatusOK, b)
				return
			}
		}
	}
	c.JSON(http.StatusOK, nil)
}

func (s *Server) productSuppliers(c *gin.Context) {
	productID := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]model.Supplier, 0)
	for _, sup := range sortedValues(s.suppliers) {
		for _, slot := range sup.Products {
			if slot != nil && *slot == productID {
				matched = append(matched, sup)
				break
			}
		}
	}
	c.JSON(http.StatusOK, matched)
}

func (s *Server) productCategories(c *gin.Context) {
	productID := paramID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]model.Category, 0)
	for _, cat := range sortedValues(s.categories) {
		for _, slot := range cat.Products {
			if slot != nil && *slot == productID {
				matched = append(matched, cat)
				break
			}
		}
	}
	c.JSON(http.StatusOK, matched)
}

func (s *Server) newBrand(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocID()
	s.brands[id] = model.Brand{ID: id, Name: c.Query("name"), Products: []*int64{}}
	c.JSON(http.StatusOK, id)
}

func (s *Server) updateBrand(c *gin.Context) {
	var b model.Brand
	if err := json.Unmarshal([]byte(c.Query("brand_info")), &b); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.brands[b.ID] = b
	s.mu.Unlock()
	c.Status(http.StatusOK)
}

func (s *Server) listBrands(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, page(sortedValues(s.brands), c))
}

func (s *Server) brandNames(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tuples := make([][]interface{}, 0, len(s.brands))
	for _, b := range sortedValues(s.brands) {
		tuples = append(tuples, []interface{}{b.Name, b.ID})
	}
	c.JSON(http.StatusOK, tuples)
}

func (s *Server) newCategory(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocID()
	s.categories[id] = model.Category{ID: id, Name: c.Query("name"), Products: []*int64{}}
	c.JSON(http.StatusOK, id)
}

func (s *Server) updateCategory(c *gin.Context) {
	var cat model.Category
	if err := json.Unmarshal([]byte(c.Query("category_info")), &cat); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.categories[cat.ID] = cat
	s.mu.Unlock()
	c.Status(http.StatusOK)
}

func (s *Server) listCategories(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, page(sortedValues(s.categories), c))
}

func (s *Server) categoryNames(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tuples := make([][]interface{}, 0, len(s.categories))
	for _, cat := range sortedValues(s.categories) {
		tuples = append(tuples, []interface{}{cat.Name, cat.ID})
	}
	c.JSON(http.StatusOK, tuples)
}

func (s *Server) newSupplier(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocID()
	sup := model.Supplier{ID: id, Name: c.Query("name"), Products: []*int64{}}
	if phone := c.Query("phone_number"); phone != "" {
		sup.PhoneNumber = &phone
	}
	if email := c.Query("email"); email != "" {
		sup.Email = &email
	}
	s.suppliers[id] = sup
	c.JSON(http.StatusOK, id)
}

func (s *Server) updateSupplier(c *gin.Context) {
	var sup model.Supplier
	if err := json.Unmarshal([]byte(c.Query("supplier_info")), &sup); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.suppliers[sup.ID] = sup
	s.mu.Unlock()
	c.Status(http.StatusOK)
}

func (s *Server) listSuppliers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, page(sortedValues(s.suppliers), c))
}

func (s *Server) supplierNames(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tuples := make([][]interface{}, 0, len(s.suppliers))
	for _, sup := range sortedValues(s.suppliers) {
		tuples = append(tuples, []interface{}{sup.Name, sup.ID})
	}
	c.JSON(http.StatusOK, tuples)
}

func (s *Server) newPendingOrder(c *gin.Context) {
	amount, _ := strconv.ParseFloat(c.Query("amount"), 64)
	productID, _ := strconv.ParseInt(c.Query("product_id"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocID()
	s.pending[id] = model.PendingOrder{ID: id, ProductID: productID, Amount: amount}
	c.JSON(http.StatusOK, id)
}

func (s *Server) updatePendingOrder(c *gin.Context) {
	var o model.PendingOrder
	if err := json.Unmarshal([]byte(c.Query("order_info")), &o); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.pending[o.ID] = o
	s.mu.Unlock()
	c.Status(http.StatusOK)
}

func (s *Server) listPendingOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, page(sortedValues(s.pending), c))
}

func (s *Server) updateReceivedOrder(c *gin.Context) {
	var o model.ReceivedOrder
	if err := json.Unmarshal([]byte(c.Query("order_info")), &o); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.received[o.ID] = o
	s.mu.Unlock()
	c.Status(http.StatusOK)
}

func (s *Server) listReceivedOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, page(sortedValues(s.received), c))
}

func (s *Server) markReceived(c *gin.Context) {
	orderID, _ := strconv.ParseInt(c.Query("order_id"), 10, 64)
	unix, _ := strconv.ParseInt(c.Query("date"), 10, 64)
	actuallyReceived, _ := strconv.ParseFloat(c.Query("actually_received"), 64)
	damaged, _ := strconv.ParseFloat(c.Query("damaged"), 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	pending, ok := s.pending[orderID]
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	delete(s.pending, orderID)

	id := s.allocID()
	ts := model.NewTimestamp(time.Unix(unix, 0).UTC())
	s.received[id] = model.ReceivedOrder{
		ID:               id,
		Received:         &ts,
		ProductID:        pending.ProductID,
		GrossAmount:      pending.Amount,
		ActuallyReceived: actuallyReceived,
		Damaged:          damaged,
	}
	c.JSON(http.StatusOK, id)
}

// ── helpers ──────────────────────────────────────────────────────────────────

// productJSON is the response form of a product. Prices render at the fixed
// two-decimal scale of the service's money columns; decimal.Decimal's own
// MarshalJSON trims trailing zeros and would misreport the scale.
type productJSON struct {
	ID                  int64            `json:"id"`
	UPC                 string           `json:"upc"`
	Name                string           `json:"name"`
	Description         string           `json:"description"`
	Amount              float64          `json:"amount"`
	CaseSize            *int64           `json:"case_size"`
	MeasureByWeight     bool             `json:"measure_by_weight"`
	CostPricePerUnit    string           `json:"cost_price_per_unit"`
	SellingPricePerUnit string           `json:"selling_price_per_unit"`
	SaleEnd             *model.Timestamp `json:"sale_end"`
	BuyLevel            *float64         `json:"buy_level"`
	SalePrice           *string          `json:"sale_price"`
}

func renderProduct(p model.Product) productJSON {
	out := productJSON{
		ID:                  p.ID,
		UPC:                 p.UPC,
		Name:                p.Name,
		Description:         p.Description,
		Amount:              p.Amount,
		CaseSize:            p.CaseSize,
		MeasureByWeight:     p.MeasureByWeight,
		CostPricePerUnit:    p.CostPricePerUnit.StringFixed(2),
		SellingPricePerUnit: p.SellingPricePerUnit.StringFixed(2),
		SaleEnd:             p.SaleEnd,
	}
	out.BuyLevel = p.BuyLevel
	if p.SalePrice != nil {
		fixed := p.SalePrice.StringFixed(2)
		out.SalePrice = &fixed
	}
	return out
}

// allocID must be called with s.mu held.
func (s *Server) allocID() int64 {
	if s.nextID == 0 {
		s.nextID = 1
	}
	id := s.nextID
	s.nextID++
	return id
}

func paramID(c *gin.Context) int64 {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return id
}

type keyed interface {
	model.Product | model.Brand | model.Category | model.Supplier | model.PendingOrder | model.ReceivedOrder
}

func sortedValues[T keyed](m map[int64]T) []T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(m))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

func page[T keyed](all []T, c *gin.Context) []T {
	limit, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil {
		limit = int64(len(all))
	}
	offset, _ := strconv.ParseInt(c.Query("offset"), 10, 64)
	if offset >= int64(len(all)) {
		return []T{}
	}
	end := offset + limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[offset:end]
}

func getByID[T keyed](mu *sync.Mutex, m map[int64]T) gin.HandlerFunc {
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		if v, ok := m[paramID(c)]; ok {
			c.JSON(http.StatusOK, v)
			return
		}
		c.JSON(http.StatusOK, nil)
	}
}

func removeByID[T keyed](mu *sync.Mutex, m map[int64]T) gin.HandlerFunc {
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		delete(m, paramID(c))
		c.Status(http.StatusOK)
	}
}
