//go:build unit || e2e

// Package fakeapi is an in-memory booking platform speaking the same JSON dialect as the
// real one. It signs real tokens so the console can read their expiry.
package fakeapi

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"booking-console/internal/domain/booking"
	"booking-console/internal/pkg/jwt"
	"booking-console/internal/pkg/password"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "fake-platform-secret"

type account struct {
	id          int64
	username    string
	email       string
	hash        string
	isStaff     bool
	isSuperuser bool
}

type slot struct {
	id        int64
	serviceID int64
	date      booking.Date
	start     booking.TimeOfDay
	end       booking.TimeOfDay
}

type record struct {
	id             int64
	ownerID        int64
	serviceID      int64
	availabilityID int64
	status         booking.Status
	notes          string
}

type Server struct {
	tokens *jwt.Service
	hasher *password.Hasher

	mu       sync.Mutex
	nextID   int64
	accounts map[string]*account
	services []booking.Service
	slots    map[int64]slot
	bookings []*record
	revoked  map[string]bool // by username
	calls    map[string]int
}

func New() *Server {
	return &Server{
		tokens:   jwt.NewService(testSecret, 15*time.Minute, 24*time.Hour),
		hasher:   password.NewHasher(bcrypt.MinCost),
		nextID:   100,
		accounts: map[string]*account{},
		slots:    map[int64]slot{},
		revoked:  map[string]bool{},
		calls:    map[string]int{},
	}
}

// Start serves the fake under /api and returns the base URL for APIConfig.BaseURL.
func (s *Server) Start(t *testing.T) string {
	t.Helper()
	ts := httptest.NewServer(s.Engine())
	t.Cleanup(ts.Close)
	return ts.URL + "/api/"
}

func (s *Server) AddUser(username, pw string, staff bool) int64 {
	hash, err := s.hasher.Hash(pw)
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.accounts[username] = &account{id: s.nextID, username: username, hash: hash, isStaff: staff}
	return s.nextID
}

func (s *Server) AddService(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, booking.Service{ID: id, Name: name})
}

func (s *Server) AddSlot(id, serviceID int64, date booking.Date, start, end booking.TimeOfDay) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[id] = slot{id: id, serviceID: serviceID, date: date, start: start, end: end}
}

// RevokeUser makes every token issued so far to username answer 401, as if it had
// expired on the platform.
func (s *Server) RevokeUser(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[username] = true
}

// Calls reports how many times "METHOD path" was requested.
func (s *Server) Calls(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method+" "+path]
}

func (s *Server) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(s.count)

	api := engine.Group("/api")
	api.POST("/auth/login/", s.login)
	api.POST("/auth/register/", s.register)

	authed := api.Group("", s.authenticate)
	authed.GET("/auth/me/", s.me)
	authed.GET("/services/", s.listServices)
	authed.GET("/services/:id/available-slots/", s.availableSlots)
	authed.GET("/bookings/", s.listBookings)
	authed.POST("/bookings/", s.createBooking)
	authed.POST("/bookings/:id/confirm/", s.confirm)
	authed.POST("/bookings/:id/cancel/", s.cancel)
	return engine
}

func (s *Server) count(c *gin.Context) {
	s.mu.Lock()
	s.calls[c.Request.Method+" "+c.Request.URL.Path]++
	s.mu.Unlock()
	c.Next()
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Malformed request."})
		return
	}

	s.mu.Lock()
	acc := s.accounts[req.Username]
	s.mu.Unlock()
	if acc == nil || s.hasher.Compare(acc.hash, req.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "No active account found with the given credentials"})
		return
	}

	access, err := s.tokens.GenerateAccessToken(acc.id)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	refresh, err := s.tokens.GenerateRefreshToken(acc.id)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access, "refresh": refresh})
}

func (s *Server) register(c *gin.Context) {
	var req struct {
		Username  string `json:"username"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Malformed request."})
		return
	}

	s.mu.Lock()
	_, taken := s.accounts[req.Username]
	s.mu.Unlock()
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"username": []string{"A user with that username already exists."}})
		return
	}

	id := s.AddUser(req.Username, req.Password, false)
	s.mu.Lock()
	s.accounts[req.Username].email = req.Email
	s.mu.Unlock()
	c.JSON(http.StatusCreated, gin.H{"id": id, "username": req.Username, "email": req.Email})
}

func (s *Server) authenticate(c *gin.Context) {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
		return
	}

	claims, err := s.tokens.ValidateToken(token)
	if err != nil || claims.TokenType != jwt.TokenTypeAccess {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Given token not valid for any token type"})
		return
	}

	acc := s.accountByID(claims.UserID)
	if acc == nil || s.isRevoked(acc.username) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Given token not valid for any token type"})
		return
	}
	c.Set("account", acc)
	c.Next()
}

func (s *Server) isRevoked(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revoked[username]
}

func (s *Server) accountByID(id int64) *account {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.id == id {
			return acc
		}
	}
	return nil
}

func current(c *gin.Context) *account {
	return c.MustGet("account").(*account)
}

func (s *Server) me(c *gin.Context) {
	acc := current(c)
	c.JSON(http.StatusOK, gin.H{
		"id":           acc.id,
		"username":     acc.username,
		"email":        acc.email,
		"is_staff":     acc.isStaff,
		"is_superuser": acc.isSuperuser,
	})
}

func (s *Server) listServices(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gin.H, 0, len(s.services))
	for _, svc := range s.services {
		out = append(out, gin.H{"id": svc.ID, "name": svc.Name})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) availableSlots(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	date, err := booking.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"date": []string{"Enter a valid date."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []gin.H{}
	for _, sl := range s.sortedSlotsLocked() {
		if sl.serviceID != serviceID || sl.date != date || s.takenLocked(sl.id) {
			continue
		}
		out = append(out, slotJSON(sl))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) sortedSlotsLocked() []slot {
	out := make([]slot, 0, len(s.slots))
	for _, sl := range s.slots {
		out = append(out, sl)
	}
	slices.SortFunc(out, func(a, b slot) int { return int(a.id - b.id) })
	return out
}

func (s *Server) takenLocked(availabilityID int64) bool {
	return slices.ContainsFunc(s.bookings, func(r *record) bool {
		return r.availabilityID == availabilityID && r.status != booking.StatusCancelled
	})
}

func slotJSON(sl slot) gin.H {
	return gin.H{
		"id":         sl.id,
		"date":       sl.date.String(),
		"start_time": sl.start.String(),
		"end_time":   sl.end.String(),
	}
}

func (s *Server) listBookings(c *gin.Context) {
	acc := current(c)
	admin := acc.isStaff || acc.isSuperuser

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []gin.H{}
	for _, r := range s.bookings {
		if !admin && r.ownerID != acc.id {
			continue
		}
		if admin && !s.matchesLocked(r, c) {
			continue
		}
		out = append(out, s.bookingJSONLocked(r))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) matchesLocked(r *record, c *gin.Context) bool {
	if v := c.Query("service"); v != "" && v != strconv.FormatInt(r.serviceID, 10) {
		return false
	}
	if v := c.Query("status"); v != "" && v != r.status.String() {
		return false
	}
	if v := c.Query("date"); v != "" && v != s.slots[r.availabilityID].date.String() {
		return false
	}
	if v := c.Query("username"); v != "" && !strings.Contains(s.ownerNameLocked(r.ownerID), v) {
		return false
	}
	return true
}

func (s *Server) ownerNameLocked(id int64) string {
	for _, acc := range s.accounts {
		if acc.id == id {
			return acc.username
		}
	}
	return ""
}

func (s *Server) bookingJSONLocked(r *record) gin.H {
	out := gin.H{
		"id":           r.id,
		"service":      r.serviceID,
		"availability": r.availabilityID,
		"status":       r.status.String(),
		"notes":        r.notes,
		"username":     s.ownerNameLocked(r.ownerID),
	}
	if sl, ok := s.slots[r.availabilityID]; ok {
		out["date"] = sl.date.String()
		out["start_time"] = sl.start.String()
		out["end_time"] = sl.end.String()
	}
	return out
}

func (s *Server) createBooking(c *gin.Context) {
	var req struct {
		Service      int64  `json:"service"`
		Availability int64  `json:"availability"`
		Notes        string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Malformed request."})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[req.Availability]
	if !ok || sl.serviceID != req.Service {
		c.JSON(http.StatusBadRequest, gin.H{"availability": []string{"Invalid availability."}})
		return
	}
	if s.takenLocked(sl.id) {
		c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{"This time slot is already booked."}})
		return
	}

	s.nextID++
	r := &record{
		id:             s.nextID,
		ownerID:        current(c).id,
		serviceID:      req.Service,
		availabilityID: req.Availability,
		status:         booking.StatusPending,
		notes:          req.Notes,
	}
	s.bookings = append(s.bookings, r)
	c.JSON(http.StatusCreated, s.bookingJSONLocked(r))
}

func (s *Server) confirm(c *gin.Context) {
	s.act(c, func(acc *account, r *record) (int, gin.H) {
		if !acc.isStaff && !acc.isSuperuser {
			return http.StatusForbidden, gin.H{"detail": "You do not have permission to perform this action."}
		}
		if r.status != booking.StatusPending {
			return http.StatusBadRequest, gin.H{"detail": "Only pending bookings can be confirmed."}
		}
		r.status = booking.StatusConfirmed
		return http.StatusOK, nil
	})
}

func (s *Server) cancel(c *gin.Context) {
	s.act(c, func(acc *account, r *record) (int, gin.H) {
		if r.ownerID != acc.id && !acc.isStaff && !acc.isSuperuser {
			return http.StatusNotFound, gin.H{"detail": "Not found."}
		}
		if r.status == booking.StatusCancelled {
			return http.StatusBadRequest, gin.H{"detail": "Booking is already cancelled."}
		}
		r.status = booking.StatusCancelled
		return http.StatusOK, nil
	})
}

func (s *Server) act(c *gin.Context, apply func(*account, *record) (int, gin.H)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.bookings, func(r *record) bool { return r.id == id })
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	r := s.bookings[idx]
	status, body := apply(current(c), r)
	if body != nil {
		c.JSON(status, body)
		return
	}
	c.JSON(status, s.bookingJSONLocked(r))
}
