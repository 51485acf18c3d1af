package mockapi

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	qrcode "github.com/skip2/go-qrcode"

	"btickets/models"
	"btickets/utils"

	"golang.org/x/crypto/bcrypt"
)

func (s *Server) login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request"})
	}

	s.mu.Lock()
	id, ok := s.emails[req.Email]
	var rec *userRecord
	if ok {
		rec = s.users[id]
	}
	s.mu.Unlock()

	if rec == nil || bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	}

	token, err := s.issueToken(rec.user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Token issuance failed"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": map[string]any{
			"token": token,
			"user":  rec.user,
		},
	})
}

func (s *Server) register(c echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request"})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Name, email and password are required"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Registration failed"})
	}

	s.mu.Lock()
	if _, exists := s.emails[req.Email]; exists {
		s.mu.Unlock()
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email already registered"})
	}
	rec := &userRecord{
		user: models.User{
			ID:    uuid.NewString(),
			Name:  req.Name,
			Email: req.Email,
		},
		passwordHash: hash,
	}
	s.users[rec.user.ID] = rec
	s.emails[rec.user.Email] = rec.user.ID
	s.favorites[rec.user.ID] = make(map[string]bool)
	s.mu.Unlock()

	token, err := s.issueToken(rec.user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Token issuance failed"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": map[string]any{
			"token": token,
			"user":  rec.user,
		},
	})
}

func (s *Server) logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (s *Server) updateProfile(c echo.Context) error {
	var req models.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The record can vanish between the auth check and here when a
	// concurrent request deletes the account.
	rec, ok := s.users[s.userID(c)]
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}
	if req.Name != "" {
		rec.user.Name = req.Name
	}
	if req.Email != "" && req.Email != rec.user.Email {
		if _, taken := s.emails[req.Email]; taken {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email already registered"})
		}
		delete(s.emails, rec.user.Email)
		rec.user.Email = req.Email
		s.emails[req.Email] = rec.user.ID
	}
	if req.ProfileImage != "" {
		rec.user.ProfileImage = req.ProfileImage
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"user":    rec.user,
	})
}

func (s *Server) uploadProfileImage(c echo.Context) error {
	var req struct {
		Image string `json:"image"`
	}
	if err := c.Bind(&req); err != nil || req.Image == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Image payload is required"})
	}

	imageURL := fmt.Sprintf("https://cdn.b-tickets-app.com/profiles/%s.png", uuid.NewString())

	s.mu.Lock()
	rec, ok := s.users[s.userID(c)]
	if ok {
		rec.user.ProfileImage = imageURL
	}
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"imageUrl": imageURL,
	})
}

func (s *Server) deleteAccount(c echo.Context) error {
	s.mu.Lock()
	rec, ok := s.users[s.userID(c)]
	if ok {
		delete(s.emails, rec.user.Email)
		delete(s.users, rec.user.ID)
		delete(s.favorites, rec.user.ID)
		delete(s.tickets, rec.user.ID)
	}
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (s *Server) recentEvents(c echo.Context) error {
	s.mu.Lock()
	events := make([]models.Event, len(s.events))
	copy(events, s.events)
	s.mu.Unlock()

	return c.JSON(http.StatusOK, map[string]any{"recentEvents": events})
}

func (s *Server) popularEvents(c echo.Context) error {
	s.mu.Lock()
	var popular []models.Event
	for _, e := range s.events {
		if e.Featured {
			popular = append(popular, e)
		}
	}
	s.mu.Unlock()

	return c.JSON(http.StatusOK, map[string]any{"data": popular})
}

func (s *Server) eventByID(c echo.Context) error {
	s.mu.Lock()
	event, ok := s.findEvent(c.PathParam("id"))
	s.mu.Unlock()

	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Event not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": event})
}

// findEvent returns a copy; callers must hold s.mu.
func (s *Server) findEvent(id string) (models.Event, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

func (s *Server) listFavorites(c echo.Context) error {
	s.mu.Lock()
	favs := s.favorites[s.userID(c)]
	var events []models.Event
	for _, e := range s.events {
		if favs[e.ID] {
			e.IsFavorite = true
			events = append(events, e)
		}
	}
	s.mu.Unlock()

	return c.JSON(http.StatusOK, map[string]any{"data": events})
}

func (s *Server) addFavorite(c echo.Context) error {
	return s.setFavorite(c, c.PathParam("eventId"), true)
}

func (s *Server) removeFavorite(c echo.Context) error {
	return s.setFavorite(c, c.PathParam("eventId"), false)
}

func (s *Server) setFavorite(c echo.Context, eventID string, favorite bool) error {
	s.mu.Lock()
	event, ok := s.findEvent(eventID)
	if !ok {
		s.mu.Unlock()
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Event not found"})
	}

	favs := s.favorites[s.userID(c)]
	if favorite {
		favs[eventID] = true
	} else {
		delete(favs, eventID)
	}
	s.mu.Unlock()

	event.IsFavorite = favorite
	return c.JSON(http.StatusOK, map[string]any{
		"data": map[string]any{"event": event},
	})
}

func (s *Server) listTickets(c echo.Context) error {
	s.mu.Lock()
	tickets := append([]models.Ticket(nil), s.tickets[s.userID(c)]...)
	s.mu.Unlock()

	return c.JSON(http.StatusOK, map[string]any{"data": tickets})
}

func (s *Server) ticketByID(c echo.Context) error {
	id := c.PathParam("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tickets[s.userID(c)] {
		if t.ID == id {
			return c.JSON(http.StatusOK, map[string]any{"data": t})
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "Ticket not found"})
}

func (s *Server) processPayment(c echo.Context) error {
	var form models.PaymentForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request"})
	}
	if err := form.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.findEvent(form.EventID)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Event not found"})
	}
	if form.PriceCategory != "" && event.PriceFor(form.PriceCategory) == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Unknown price category"})
	}

	ticket := models.Ticket{
		ID:           uuid.NewString(),
		Event:        event,
		Status:       models.TicketActive,
		PurchaseDate: time.Now().Format("2006-01-02"),
	}

	ref, err := utils.GenerateCode(4)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Payment failed"})
	}
	png, err := qrcode.Encode(fmt.Sprintf("btickets:%s:%s", ticket.ID, ref), qrcode.Medium, 256)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Payment failed"})
	}
	ticket.QRCode = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

	userID := s.userID(c)
	s.tickets[userID] = append(s.tickets[userID], ticket)

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"ticketId": ticket.ID,
	})
}
