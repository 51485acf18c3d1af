// Package mockapi is an in-process stub of the b-tickets backend. It
// serves every endpoint the client consumes over in-memory fixture data,
// for local development and end-to-end tests. Nothing is persisted.
package mockapi

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v5"

	"btickets/internal/fixtures"
	"btickets/models"

	"golang.org/x/crypto/bcrypt"
)

// DemoEmail and DemoPassword identify the seeded demo account.
const (
	DemoEmail    = "demo@b-tickets.app"
	DemoPassword = "password123"
)

type Config struct {
	// Secret signs the session tokens. Required.
	Secret string

	// AuthLimiter, when set, rate limits the credential endpoints.
	AuthLimiter echo.MiddlewareFunc
}

type userRecord struct {
	user         models.User
	passwordHash []byte
}

type Server struct {
	echo   *echo.Echo
	secret []byte

	mu        sync.Mutex
	users     map[string]*userRecord
	emails    map[string]string          // email -> user id
	events    []models.Event
	favorites map[string]map[string]bool // user id -> event id set
	tickets   map[string][]models.Ticket // user id -> tickets
}

func New(cfg Config) *Server {
	s := &Server{
		echo:      echo.New(),
		secret:    []byte(cfg.Secret),
		users:     make(map[string]*userRecord),
		emails:    make(map[string]string),
		events:    fixtures.Events(),
		favorites: make(map[string]map[string]bool),
		tickets:   make(map[string][]models.Ticket),
	}
	s.seedDemoUser()
	s.routes(cfg.AuthLimiter)
	return s
}

// ServeHTTP lets the server be mounted directly in httptest or an
// http.Server.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) seedDemoUser() {
	hash, _ := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	demo := &userRecord{
		user: models.User{
			ID:    "user1",
			Name:  "Demo User",
			Email: DemoEmail,
		},
		passwordHash: hash,
	}
	s.users[demo.user.ID] = demo
	s.emails[demo.user.Email] = demo.user.ID
	s.favorites[demo.user.ID] = make(map[string]bool)
	s.tickets[demo.user.ID] = fixtures.Tickets()
}

func (s *Server) routes(authLimiter echo.MiddlewareFunc) {
	e := s.echo

	auth := e.Group("")
	if authLimiter != nil {
		auth.Use(authLimiter)
	}
	auth.POST("/auth/login", s.login)
	auth.POST("/auth/register", s.register)

	e.GET("/event/recents", s.recentEvents)
	e.GET("/events/:id", s.eventByID)
	e.GET("/favorites/popular", s.popularEvents)

	g := e.Group("", s.requireAuth)
	g.POST("/logout", s.logout)
	g.PUT("/user/profile", s.updateProfile)
	g.POST("/user/upload-profile-image", s.uploadProfileImage)
	g.POST("/account/delete", s.deleteAccount)
	g.GET("/favorites/list", s.listFavorites)
	g.POST("/favorites/add/:eventId", s.addFavorite)
	g.POST("/favorites/remove/:eventId", s.removeFavorite)
	g.GET("/tickets", s.listTickets)
	g.GET("/tickets/:id", s.ticketByID)
	g.POST("/payments/process", s.processPayment)
}

func (s *Server) issueToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// requireAuth resolves the bearer token to a user id and stores it on the
// request context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return s.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		}

		s.mu.Lock()
		_, known := s.users[claims.Subject]
		s.mu.Unlock()
		if !known {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		}

		c.Set("userID", claims.Subject)
		return next(c)
	}
}

func (s *Server) userID(c echo.Context) string {
	id, _ := c.Get("userID").(string)
	return id
}
