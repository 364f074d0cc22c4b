package mockportal

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	usermodel "kampusku_mobile/internals/features/user/model"
)

func (p *Portal) addAccount(email, password string, user usermodel.User, mhs usermodel.Mahasiswa) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Gagal hash password seed: %v", err)
	}
	p.accounts[email] = &account{
		user:         user,
		mahasiswa:    mhs,
		passwordHash: hash,
		sudah:        map[string]bool{},
		nilai:        map[string]float64{},
	}
}

// IssueToken menerbitkan token valid untuk test tanpa melewati /login.
func (p *Portal) IssueToken(email string) string {
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		log.Fatalf("❌ Gagal sign token: %v", err)
	}
	return token
}

func (p *Portal) parseToken(raw string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	return claims.Subject, true
}

// requireAuth memvalidasi header Authorization: Bearer <token>.
func (p *Portal) requireAuth(c *fiber.Ctx) error {
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if !strings.HasPrefix(auth, prefix) {
		return Error(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}
	email, ok := p.parseToken(strings.TrimSpace(auth[len(prefix):]))
	if !ok {
		return Error(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	p.mu.Lock()
	_, exists := p.accounts[email]
	p.mu.Unlock()
	if !exists {
		return Error(c, fiber.StatusUnauthorized, "Akun tidak ditemukan")
	}

	c.Locals("email", email)
	return c.Next()
}

func (p *Portal) login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	p.mu.Lock()
	acc, ok := p.accounts[req.Email]
	p.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.Password)) != nil {
		return Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token":   p.IssueToken(req.Email),
		"message": "Login berhasil",
	})
}
